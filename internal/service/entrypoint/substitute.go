package entrypoint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Substitute は設定ファイル中の ${name} プレースホルダーを値で置き換える
// ファイルが存在しない・プレースホルダーが含まれない場合は起動前にエラーとする
// （設定不備のままサーバーを起動させないためのフェイルファスト）
func Substitute(configPath, name, value string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("❌ 設定ファイル '%s' の読み込みに失敗: %w", configPath, err)
	}

	placeholder := "${" + name + "}"
	text := string(data)
	if !strings.Contains(text, placeholder) {
		return fmt.Errorf("❌ 設定ファイル '%s' にプレースホルダー %s がありません", configPath, placeholder)
	}

	replaced := strings.ReplaceAll(text, placeholder, value)

	// 書き込み途中で壊れた設定を読まれないよう一時ファイル経由で置き換える
	tmpPath := filepath.Join(filepath.Dir(configPath), "."+filepath.Base(configPath)+".tmp")
	if err := os.WriteFile(tmpPath, []byte(replaced), 0644); err != nil {
		return fmt.Errorf("❌ 設定ファイルの書き込みに失敗: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		return fmt.Errorf("❌ 設定ファイルの置き換えに失敗: %w", err)
	}

	fmt.Printf("✅ %s を設定ファイルに反映しました\n", name)
	return nil
}
