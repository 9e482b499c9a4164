package entrypoint

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// RunOptions はコンテナエントリポイントのオプション
type RunOptions struct {
	ConfigPath string   // MCP設定ファイル (mcp_config.json)
	KeyEnvName string   // 置換する認証情報の環境変数名 (GCP_BIGQUERY_KEY)
	Command    []string // 置換後にexecするUIサーバープロセス
}

// Run は設定ファイルへの認証情報反映後、UIサーバープロセスにexecで置き換わる
// 監視や再起動は行わない（プロセス管理はコンテナランタイム側の責務）
func Run(opts RunOptions) error {
	value, ok := os.LookupEnv(opts.KeyEnvName)
	if !ok || value == "" {
		return fmt.Errorf("❌ 環境変数 %s が設定されていません", opts.KeyEnvName)
	}

	if err := Substitute(opts.ConfigPath, opts.KeyEnvName, value); err != nil {
		return err
	}

	if len(opts.Command) == 0 {
		return fmt.Errorf("❌ 起動コマンドが指定されていません")
	}

	path, err := exec.LookPath(opts.Command[0])
	if err != nil {
		return fmt.Errorf("❌ コマンド '%s' が見つかりません: %w", opts.Command[0], err)
	}

	fmt.Printf("🚀 サーバープロセスを起動します: %v\n", opts.Command)

	// シェルスクリプトのexecと同様、現在のプロセスを置き換える
	if err := syscall.Exec(path, opts.Command, os.Environ()); err != nil {
		return fmt.Errorf("❌ プロセスの起動に失敗: %w", err)
	}
	return nil
}
