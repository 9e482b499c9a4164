package template

import (
	"fmt"
	"os"
	"regexp"
)

// placeholderPattern は ${NAME} 形式のプレースホルダーにマッチする
// （$NAME のようなブレースなし形式は置換対象外）
var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Render はテンプレート中の ${NAME} プレースホルダーを置換する
// varsに存在しないプレースホルダーはそのまま残す（再帰展開はしない）
// 戻り値は置換後テキストと、実際に置換した変数名のリスト
func Render(text string, vars map[string]string) (string, []string) {
	var replaced []string
	seen := make(map[string]bool)

	rendered := placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := token[2 : len(token)-1]
		value, ok := vars[name]
		if !ok {
			return token
		}
		if !seen[name] {
			seen[name] = true
			replaced = append(replaced, name)
		}
		return value
	})

	return rendered, replaced
}

// FindPlaceholders はテキスト中のプレースホルダー名を出現順・重複なしで返す
func FindPlaceholders(text string) []string {
	var names []string
	seen := make(map[string]bool)

	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Validate は未解決のプレースホルダーが残っていないか検証する
// 残っている場合はUnresolvedErrorを返す（未解決のままデプロイに渡ると
// リテラル文字列としてデプロイ失敗の原因になるため、ここで確実に止める）
func Validate(text string) error {
	tokens := FindPlaceholders(text)
	if len(tokens) > 0 {
		return &UnresolvedError{Tokens: tokens}
	}
	return nil
}

// RenderFile はテンプレートファイルを読み込んで置換・検証し、出力先に書き込む
func RenderFile(path, outPath string, vars map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("❌ テンプレートの読み込みに失敗: %w", err)
	}

	rendered, replaced := Render(string(data), vars)
	if err := Validate(rendered); err != nil {
		return fmt.Errorf("❌ テンプレート '%s' の置換に失敗: %w", path, err)
	}

	if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("❌ 置換結果の書き込みに失敗: %w", err)
	}

	fmt.Printf("✅ テンプレートを置換しました: %s → %s (%d個の変数)\n", path, outPath, len(replaced))
	return nil
}
