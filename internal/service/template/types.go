package template

import (
	"fmt"
	"strings"
)

// UnresolvedError は未解決のまま残ったプレースホルダーを表すエラー
type UnresolvedError struct {
	Tokens []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("未解決のプレースホルダーが残っています: ${%s}",
		strings.Join(e.Tokens, "}, ${"))
}
