package common

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PadRight は表示幅（全角考慮）でラベルを右側スペース埋めする
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PrintKeyValues はラベル幅を揃えてキーと値の一覧を表示する
func PrintKeyValues(pairs [][2]string) {
	maxWidth := 0
	for _, p := range pairs {
		if w := runewidth.StringWidth(p[0]); w > maxWidth {
			maxWidth = w
		}
	}
	for _, p := range pairs {
		fmt.Printf("  %s  %s\n", PadRight(p[0], maxWidth), p[1])
	}
}
