package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		vars         map[string]string
		want         string
		wantReplaced []string
	}{
		{
			name:         "単一の変数を置換する",
			text:         "image: ${IMAGE_TAG}",
			vars:         map[string]string{"IMAGE_TAG": "prd-abc1234-202401010000"},
			want:         "image: prd-abc1234-202401010000",
			wantReplaced: []string{"IMAGE_TAG"},
		},
		{
			name:         "varsにない変数はそのまま残す",
			text:         "${KNOWN} ${UNKNOWN}",
			vars:         map[string]string{"KNOWN": "x"},
			want:         "x ${UNKNOWN}",
			wantReplaced: []string{"KNOWN"},
		},
		{
			name:         "ブレースなしの$NAMEは置換しない",
			text:         "$IMAGE_TAG ${IMAGE_TAG}",
			vars:         map[string]string{"IMAGE_TAG": "v1"},
			want:         "$IMAGE_TAG v1",
			wantReplaced: []string{"IMAGE_TAG"},
		},
		{
			name:         "値に含まれる${X}は再帰展開しない",
			text:         "${A}",
			vars:         map[string]string{"A": "${B}", "B": "oops"},
			want:         "${B}",
			wantReplaced: []string{"A"},
		},
		{
			name:         "空のテンプレートは空のまま",
			text:         "",
			vars:         map[string]string{"A": "x"},
			want:         "",
			wantReplaced: nil,
		},
		{
			name:         "同じ変数の複数出現は1回だけ報告する",
			text:         "${A} ${A} ${A}",
			vars:         map[string]string{"A": "x"},
			want:         "x x x",
			wantReplaced: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replaced := Render(tt.text, tt.vars)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantReplaced, replaced)
		})
	}
}

func TestFindPlaceholders(t *testing.T) {
	text := "${B} plain ${A} ${B} $C ${lower_ok} ${1BAD}"
	got := FindPlaceholders(text)
	// 出現順・重複なし、数字始まりや$Cはトークンではない
	assert.Equal(t, []string{"B", "A", "lower_ok"}, got)
}

func TestValidate(t *testing.T) {
	t.Run("未解決トークンがなければnil", func(t *testing.T) {
		assert.NoError(t, Validate("all resolved"))
	})

	t.Run("未解決トークンを列挙したエラーを返す", func(t *testing.T) {
		err := Validate("${CPU} and ${MEMORY}")
		require.Error(t, err)

		var unresolved *UnresolvedError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, []string{"CPU", "MEMORY"}, unresolved.Tokens)
		assert.Contains(t, err.Error(), "${CPU}")
		assert.Contains(t, err.Error(), "${MEMORY}")
	})
}

func TestRenderFile(t *testing.T) {
	t.Run("置換結果を出力先に書き込む", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "in.json")
		out := filepath.Join(dir, "out.json")
		require.NoError(t, os.WriteFile(in, []byte(`{"tag": "${IMAGE_TAG}"}`), 0644))

		err := RenderFile(in, out, map[string]string{"IMAGE_TAG": "prd-latest"})
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, `{"tag": "prd-latest"}`, string(data))
	})

	t.Run("未解決トークンが残る場合は出力せずエラー", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "in.json")
		out := filepath.Join(dir, "out.json")
		require.NoError(t, os.WriteFile(in, []byte(`${MISSING}`), 0644))

		err := RenderFile(in, out, map[string]string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "${MISSING}")
		assert.NoFileExists(t, out)
	})

	t.Run("テンプレートが存在しない場合はエラー", func(t *testing.T) {
		dir := t.TempDir()
		err := RenderFile(filepath.Join(dir, "nothing.json"), filepath.Join(dir, "out.json"), nil)
		assert.Error(t, err)
	})
}
