package tag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("一意タグと浮動タグを生成する", func(t *testing.T) {
		unique, latest, err := Generate("prd", "abc1234def5678", base)
		require.NoError(t, err)
		assert.Equal(t, "prd-abc1234-202401010000", unique)
		assert.Equal(t, "prd-latest", latest)
	})

	t.Run("タイムスタンプはUTCで整形する", func(t *testing.T) {
		kst := time.FixedZone("KST", 9*60*60)
		unique, _, err := Generate("prd", "abc1234", time.Date(2024, 1, 1, 9, 0, 0, 0, kst))
		require.NoError(t, err)
		assert.Equal(t, "prd-abc1234-202401010000", unique)
	})

	t.Run("コミットが異なれば辞書順で区別できる", func(t *testing.T) {
		a, _, err := Generate("prd", "abc1234", base)
		require.NoError(t, err)
		b, _, err := Generate("prd", "def5678", base)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("1分以上離れたビルドは辞書順で区別できる", func(t *testing.T) {
		a, _, err := Generate("prd", "abc1234", base)
		require.NoError(t, err)
		b, _, err := Generate("prd", "abc1234", base.Add(time.Minute))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("7文字未満のSHAはエラー", func(t *testing.T) {
		_, _, err := Generate("prd", "abc123", base)
		assert.Error(t, err)
	})

	t.Run("環境名が空の場合はエラー", func(t *testing.T) {
		_, _, err := Generate("", "abc1234", base)
		assert.Error(t, err)
	})

	t.Run("環境名にタグに使えない文字が含まれる場合はエラー", func(t *testing.T) {
		_, _, err := Generate("prd/kr", "abc1234", base)
		assert.Error(t, err)
	})
}
