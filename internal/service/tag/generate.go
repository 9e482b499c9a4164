package tag

import (
	"fmt"
	"strings"
	"time"

	"deploytk/internal/cli"
)

// Generate はイメージタグを生成する
// 一意タグ: <environment>-<コミットSHA先頭7文字>-<YYYYMMDDHHMM(UTC)>
// 浮動タグ: <environment>-latest
func Generate(env, commitSha string, now time.Time) (string, string, error) {
	if env == "" {
		return "", "", fmt.Errorf("環境名が指定されていません")
	}
	if strings.ContainsAny(env, "/:") {
		return "", "", fmt.Errorf("環境名 '%s' にタグに使えない文字が含まれています", env)
	}
	if len(commitSha) < 7 {
		return "", "", fmt.Errorf("コミットSHA '%s' が短すぎます（7文字以上必要）", commitSha)
	}

	timestamp := now.UTC().Format("200601021504")
	unique := fmt.Sprintf("%s-%s-%s", env, commitSha[:7], timestamp)
	latest := fmt.Sprintf("%s-latest", env)

	return unique, latest, nil
}

// GenerateFromHead はgitのHEADコミットと現在時刻からイメージタグを生成する
func GenerateFromHead(env string) (string, string, error) {
	sha, err := cli.GetGitHeadSha()
	if err != nil {
		return "", "", fmt.Errorf("gitコミットSHAの取得に失敗: %w", err)
	}
	return Generate(env, sha, time.Now())
}
