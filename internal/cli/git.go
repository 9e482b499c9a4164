package cli

import (
	"os/exec"
	"strings"
)

// GetGitHeadSha はHEADのコミットハッシュを取得する
func GetGitHeadSha() (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
