package cli

import (
	"os"
	"os/exec"
	"strings"
)

// ExecuteDockerCommand はdockerコマンドを実行する共通関数
func ExecuteDockerCommand(args []string) error {
	cmd := exec.Command("docker", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// ExecuteDockerCommandWithStdin はdockerコマンドに標準入力を渡して実行する
// （docker login --password-stdin 用）
func ExecuteDockerCommandWithStdin(stdin string, args []string) error {
	cmd := exec.Command("docker", args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
