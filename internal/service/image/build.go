package image

import (
	"fmt"

	"deploytk/internal/cli"
)

// Build はコンテナイメージをビルドして一意タグと浮動タグの両方を付与する
func Build(opts BuildOptions) error {
	fmt.Printf("🚀 イメージをビルドします: %s:%s\n", opts.RepositoryUri, opts.UniqueTag)

	args := []string{"build"}
	if opts.Dockerfile != "" {
		args = append(args, "-f", opts.Dockerfile)
	}
	args = append(args,
		"-t", fmt.Sprintf("%s:%s", opts.RepositoryUri, opts.UniqueTag),
		"-t", fmt.Sprintf("%s:%s", opts.RepositoryUri, opts.LatestTag),
	)
	contextDir := opts.ContextDir
	if contextDir == "" {
		contextDir = "."
	}
	args = append(args, contextDir)

	if err := cli.ExecuteDockerCommand(args); err != nil {
		return fmt.Errorf("❌ イメージのビルドに失敗: %w", err)
	}

	fmt.Println("✅ イメージをビルドしました")
	return nil
}

// Push は一意タグと浮動タグの両方をレジストリにプッシュする
func Push(opts PushOptions) error {
	for _, t := range []string{opts.UniqueTag, opts.LatestTag} {
		ref := fmt.Sprintf("%s:%s", opts.RepositoryUri, t)
		fmt.Printf("🚀 イメージをプッシュします: %s\n", ref)
		if err := cli.ExecuteDockerCommand([]string{"push", ref}); err != nil {
			return fmt.Errorf("❌ イメージのプッシュに失敗 (%s): %w", ref, err)
		}
	}

	fmt.Println("✅ イメージをプッシュしました")
	return nil
}
