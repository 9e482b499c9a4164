package cmd

import (
	"fmt"

	imagesvc "deploytk/internal/service/image"
	tagsvc "deploytk/internal/service/tag"

	"github.com/spf13/cobra"
)

var (
	requirementsPath string
	buildContextDir  string
	dockerfilePath   string
	buildTag         string
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "コンテナイメージ操作コマンド",
	Long:  `コンテナイメージのビルド計画・ビルド・プッシュを行うコマンド群です。`,
}

// imagePlanCmd はpipインストール順序計画を表示するコマンドです
var imagePlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "pipインストール順序計画を表示するコマンド",
	Long: `requirementsファイルを解析して、ネイティブ拡張のビルド順序制約を守った
pipインストール計画を表示するコマンドです。
konlpyのビルドにはnumpyのヘッダが先に必要なため、numpy → konlpy → 残り の順になります。

例:
  ` + AppName + ` image plan -r requirements.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := imagesvc.Plan(requirementsPath)
		if err != nil {
			return err
		}

		imagesvc.ShowPlan(plan)

		fmt.Println("\n📋 Dockerfileで実行するコマンド:")
		for _, c := range plan.PipCommands() {
			fmt.Printf("  RUN %s\n", c)
		}
		return nil
	},
	SilenceUsage: true,
}

// imageBuildCmd はイメージをビルドするコマンドです
var imageBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "コンテナイメージをビルドするコマンド",
	Long: `コンテナイメージをビルドして、一意タグと浮動タグの両方を付与するコマンドです。

例:
  ` + AppName + ` image build
  ` + AppName + ` image build --tag prd-abc1234-202401010000 -d docker/Dockerfile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		unique, latest, err := resolveTags(cfg.Environment, buildTag)
		if err != nil {
			return err
		}

		return imagesvc.Build(imagesvc.BuildOptions{
			RepositoryUri: cfg.RepositoryUri(),
			UniqueTag:     unique,
			LatestTag:     latest,
			ContextDir:    buildContextDir,
			Dockerfile:    dockerfilePath,
		})
	},
	SilenceUsage: true,
}

// imagePushCmd はイメージをプッシュするコマンドです
var imagePushCmd = &cobra.Command{
	Use:   "push",
	Short: "コンテナイメージをECRにプッシュするコマンド",
	Long: `ビルド済みイメージの一意タグと浮動タグをECRにプッシュするコマンドです。
事前に ` + AppName + ` ecr login でレジストリにログインしておいてください。

例:
  ` + AppName + ` image push --tag prd-abc1234-202401010000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		unique, latest, err := resolveTags(cfg.Environment, buildTag)
		if err != nil {
			return err
		}

		return imagesvc.Push(imagesvc.PushOptions{
			RepositoryUri: cfg.RepositoryUri(),
			UniqueTag:     unique,
			LatestTag:     latest,
		})
	},
	SilenceUsage: true,
}

// resolveTags は--tag指定があればそれを、なければgitのHEADから一意タグを決める
func resolveTags(env, specified string) (string, string, error) {
	if specified != "" {
		return specified, env + "-latest", nil
	}
	unique, latest, err := tagsvc.GenerateFromHead(env)
	if err != nil {
		return "", "", fmt.Errorf("❌ タグの生成に失敗: %w", err)
	}
	return unique, latest, nil
}

func init() {
	RootCmd.AddCommand(imageCmd)
	imageCmd.AddCommand(imagePlanCmd)
	imageCmd.AddCommand(imageBuildCmd)
	imageCmd.AddCommand(imagePushCmd)

	imagePlanCmd.Flags().StringVarP(&requirementsPath, "requirements", "r", "requirements.txt", "requirementsファイル")

	imageBuildCmd.Flags().StringVar(&buildTag, "tag", "", "一意タグ (未指定ならgitのHEADから生成)")
	imageBuildCmd.Flags().StringVarP(&buildContextDir, "context", "c", ".", "ビルドコンテキスト")
	imageBuildCmd.Flags().StringVarP(&dockerfilePath, "dockerfile", "d", "", "Dockerfileのパス")

	imagePushCmd.Flags().StringVar(&buildTag, "tag", "", "一意タグ (未指定ならgitのHEADから生成)")
}
