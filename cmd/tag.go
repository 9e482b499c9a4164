package cmd

import (
	"fmt"
	"time"

	tagsvc "deploytk/internal/service/tag"

	"github.com/spf13/cobra"
)

var commitSha string

// tagCmd はイメージタグを生成して表示するコマンドです
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "イメージタグを生成するコマンド",
	Long: `デプロイに使うイメージタグを生成して表示するコマンドです。
一意タグは <環境名>-<コミットSHA先頭7文字>-<YYYYMMDDHHMM> 形式、
浮動タグは <環境名>-latest 形式です。

例:
  ` + AppName + ` tag
  ` + AppName + ` tag --sha abc1234def5678`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		var unique, latest string
		if commitSha != "" {
			unique, latest, err = tagsvc.Generate(cfg.Environment, commitSha, time.Now())
		} else {
			unique, latest, err = tagsvc.GenerateFromHead(cfg.Environment)
		}
		if err != nil {
			return fmt.Errorf("❌ タグの生成に失敗: %w", err)
		}

		fmt.Printf("一意タグ: %s\n", unique)
		fmt.Printf("浮動タグ: %s\n", latest)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(tagCmd)

	tagCmd.Flags().StringVar(&commitSha, "sha", "", "コミットSHA (未指定ならgitのHEADを使用)")
}
