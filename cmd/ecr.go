package cmd

import (
	ecrsvc "deploytk/internal/service/ecr"

	"github.com/spf13/cobra"
)

var (
	keepCount int
	dryRun    bool
)

var ecrCmd = &cobra.Command{
	Use:   "ecr",
	Short: "ECRリソース操作コマンド",
	Long:  `ECRレジストリへのログインと古いタグの削除を行うコマンド群です。`,
}

// ecrLoginCmd はECRレジストリにdocker loginするコマンドです
var ecrLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "ECRレジストリにログインするコマンド",
	Long: `ECRの認証トークンを取得してdocker loginを実行するコマンドです。

例:
  ` + AppName + ` ecr login
  ` + AppName + ` ecr login -P my-profile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		clients, err := newAwsClients(cfg.Aws.Region)
		if err != nil {
			return err
		}

		return ecrsvc.Login(clients.Ecr(), cfg.RegistryUri())
	},
	SilenceUsage: true,
}

// ecrCleanupCmd は古い一意タグを削除するコマンドです
var ecrCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "古いイメージタグを削除するコマンド",
	Long: `リポジトリから古い一意タグを削除するコマンドです。
<環境名>-latest と、新しい順に--keepで指定した件数の一意タグは残します。

例:
  ` + AppName + ` ecr cleanup --keep 10
  ` + AppName + ` ecr cleanup --keep 5 --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		clients, err := newAwsClients(cfg.Aws.Region)
		if err != nil {
			return err
		}

		return ecrsvc.CleanupTags(clients.Ecr(), ecrsvc.CleanupOptions{
			RepositoryName: cfg.Ecr.Repository,
			Environment:    cfg.Environment,
			KeepCount:      keepCount,
			DryRun:         dryRun,
		})
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(ecrCmd)
	ecrCmd.AddCommand(ecrLoginCmd)
	ecrCmd.AddCommand(ecrCleanupCmd)

	ecrCleanupCmd.Flags().IntVar(&keepCount, "keep", 10, "残す一意タグの件数")
	ecrCleanupCmd.Flags().BoolVar(&dryRun, "dry-run", false, "削除対象の表示のみ行う")
}
