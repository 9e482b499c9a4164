package cmd

import (
	secretssvc "deploytk/internal/service/secrets"

	"github.com/spf13/cobra"
)

var secretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Secrets Manager操作コマンド",
	Long:  `タスク定義が参照するシークレットの事前確認を行うコマンド群です。`,
}

// secretsCheckCmd はシークレットの存在を事前確認するコマンドです
var secretsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "シークレットの存在を確認するコマンド",
	Long: `設定ファイルに列挙されたシークレットARNがすべて存在するか確認するコマンドです。
デプロイ前のプリフライトとして実行します。

例:
  ` + AppName + ` secrets check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		clients, err := newAwsClients(cfg.Aws.Region)
		if err != nil {
			return err
		}

		return secretssvc.CheckSecrets(clients.SecretsManager(), cfg.Secrets)
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(secretsCmd)
	secretsCmd.AddCommand(secretsCheckCmd)
}
