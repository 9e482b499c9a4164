package cmd

import (
	"deploytk/internal/service/notify"

	"github.com/spf13/cobra"
)

var notifyText string

// notifyCmd はSlackに任意のテキストを通知するコマンドです
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Slackに通知するコマンド",
	Long: `設定ファイルで指定した環境変数のWebhook URLにテキストを通知するコマンドです。
deploy runは自動で通知するため、手動での連絡やCIの他ステップからの利用を想定しています。

例:
  ` + AppName + ` notify --text "メンテナンスを開始します"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		return notify.PostText(cfg.SlackWebhookUrl(), notifyText)
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(notifyCmd)

	notifyCmd.Flags().StringVar(&notifyText, "text", "", "通知するテキスト")
	_ = notifyCmd.MarkFlagRequired("text")
}
