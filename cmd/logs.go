package cmd

import (
	"fmt"
	"time"

	logssvc "deploytk/internal/service/logs"

	"github.com/spf13/cobra"
)

var (
	logsSince time.Duration
	logsLimit int32
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "CloudWatch Logs操作コマンド",
	Long:  `デプロイ対象サービスのログを確認するコマンド群です。`,
}

// logsRecentCmd は直近のログイベントを表示するコマンドです
var logsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "直近のログイベントを表示するコマンド",
	Long: `デプロイ対象サービスのロググループから直近のログイベントを表示するコマンドです。
デプロイ後の動作確認に使います。

例:
  ` + AppName + ` logs recent
  ` + AppName + ` logs recent --since 30m --limit 200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}
		if cfg.Ecs.LogGroup == "" {
			return fmt.Errorf("❌ 設定ファイルに ecs.log_group がありません")
		}

		clients, err := newAwsClients(cfg.Aws.Region)
		if err != nil {
			return err
		}

		return logssvc.ShowRecent(clients.Logs(), logssvc.RecentOptions{
			LogGroup: cfg.Ecs.LogGroup,
			Since:    logsSince,
			Limit:    logsLimit,
		})
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsRecentCmd)

	logsRecentCmd.Flags().DurationVar(&logsSince, "since", 15*time.Minute, "取得対象期間")
	logsRecentCmd.Flags().Int32Var(&logsLimit, "limit", 100, "取得件数の上限")
}
