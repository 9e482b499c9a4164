package cmd

import (
	entrypointsvc "deploytk/internal/service/entrypoint"

	"github.com/spf13/cobra"
)

var (
	mcpConfigPath string
	keyEnvName    string
)

// デフォルトで起動するUIサーバープロセス（コンテナポート8000で待ち受け）
var defaultServerCommand = []string{
	"streamlit", "run", "app_KOR.py",
	"--server.port", "8000",
	"--server.address", "0.0.0.0",
}

// entrypointCmd はコンテナのエントリポイントとして実行するコマンドです
var entrypointCmd = &cobra.Command{
	Use:   "entrypoint [-- command...]",
	Short: "コンテナエントリポイントコマンド",
	Long: `コンテナ起動時に実行するエントリポイントコマンドです。
環境変数の認証情報をMCP設定ファイルに反映した後、UIサーバープロセスにexecで置き換わります。
設定ファイルが存在しない・プレースホルダーがない場合は起動せずに異常終了します。

例:
  ` + AppName + ` entrypoint
  ` + AppName + ` entrypoint --mcp-config /app/mcp_config.json
  ` + AppName + ` entrypoint -- streamlit run app_KOR.py --server.port 8000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := defaultServerCommand
		if len(args) > 0 {
			command = args
		}

		// Runが正常に進むとexecでプロセスが置き換わるため、ここに戻るのは失敗時のみ
		return entrypointsvc.Run(entrypointsvc.RunOptions{
			ConfigPath: mcpConfigPath,
			KeyEnvName: keyEnvName,
			Command:    command,
		})
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(entrypointCmd)

	entrypointCmd.Flags().StringVar(&mcpConfigPath, "mcp-config", "mcp_config.json", "MCP設定ファイルのパス")
	entrypointCmd.Flags().StringVar(&keyEnvName, "key-env", "GCP_BIGQUERY_KEY", "設定ファイルに反映する環境変数名")
}
