package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// AppName はバイナリ名（ヘルプの使用例で参照する）
const AppName = "deploytk"

var (
	region     string
	profile    string
	configPath string
)

// RootCmd はサブコマンドなしで呼ばれた場合のベースコマンド
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "ECS Blue/Greenデプロイ支援ツール",
	Long: `MCPエージェントアプリのコンテナイメージビルドからECSのBlue/Greenデプロイまでを
一貫して実行するためのツールです。

テンプレート置換・イメージタグ生成・ECRプッシュ・CodeDeployによるBlue/Greenデプロイ・
Slack通知をサブコマンドとして提供します。`,
}

// Execute は全サブコマンドをルートコマンドに登録して実行する
// main.main()から一度だけ呼ばれる
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "", "AWSリージョン (未指定なら設定ファイルの値)")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "deploytk.yaml", "パイプライン設定ファイル")
}
