package cmd

import (
	"fmt"
	"os"

	"deploytk/internal/aws"
	"deploytk/internal/config"
)

// loadPipelineConfig は-fで指定されたパイプライン設定ファイルを読み込む
func loadPipelineConfig() (*config.Config, error) {
	return config.LoadConfig(configPath)
}

// newAwsClients はフラグ・環境変数・設定ファイルから認証情報を解決して
// AWSクライアント管理構造体を作成する
// プロファイル未指定も許容する（CI上はロール認証で動くため）
func newAwsClients(fileRegion string) (*aws.Clients, error) {
	if profile == "" {
		if envProfile := os.Getenv("AWS_PROFILE"); envProfile != "" {
			fmt.Println("🔍 環境変数 AWS_PROFILE の値 '" + envProfile + "' を使用します")
			profile = envProfile
		}
	}

	r := region
	if r == "" {
		r = fileRegion
	}

	return aws.NewAwsClients(aws.Context{Profile: profile, Region: r})
}
