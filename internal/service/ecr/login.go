package ecr

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"deploytk/internal/cli"

	"github.com/aws/aws-sdk-go-v2/service/ecr"
)

// Login はECRの認証トークンを取得してdocker loginを実行する
func Login(ecrClient *ecr.Client, registryUri string) error {
	fmt.Printf("🔍 ECRレジストリ '%s' にログインします...\n", registryUri)

	result, err := ecrClient.GetAuthorizationToken(context.Background(), &ecr.GetAuthorizationTokenInput{})
	if err != nil {
		return fmt.Errorf("❌ 認証トークンの取得に失敗: %w", err)
	}
	if len(result.AuthorizationData) == 0 || result.AuthorizationData[0].AuthorizationToken == nil {
		return fmt.Errorf("❌ 認証トークンが空です")
	}

	decoded, err := base64.StdEncoding.DecodeString(*result.AuthorizationData[0].AuthorizationToken)
	if err != nil {
		return fmt.Errorf("❌ 認証トークンのデコードに失敗: %w", err)
	}

	// トークンは "AWS:<パスワード>" 形式
	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("❌ 認証トークンの形式が不正です")
	}

	err = cli.ExecuteDockerCommandWithStdin(parts[1], []string{
		"login", "--username", parts[0], "--password-stdin", registryUri,
	})
	if err != nil {
		return fmt.Errorf("❌ docker loginに失敗: %w", err)
	}

	fmt.Println("✅ ECRにログインしました")
	return nil
}
