package secrets

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// CheckSecrets はタスク定義が参照するシークレットが存在するか事前確認する
// 1件でも見つからない場合はエラー（デプロイ開始前に止める）
func CheckSecrets(smClient *secretsmanager.Client, secretArns map[string]string) error {
	if len(secretArns) == 0 {
		fmt.Println("ℹ️ 確認対象のシークレットはありません")
		return nil
	}

	// 表示順を安定させる
	names := make([]string, 0, len(secretArns))
	for name := range secretArns {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("🔍 %d件のシークレットを確認します...\n", len(names))

	var missing []string
	for _, name := range names {
		arn := secretArns[name]
		_, err := smClient.DescribeSecret(context.Background(), &secretsmanager.DescribeSecretInput{
			SecretId: aws.String(arn),
		})
		if err != nil {
			var notFound *types.ResourceNotFoundException
			if errors.As(err, &notFound) {
				fmt.Printf("  ❌ %s: 見つかりません (%s)\n", name, arn)
				missing = append(missing, name)
				continue
			}
			return fmt.Errorf("❌ シークレット '%s' の確認に失敗: %w", name, err)
		}
		fmt.Printf("  ✅ %s\n", name)
	}

	if len(missing) > 0 {
		return fmt.Errorf("❌ %d件のシークレットが見つかりません: %v", len(missing), missing)
	}

	fmt.Println("✅ すべてのシークレットを確認しました")
	return nil
}
