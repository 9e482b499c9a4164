package deploy

import (
	"context"
	"fmt"

	"deploytk/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// ShowServiceStatus はECSサービスの稼働状況とデプロイメント状況を表示する
func ShowServiceStatus(ecsClient *ecs.Client, clusterName, serviceName string) error {
	resp, err := ecsClient.DescribeServices(context.Background(), &ecs.DescribeServicesInput{
		Cluster:  aws.String(clusterName),
		Services: []string{serviceName},
	})
	if err != nil {
		return fmt.Errorf("❌ サービス情報の取得に失敗: %w", err)
	}
	if len(resp.Services) == 0 {
		return fmt.Errorf("❌ サービス '%s' が見つかりません", serviceName)
	}

	service := resp.Services[0]

	fmt.Printf("🔍 ECSサービス状態: %s/%s\n\n", clusterName, serviceName)
	fmt.Println("📊 サービス情報:")
	common.PrintKeyValues([][2]string{
		{"状態", aws.ToString(service.Status)},
		{"タスク定義", aws.ToString(service.TaskDefinition)},
		{"期待数", fmt.Sprintf("%d", service.DesiredCount)},
		{"実行中", fmt.Sprintf("%d", service.RunningCount)},
		{"起動中", fmt.Sprintf("%d", service.PendingCount)},
	})

	fmt.Println("\n📋 デプロイメント:")
	if len(service.Deployments) == 0 {
		fmt.Println("  デプロイメントはありません")
		return nil
	}
	for i, d := range service.Deployments {
		fmt.Printf("  %d. [%s] %s (実行中: %d / 希望: %d)\n",
			i+1, aws.ToString(d.Status), aws.ToString(d.TaskDefinition),
			d.RunningCount, d.DesiredCount)
	}

	return nil
}
