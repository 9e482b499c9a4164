package deploy

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy"
	cdtypes "github.com/aws/aws-sdk-go-v2/service/codedeploy/types"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/schollz/progressbar/v3"
)

// WaitForDeployment はCodeDeployデプロイが完了するまでポーリングで待機する
func WaitForDeployment(cdClient *codedeploy.Client, deploymentId string, timeoutSeconds int) error {
	fmt.Printf("⏳ デプロイ '%s' の完了を待機しています...\n", deploymentId)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("デプロイ進行中"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetPredictTime(false),
	)

	start := time.Now()
	timeout := time.Duration(timeoutSeconds) * time.Second
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		<-ticker.C
		_ = bar.Add(1)

		resp, err := cdClient.GetDeployment(context.Background(), &codedeploy.GetDeploymentInput{
			DeploymentId: aws.String(deploymentId),
		})
		if err != nil {
			return fmt.Errorf("デプロイ情報の取得に失敗しました: %w", err)
		}
		if resp.DeploymentInfo == nil {
			return fmt.Errorf("デプロイ '%s' が見つかりません", deploymentId)
		}

		status := resp.DeploymentInfo.Status
		switch status {
		case cdtypes.DeploymentStatusSucceeded:
			_ = bar.Finish()
			fmt.Println("\n✅ デプロイが完了しました")
			return nil
		case cdtypes.DeploymentStatusFailed, cdtypes.DeploymentStatusStopped:
			_ = bar.Finish()
			reason := ""
			if info := resp.DeploymentInfo.ErrorInformation; info != nil {
				reason = fmt.Sprintf(" (%s: %s)", info.Code, aws.ToString(info.Message))
			}
			return fmt.Errorf("デプロイが %s で終了しました%s", status, reason)
		}

		if time.Since(start) > timeout {
			return fmt.Errorf("タイムアウト: %d秒経過しましたがデプロイは完了していません", timeoutSeconds)
		}
	}
}

// WaitForServiceStable はECSサービスのPRIMARYデプロイメントが安定するまで待機する
// ワークフロー完了の必須条件のため、デプロイ成功後も必ず呼び出すこと
func WaitForServiceStable(ecsClient *ecs.Client, opts WaitOptions) error {
	fmt.Println("⏳ サービスが安定状態になるまで待機しています...")

	start := time.Now()
	timeout := time.Duration(opts.TimeoutSeconds) * time.Second
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		<-ticker.C

		resp, err := ecsClient.DescribeServices(context.Background(), &ecs.DescribeServicesInput{
			Cluster:  aws.String(opts.ClusterName),
			Services: []string{opts.ServiceName},
		})
		if err != nil {
			return fmt.Errorf("サービス情報の取得に失敗しました: %w", err)
		}
		if len(resp.Services) == 0 {
			return fmt.Errorf("サービス '%s' が見つかりません", opts.ServiceName)
		}

		service := resp.Services[0]
		runningCount := int(service.RunningCount)
		desiredCount := int(service.DesiredCount)

		// 経過時間と進捗状況を表示
		elapsed := time.Since(start).Round(time.Second)
		fmt.Printf("⏱️ 経過時間: %s - 実行中タスク: %d / 希望タスク数: %d - デプロイメント数: %d\n",
			elapsed, runningCount, desiredCount, len(service.Deployments))

		// PRIMARYのみ・全タスク起動済みで安定とみなす
		if len(service.Deployments) == 1 && runningCount == desiredCount && desiredCount > 0 {
			fmt.Println("✅ サービスが安定状態になりました")
			return nil
		}

		if time.Since(start) > timeout {
			return fmt.Errorf("タイムアウト: %d秒経過しましたがサービスは安定していません", opts.TimeoutSeconds)
		}
	}
}
