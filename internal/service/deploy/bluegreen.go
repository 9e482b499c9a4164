package deploy

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy/types"
)

// CreateBlueGreen はCodeDeployのBlue/Greenデプロイを作成してデプロイIDを返す
func CreateBlueGreen(cdClient *codedeploy.Client, opts BlueGreenOptions) (string, error) {
	fmt.Printf("🚀 Blue/Greenデプロイを作成します: %s/%s\n", opts.Application, opts.DeploymentGroup)

	input := &codedeploy.CreateDeploymentInput{
		ApplicationName:     aws.String(opts.Application),
		DeploymentGroupName: aws.String(opts.DeploymentGroup),
		Revision: &types.RevisionLocation{
			RevisionType: types.RevisionLocationTypeAppSpecContent,
			AppSpecContent: &types.AppSpecContent{
				Content: aws.String(opts.AppSpecContent),
			},
		},
	}
	if opts.Description != "" {
		input.Description = aws.String(opts.Description)
	}

	result, err := cdClient.CreateDeployment(context.Background(), input)
	if err != nil {
		return "", fmt.Errorf("❌ デプロイの作成に失敗: %w", err)
	}

	deploymentId := aws.ToString(result.DeploymentId)
	fmt.Printf("✅ デプロイを作成しました: %s\n", deploymentId)
	return deploymentId, nil
}
