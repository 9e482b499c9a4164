package deploy

import (
	"context"
	"encoding/json"
	"fmt"

	"deploytk/internal/service/template"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// RegisterTaskDefinition は置換済みタスク定義JSONをECSに登録してARNを返す
// 未解決プレースホルダーが残っている場合は登録前にエラーとする
func RegisterTaskDefinition(ecsClient *ecs.Client, renderedJson string) (string, error) {
	if err := template.Validate(renderedJson); err != nil {
		return "", fmt.Errorf("❌ タスク定義の検証に失敗: %w", err)
	}

	input, err := ParseTaskDefinition(renderedJson)
	if err != nil {
		return "", err
	}

	fmt.Printf("🚀 タスク定義 '%s' を登録します...\n", *input.Family)

	result, err := ecsClient.RegisterTaskDefinition(context.Background(), input)
	if err != nil {
		return "", fmt.Errorf("❌ タスク定義の登録に失敗: %w", err)
	}

	arn := *result.TaskDefinition.TaskDefinitionArn
	fmt.Printf("✅ タスク定義を登録しました: %s\n", arn)
	return arn, nil
}

// ParseTaskDefinition はタスク定義JSONをRegisterTaskDefinitionInputに変換する
func ParseTaskDefinition(renderedJson string) (*ecs.RegisterTaskDefinitionInput, error) {
	var input ecs.RegisterTaskDefinitionInput
	if err := json.Unmarshal([]byte(renderedJson), &input); err != nil {
		return nil, fmt.Errorf("❌ タスク定義JSONの解析に失敗: %w", err)
	}

	if input.Family == nil || *input.Family == "" {
		return nil, fmt.Errorf("❌ タスク定義にfamilyがありません")
	}
	if len(input.ContainerDefinitions) == 0 {
		return nil, fmt.Errorf("❌ タスク定義にcontainerDefinitionsがありません")
	}

	return &input, nil
}
