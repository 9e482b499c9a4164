package deploy

import (
	"os"
	"testing"

	"deploytk/internal/service/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const renderedAppSpec = `version: 0.0
Resources:
  - TargetService:
      Type: AWS::ECS::SERVICE
      Properties:
        TaskDefinition: arn:aws:ecs:us-east-1:123456789012:task-definition/agent-task:5
        LoadBalancerInfo:
          ContainerName: agent-app
          ContainerPort: 8000
`

func TestParseAppSpec(t *testing.T) {
	t.Run("正常なappspecを解析する", func(t *testing.T) {
		spec, err := ParseAppSpec(renderedAppSpec, DefaultContainerPort)
		require.NoError(t, err)

		props := spec.Resources[0].TargetService.Properties
		assert.Equal(t, "arn:aws:ecs:us-east-1:123456789012:task-definition/agent-task:5", props.TaskDefinition)
		assert.Equal(t, "agent-app", props.LoadBalancerInfo.ContainerName)
		assert.Equal(t, 8000, props.LoadBalancerInfo.ContainerPort)
	})

	t.Run("未解決プレースホルダーが残っている場合はエラー", func(t *testing.T) {
		text := `version: 0.0
Resources:
  - TargetService:
      Type: AWS::ECS::SERVICE
      Properties:
        TaskDefinition: ${TASK_DEFINITION}
        LoadBalancerInfo:
          ContainerName: agent-app
          ContainerPort: 8000
`
		_, err := ParseAppSpec(text, DefaultContainerPort)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "${TASK_DEFINITION}")
	})

	t.Run("コンテナポートの不一致はエラー", func(t *testing.T) {
		_, err := ParseAppSpec(renderedAppSpec, 8080)
		assert.ErrorContains(t, err, "8080")
	})

	t.Run("Resourcesが空の場合はエラー", func(t *testing.T) {
		_, err := ParseAppSpec("version: 0.0\nResources: []\n", DefaultContainerPort)
		assert.Error(t, err)
	})
}

// 同梱テンプレートが置換契約を満たしていることの確認
func TestShippedAppSpecTemplate(t *testing.T) {
	data, err := os.ReadFile("../../../templates/appspec.yaml")
	require.NoError(t, err)

	rendered, _ := template.Render(string(data), map[string]string{
		"TASK_DEFINITION": "arn:aws:ecs:us-east-1:123456789012:task-definition/agent-task:5",
		"CONTAINER_NAME":  "agent-app",
	})

	spec, err := ParseAppSpec(rendered, DefaultContainerPort)
	require.NoError(t, err)
	assert.Equal(t, "agent-app", spec.Resources[0].TargetService.Properties.LoadBalancerInfo.ContainerName)
}
