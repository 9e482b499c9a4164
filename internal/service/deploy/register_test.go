package deploy

import (
	"os"
	"testing"

	"deploytk/internal/service/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskDefinition(t *testing.T) {
	t.Run("タスク定義JSONをRegisterTaskDefinitionInputに変換する", func(t *testing.T) {
		jsonText := `{
  "family": "agent-task",
  "networkMode": "awsvpc",
  "cpu": "1024",
  "memory": "2048",
  "containerDefinitions": [
    {
      "name": "agent-app",
      "image": "123456789012.dkr.ecr.us-east-1.amazonaws.com/mcp-agent:prd-abc1234-202401010000",
      "essential": true,
      "portMappings": [{"containerPort": 8000, "hostPort": 8000, "protocol": "tcp"}]
    }
  ]
}`
		input, err := ParseTaskDefinition(jsonText)
		require.NoError(t, err)

		assert.Equal(t, "agent-task", *input.Family)
		assert.Equal(t, "1024", *input.Cpu)
		require.Len(t, input.ContainerDefinitions, 1)
		container := input.ContainerDefinitions[0]
		assert.Equal(t, "agent-app", *container.Name)
		require.Len(t, container.PortMappings, 1)
		assert.Equal(t, int32(8000), *container.PortMappings[0].ContainerPort)
	})

	t.Run("familyがない場合はエラー", func(t *testing.T) {
		_, err := ParseTaskDefinition(`{"containerDefinitions": [{"name": "a"}]}`)
		assert.ErrorContains(t, err, "family")
	})

	t.Run("containerDefinitionsがない場合はエラー", func(t *testing.T) {
		_, err := ParseTaskDefinition(`{"family": "agent-task"}`)
		assert.ErrorContains(t, err, "containerDefinitions")
	})

	t.Run("JSONとして不正な場合はエラー", func(t *testing.T) {
		_, err := ParseTaskDefinition(`{`)
		assert.Error(t, err)
	})
}

// 同梱のタスク定義テンプレートをエンドツーエンドで置換した場合、
// imageフィールドが正しいイメージURIになり ${...} トークンが残らないこと
func TestShippedTaskDefinitionTemplate(t *testing.T) {
	data, err := os.ReadFile("../../../templates/task-definition.json")
	require.NoError(t, err)

	vars := map[string]string{
		"TASK_DEFINITION_FAMILY": "agent-task",
		"AWS_ACCOUNT_ID":         "123456789012",
		"AWS_REGION":             "us-east-1",
		"IMAGE_REPO_NAME":        "mcp-agent",
		"IMAGE_TAG":              "prd-abc1234-202401010000",
		"CONTAINER_NAME":         "agent-app",
		"CPU":                    "1024",
		"MEMORY":                 "2048",
		"ANTHROPIC_API_KEY_ARN":  "arn:aws:secretsmanager:us-east-1:123456789012:secret:anthropic",
		"OPENAI_API_KEY_ARN":     "arn:aws:secretsmanager:us-east-1:123456789012:secret:openai",
		"TAVILY_API_KEY_ARN":     "arn:aws:secretsmanager:us-east-1:123456789012:secret:tavily",
	}

	rendered, _ := template.Render(string(data), vars)
	require.NoError(t, template.Validate(rendered))

	input, err := ParseTaskDefinition(rendered)
	require.NoError(t, err)

	require.Len(t, input.ContainerDefinitions, 1)
	assert.Equal(t,
		"123456789012.dkr.ecr.us-east-1.amazonaws.com/mcp-agent:prd-abc1234-202401010000",
		*input.ContainerDefinitions[0].Image)
	assert.Equal(t, int32(8000), *input.ContainerDefinitions[0].PortMappings[0].ContainerPort)

	// 実行時の環境変数・シークレット契約も崩れていないこと
	envNames := make([]string, 0)
	for _, e := range input.ContainerDefinitions[0].Environment {
		envNames = append(envNames, *e.Name)
	}
	assert.ElementsMatch(t, []string{"PYTHON_ENV", "LANGSMITH_TRACING", "LANGSMITH_ENDPOINT"}, envNames)

	secretNames := make([]string, 0)
	for _, s := range input.ContainerDefinitions[0].Secrets {
		secretNames = append(secretNames, *s.Name)
	}
	assert.ElementsMatch(t, []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "TAVILY_API_KEY"}, secretNames)
}
