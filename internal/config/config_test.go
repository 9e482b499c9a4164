package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYaml = `environment: prd
aws:
  account_id: "123456789012"
  region: us-east-1
ecr:
  repository: mcp-agent
ecs:
  cluster: agent-cluster
  service: agent-service
  container: agent-app
  family: agent-task
  cpu: "1024"
  memory: "2048"
  log_group: /ecs/agent-app
codedeploy:
  application: agent-app
  deployment_group: agent-dg
templates:
  task_definition: templates/task-definition.json
  appspec: templates/appspec.yaml
secrets:
  ANTHROPIC_API_KEY: arn:aws:secretsmanager:us-east-1:123456789012:secret:anthropic
slack_webhook_env: SLACK_WEBHOOK_URL
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deploytk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("正常な設定ファイルを読み込む", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, validYaml))
		require.NoError(t, err)

		assert.Equal(t, "prd", cfg.Environment)
		assert.Equal(t, "agent-cluster", cfg.Ecs.Cluster)
		assert.Equal(t, "agent-dg", cfg.CodeDeploy.DeploymentGroup)
		assert.Equal(t, "arn:aws:secretsmanager:us-east-1:123456789012:secret:anthropic",
			cfg.Secrets["ANTHROPIC_API_KEY"])
	})

	t.Run("ファイルが存在しない場合はエラー", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nothing.yaml"))
		assert.Error(t, err)
	})

	t.Run("必須項目が欠けている場合はエラー", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, "environment: prd\n"))
		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "aws.account_id")
	})

	t.Run("YAMLとして不正な場合はエラー", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "environment: [prd\n"))
		assert.Error(t, err)
	})
}

func TestRepositoryUri(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYaml))
	require.NoError(t, err)

	assert.Equal(t, "123456789012.dkr.ecr.us-east-1.amazonaws.com/mcp-agent", cfg.RepositoryUri())
	assert.Equal(t, "123456789012.dkr.ecr.us-east-1.amazonaws.com", cfg.RegistryUri())
}

func TestVars(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYaml))
	require.NoError(t, err)

	vars := cfg.Vars("prd-abc1234-202401010000")

	assert.Equal(t, map[string]string{
		"TASK_DEFINITION_FAMILY": "agent-task",
		"AWS_ACCOUNT_ID":         "123456789012",
		"AWS_REGION":             "us-east-1",
		"IMAGE_REPO_NAME":        "mcp-agent",
		"IMAGE_TAG":              "prd-abc1234-202401010000",
		"CONTAINER_NAME":         "agent-app",
		"CPU":                    "1024",
		"MEMORY":                 "2048",
		"ANTHROPIC_API_KEY_ARN":  "arn:aws:secretsmanager:us-east-1:123456789012:secret:anthropic",
	}, vars)
}

func TestSlackWebhookUrl(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYaml))
	require.NoError(t, err)

	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/TEST")
	assert.Equal(t, "https://hooks.slack.com/services/TEST", cfg.SlackWebhookUrl())
}
