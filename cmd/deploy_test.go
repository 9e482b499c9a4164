package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// タグ解決に失敗してパイプラインが始まらない場合でも、Slack通知は必ず送られること
func TestDeployRunNotifiesOnEarlyFailure(t *testing.T) {
	var received struct {
		Text string `json:"text"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	t.Setenv("TEST_SLACK_WEBHOOK_URL", server.URL)

	// 環境名にタグに使えない文字を含めてタグ解決を確実に失敗させる
	configYaml := `environment: prd/kr
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
codedeploy:
  application: agent-app
  deployment_group: agent-dg
templates:
  task_definition: templates/task-definition.json
  appspec: templates/appspec.yaml
slack_webhook_env: TEST_SLACK_WEBHOOK_URL
`
	path := filepath.Join(t.TempDir(), "deploytk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYaml), 0644))

	origConfigPath, origDeployTag := configPath, deployTag
	defer func() { configPath, deployTag = origConfigPath, origDeployTag }()
	configPath = path
	deployTag = ""

	err := deployRunCmd.RunE(deployRunCmd, nil)
	require.Error(t, err)
	assert.Contains(t, received.Text, "❌")
	assert.Contains(t, received.Text, "prd/kr")
}
