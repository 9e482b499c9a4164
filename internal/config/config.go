package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config はデプロイパイプライン設定ファイル（deploytk.yaml）の内容を保持する
type Config struct {
	Environment string `yaml:"environment"`

	Aws struct {
		AccountId string `yaml:"account_id"`
		Region    string `yaml:"region"`
	} `yaml:"aws"`

	Ecr struct {
		Repository string `yaml:"repository"`
	} `yaml:"ecr"`

	Ecs struct {
		Cluster   string `yaml:"cluster"`
		Service   string `yaml:"service"`
		Container string `yaml:"container"`
		Family    string `yaml:"family"`
		Cpu       string `yaml:"cpu"`
		Memory    string `yaml:"memory"`
		LogGroup  string `yaml:"log_group"`
	} `yaml:"ecs"`

	CodeDeploy struct {
		Application     string `yaml:"application"`
		DeploymentGroup string `yaml:"deployment_group"`
	} `yaml:"codedeploy"`

	Templates struct {
		TaskDefinition string `yaml:"task_definition"`
		AppSpec        string `yaml:"appspec"`
	} `yaml:"templates"`

	// 環境変数名 → Secrets ManagerシークレットのARN
	Secrets map[string]string `yaml:"secrets"`

	// Slack Webhook URLを格納している環境変数名
	SlackWebhookEnv string `yaml:"slack_webhook_env"`
}

// LoadConfig は設定ファイルを読み込んで検証する
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("❌ 設定ファイルの読み込みに失敗: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("❌ 設定ファイルのYAML解析に失敗: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate は必須項目が設定されているか検証する
func (c *Config) Validate() error {
	required := []struct {
		value string
		name  string
	}{
		{c.Environment, "environment"},
		{c.Aws.AccountId, "aws.account_id"},
		{c.Aws.Region, "aws.region"},
		{c.Ecr.Repository, "ecr.repository"},
		{c.Ecs.Cluster, "ecs.cluster"},
		{c.Ecs.Service, "ecs.service"},
		{c.Ecs.Container, "ecs.container"},
		{c.Ecs.Family, "ecs.family"},
		{c.Ecs.Cpu, "ecs.cpu"},
		{c.Ecs.Memory, "ecs.memory"},
		{c.CodeDeploy.Application, "codedeploy.application"},
		{c.CodeDeploy.DeploymentGroup, "codedeploy.deployment_group"},
		{c.Templates.TaskDefinition, "templates.task_definition"},
		{c.Templates.AppSpec, "templates.appspec"},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("❌ 設定ファイルに %s がありません", r.name)
		}
	}
	return nil
}

// RepositoryUri はECRリポジトリのURIを組み立てる
func (c *Config) RepositoryUri() string {
	return fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com/%s",
		c.Aws.AccountId, c.Aws.Region, c.Ecr.Repository)
}

// RegistryUri はECRレジストリのURI（リポジトリ名なし）を組み立てる
func (c *Config) RegistryUri() string {
	return fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com", c.Aws.AccountId, c.Aws.Region)
}

// Vars はテンプレート置換に使うプレースホルダー変数を組み立てる
// （IMAGE_TAGはビルドごとに決まるため引数で受け取る）
func (c *Config) Vars(imageTag string) map[string]string {
	vars := map[string]string{
		"TASK_DEFINITION_FAMILY": c.Ecs.Family,
		"AWS_ACCOUNT_ID":         c.Aws.AccountId,
		"AWS_REGION":             c.Aws.Region,
		"IMAGE_REPO_NAME":        c.Ecr.Repository,
		"IMAGE_TAG":              imageTag,
		"CONTAINER_NAME":         c.Ecs.Container,
		"CPU":                    c.Ecs.Cpu,
		"MEMORY":                 c.Ecs.Memory,
	}
	// シークレットARNもプレースホルダーとして参照できるようにする
	// （例: ${ANTHROPIC_API_KEY_ARN}）
	for name, arn := range c.Secrets {
		vars[name+"_ARN"] = arn
	}
	return vars
}

// SlackWebhookUrl はSlack Webhook URLを環境変数から取得する（未設定なら空文字）
func (c *Config) SlackWebhookUrl() string {
	if c.SlackWebhookEnv == "" {
		return ""
	}
	return os.Getenv(c.SlackWebhookEnv)
}
