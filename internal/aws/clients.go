package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Clients はAWS設定と各サービスクライアントを管理
type Clients struct {
	cfg aws.Config

	// 遅延初期化されるクライアント群
	ecs            *ecs.Client
	ecr            *ecr.Client
	codeDeploy     *codedeploy.Client
	secretsManager *secretsmanager.Client
	logs           *cloudwatchlogs.Client
}

// NewAwsClients は認証情報からAWS設定を読み込んでクライアント管理構造体を作成
func NewAwsClients(ctx Context) (*Clients, error) {
	cfg, err := LoadAwsConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &Clients{cfg: cfg}, nil
}

// Ecs は遅延初期化でECSクライアントを取得
func (c *Clients) Ecs() *ecs.Client {
	if c.ecs == nil {
		c.ecs = ecs.NewFromConfig(c.cfg)
	}
	return c.ecs
}

// Ecr は遅延初期化でECRクライアントを取得
func (c *Clients) Ecr() *ecr.Client {
	if c.ecr == nil {
		c.ecr = ecr.NewFromConfig(c.cfg)
	}
	return c.ecr
}

// CodeDeploy は遅延初期化でCodeDeployクライアントを取得
func (c *Clients) CodeDeploy() *codedeploy.Client {
	if c.codeDeploy == nil {
		c.codeDeploy = codedeploy.NewFromConfig(c.cfg)
	}
	return c.codeDeploy
}

// SecretsManager は遅延初期化でSecretsManagerクライアントを取得
func (c *Clients) SecretsManager() *secretsmanager.Client {
	if c.secretsManager == nil {
		c.secretsManager = secretsmanager.NewFromConfig(c.cfg)
	}
	return c.secretsManager
}

// Logs は遅延初期化でCloudWatch Logsクライアントを取得
func (c *Clients) Logs() *cloudwatchlogs.Client {
	if c.logs == nil {
		c.logs = cloudwatchlogs.NewFromConfig(c.cfg)
	}
	return c.logs
}

// Region は読み込み済みAWS設定のリージョンを返す
func (c *Clients) Region() string {
	return c.cfg.Region
}
