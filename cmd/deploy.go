package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"deploytk/internal/aws"
	"deploytk/internal/config"
	deploysvc "deploytk/internal/service/deploy"
	ecrsvc "deploytk/internal/service/ecr"
	imagesvc "deploytk/internal/service/image"
	"deploytk/internal/service/notify"
	secretssvc "deploytk/internal/service/secrets"
	"deploytk/internal/service/template"

	"github.com/spf13/cobra"
)

var (
	deployTag      string
	timeoutSeconds int
	skipBuild      bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "ECS Blue/Greenデプロイコマンド",
	Long:  `タスク定義の登録からBlue/Greenデプロイの完了待機までを行うコマンド群です。`,
}

// deployRunCmd はデプロイパイプライン全体を実行するコマンドです
var deployRunCmd = &cobra.Command{
	Use:   "run",
	Short: "デプロイパイプライン全体を実行するコマンド",
	Long: `イメージのビルド・プッシュ、タスク定義の登録、Blue/Greenデプロイの作成、
サービス安定までの待機を一括実行するコマンドです。
結果は成否にかかわらずSlackに通知します。

例:
  ` + AppName + ` deploy run
  ` + AppName + ` deploy run --tag prd-abc1234-202401010000 --skip-build
  ` + AppName + ` deploy run --timeout 900`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		start := time.Now()
		var (
			uniqueTag    string
			deploymentId string
			pipelineErr  error
		)

		// 成否にかかわらず必ず通知する。タグ解決やクライアント作成の失敗も対象
		// （通知失敗はパイプラインの結果を上書きしない）
		defer func() {
			msg := notify.Message{
				Environment:  cfg.Environment,
				ImageTag:     uniqueTag,
				DeploymentId: deploymentId,
				Succeeded:    pipelineErr == nil,
				Duration:     time.Since(start),
			}
			if err := notify.PostStatus(cfg.SlackWebhookUrl(), msg); err != nil {
				fmt.Printf("⚠️ Slack通知に失敗しました: %v\n", err)
			}
		}()

		pipelineErr = func() error {
			unique, latest, err := resolveTags(cfg.Environment, deployTag)
			if err != nil {
				return err
			}
			uniqueTag = unique

			clients, err := newAwsClients(cfg.Aws.Region)
			if err != nil {
				return err
			}

			deploymentId, err = runPipeline(cfg, clients, unique, latest)
			return err
		}()
		return pipelineErr
	},
	SilenceUsage: true,
}

// runPipeline はデプロイパイプラインの各ステップを順に実行する
func runPipeline(cfg *config.Config, clients *aws.Clients, unique, latest string) (string, error) {
	fmt.Printf("🚀 環境 '%s' へのデプロイを開始します (タグ: %s)\n", cfg.Environment, unique)

	// シークレットの事前確認（不足があればデプロイ開始前に止める）
	if err := secretssvc.CheckSecrets(clients.SecretsManager(), cfg.Secrets); err != nil {
		return "", err
	}

	if !skipBuild {
		if err := ecrsvc.Login(clients.Ecr(), cfg.RegistryUri()); err != nil {
			return "", err
		}
		if err := imagesvc.Build(imagesvc.BuildOptions{
			RepositoryUri: cfg.RepositoryUri(),
			UniqueTag:     unique,
			LatestTag:     latest,
		}); err != nil {
			return "", err
		}
		if err := imagesvc.Push(imagesvc.PushOptions{
			RepositoryUri: cfg.RepositoryUri(),
			UniqueTag:     unique,
			LatestTag:     latest,
		}); err != nil {
			return "", err
		}
	}

	// 置換済みファイルの一時ディレクトリ（パイプライン終了時に必ず削除）
	tmpDir, err := os.MkdirTemp("", "deploytk-")
	if err != nil {
		return "", fmt.Errorf("❌ 一時ディレクトリの作成に失敗: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// タスク定義テンプレートを置換して登録
	vars := cfg.Vars(unique)
	taskDefPath := filepath.Join(tmpDir, "task-definition.json")
	if err := template.RenderFile(cfg.Templates.TaskDefinition, taskDefPath, vars); err != nil {
		return "", err
	}
	rendered, err := os.ReadFile(taskDefPath)
	if err != nil {
		return "", fmt.Errorf("❌ 置換済みタスク定義の読み込みに失敗: %w", err)
	}
	taskDefArn, err := deploysvc.RegisterTaskDefinition(clients.Ecs(), string(rendered))
	if err != nil {
		return "", err
	}

	// appspecテンプレートを置換して検証
	vars["TASK_DEFINITION"] = taskDefArn
	appSpecPath := filepath.Join(tmpDir, "appspec.yaml")
	if err := template.RenderFile(cfg.Templates.AppSpec, appSpecPath, vars); err != nil {
		return "", err
	}
	appSpecContent, err := os.ReadFile(appSpecPath)
	if err != nil {
		return "", fmt.Errorf("❌ 置換済みappspecの読み込みに失敗: %w", err)
	}
	if _, err := deploysvc.ParseAppSpec(string(appSpecContent), deploysvc.DefaultContainerPort); err != nil {
		return "", err
	}

	// Blue/Greenデプロイを作成して完了を待機
	deploymentId, err := deploysvc.CreateBlueGreen(clients.CodeDeploy(), deploysvc.BlueGreenOptions{
		Application:     cfg.CodeDeploy.Application,
		DeploymentGroup: cfg.CodeDeploy.DeploymentGroup,
		AppSpecContent:  string(appSpecContent),
		Description:     fmt.Sprintf("deploytk: %s", unique),
	})
	if err != nil {
		return "", err
	}

	if err := deploysvc.WaitForDeployment(clients.CodeDeploy(), deploymentId, timeoutSeconds); err != nil {
		return deploymentId, fmt.Errorf("❌ デプロイ完了待機エラー: %w", err)
	}

	// ワークフロー完了にはサービス安定まで必須
	if err := deploysvc.WaitForServiceStable(clients.Ecs(), deploysvc.WaitOptions{
		ClusterName:    cfg.Ecs.Cluster,
		ServiceName:    cfg.Ecs.Service,
		TimeoutSeconds: timeoutSeconds,
	}); err != nil {
		return deploymentId, fmt.Errorf("❌ サービス安定待機エラー: %w", err)
	}

	fmt.Println("🎉 デプロイが完了しました")
	return deploymentId, nil
}

// deployStatusCmd はECSサービスの状態を表示するコマンドです
var deployStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "ECSサービスの状態を表示するコマンド",
	Long: `デプロイ対象のECSサービスのタスク稼働状況とデプロイメント状況を表示するコマンドです。

例:
  ` + AppName + ` deploy status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		clients, err := newAwsClients(cfg.Aws.Region)
		if err != nil {
			return err
		}

		return deploysvc.ShowServiceStatus(clients.Ecs(), cfg.Ecs.Cluster, cfg.Ecs.Service)
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(deployCmd)
	deployCmd.AddCommand(deployRunCmd)
	deployCmd.AddCommand(deployStatusCmd)

	deployRunCmd.Flags().StringVar(&deployTag, "tag", "", "一意タグ (未指定ならgitのHEADから生成)")
	deployRunCmd.Flags().IntVar(&timeoutSeconds, "timeout", 600, "待機タイムアウト（秒）")
	deployRunCmd.Flags().BoolVar(&skipBuild, "skip-build", false, "ビルド・プッシュを省略してデプロイのみ行う")
}
