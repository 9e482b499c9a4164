package cmd

import (
	"fmt"
	"strings"

	"deploytk/internal/service/template"

	"github.com/spf13/cobra"
)

var (
	templatePath string
	outputPath   string
	imageTag     string
	extraVars    []string
)

// renderCmd はテンプレートのプレースホルダーを置換するコマンドです
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "テンプレートのプレースホルダーを置換するコマンド",
	Long: `タスク定義やappspecのテンプレート中の ${NAME} プレースホルダーを
設定ファイルの値で置換して出力するコマンドです。
未解決のプレースホルダーが残っている場合はエラーになります。

例:
  ` + AppName + ` render -t templates/task-definition.json -o task-definition.json --tag prd-abc1234-202401010000
  ` + AppName + ` render -t templates/appspec.yaml -o appspec.yaml --tag prd-abc1234-202401010000 --var TASK_DEFINITION=arn:aws:ecs:...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}

		vars := cfg.Vars(imageTag)
		for _, kv := range extraVars {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) != 2 || parts[0] == "" {
				return fmt.Errorf("❌ --varは KEY=VALUE 形式で指定してください: '%s'", kv)
			}
			vars[parts[0]] = parts[1]
		}

		return template.RenderFile(templatePath, outputPath, vars)
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&templatePath, "template", "t", "", "テンプレートファイル")
	renderCmd.Flags().StringVarP(&outputPath, "out", "o", "", "出力先ファイル")
	renderCmd.Flags().StringVar(&imageTag, "tag", "", "IMAGE_TAGに設定するイメージタグ")
	renderCmd.Flags().StringArrayVar(&extraVars, "var", nil, "追加の置換変数 (KEY=VALUE、複数指定可)")
	_ = renderCmd.MarkFlagRequired("template")
	_ = renderCmd.MarkFlagRequired("out")
	_ = renderCmd.MarkFlagRequired("tag")
}
