package deploy

import (
	"fmt"

	"deploytk/internal/service/template"

	"gopkg.in/yaml.v3"
)

// ParseAppSpec は置換済みappspec.yamlを解析して内容を検証する
// expectedPortはタスク定義側のコンテナポートと一致していなければならない
func ParseAppSpec(renderedYaml string, expectedPort int) (*AppSpec, error) {
	if err := template.Validate(renderedYaml); err != nil {
		return nil, fmt.Errorf("❌ appspecの検証に失敗: %w", err)
	}

	var spec AppSpec
	if err := yaml.Unmarshal([]byte(renderedYaml), &spec); err != nil {
		return nil, fmt.Errorf("❌ appspecのYAML解析に失敗: %w", err)
	}

	if spec.Version == nil {
		return nil, fmt.Errorf("❌ appspecにversionがありません")
	}
	if len(spec.Resources) != 1 {
		return nil, fmt.Errorf("❌ appspecのResourcesは1件である必要があります（%d件）", len(spec.Resources))
	}

	props := spec.Resources[0].TargetService.Properties
	if props.TaskDefinition == "" {
		return nil, fmt.Errorf("❌ appspecにTaskDefinitionがありません")
	}
	if props.LoadBalancerInfo.ContainerName == "" {
		return nil, fmt.Errorf("❌ appspecにContainerNameがありません")
	}
	if props.LoadBalancerInfo.ContainerPort != expectedPort {
		return nil, fmt.Errorf("❌ appspecのContainerPort %d がコンテナポート %d と一致しません",
			props.LoadBalancerInfo.ContainerPort, expectedPort)
	}

	return &spec, nil
}
