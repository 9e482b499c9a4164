package deploy

// DefaultContainerPort はコンテナが待ち受けるTCPポート
// タスク定義・イメージのEXPOSEと1:1で対応する
const DefaultContainerPort = 8000

// BlueGreenOptions はCodeDeployのBlue/Greenデプロイ作成オプション
type BlueGreenOptions struct {
	Application     string
	DeploymentGroup string
	AppSpecContent  string
	Description     string
}

// WaitOptions はデプロイ完了・サービス安定待機のオプション
type WaitOptions struct {
	ClusterName    string
	ServiceName    string
	TimeoutSeconds int
}

// AppSpec はECS向けappspec.yamlの構造
// versionはYAML上 0.0 のような浮動小数リテラルで書かれる
type AppSpec struct {
	Version   *float64 `yaml:"version"`
	Resources []struct {
		TargetService struct {
			Type       string `yaml:"Type"`
			Properties struct {
				TaskDefinition   string `yaml:"TaskDefinition"`
				LoadBalancerInfo struct {
					ContainerName string `yaml:"ContainerName"`
					ContainerPort int    `yaml:"ContainerPort"`
				} `yaml:"LoadBalancerInfo"`
			} `yaml:"Properties"`
		} `yaml:"TargetService"`
	} `yaml:"Resources"`
}
