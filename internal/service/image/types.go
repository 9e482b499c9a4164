package image

// InstallPhase はpipインストールの1フェーズを表す
type InstallPhase struct {
	Name         string
	Requirements []string
}

// BuildPlan は順序制約込みのインストール計画
type BuildPlan struct {
	Phases []InstallPhase
}

// BuildOptions はdocker buildのオプション
type BuildOptions struct {
	RepositoryUri string
	UniqueTag     string
	LatestTag     string
	ContextDir    string
	Dockerfile    string
}

// PushOptions はdocker pushのオプション
type PushOptions struct {
	RepositoryUri string
	UniqueTag     string
	LatestTag     string
}
