package ecr

// CleanupOptions はタグ削除のオプション
type CleanupOptions struct {
	RepositoryName string
	Environment    string
	KeepCount      int
	DryRun         bool
}
