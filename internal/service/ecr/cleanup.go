package ecr

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/gobwas/glob"
)

// CleanupTags は古い一意タグを削除する
// <environment>-latest と、<environment>-* にマッチする新しい順KeepCount件は残す
func CleanupTags(ecrClient *ecr.Client, opts CleanupOptions) error {
	fmt.Printf("🔍 リポジトリ '%s' の古いタグを確認します...\n", opts.RepositoryName)

	images, err := listImages(ecrClient, opts.RepositoryName)
	if err != nil {
		return fmt.Errorf("❌ イメージ一覧の取得に失敗: %w", err)
	}

	tags := collectTags(images)
	deleteTags, err := SelectTagsToDelete(tags, opts.Environment, opts.KeepCount)
	if err != nil {
		return err
	}

	if len(deleteTags) == 0 {
		fmt.Println("✅ 削除対象のタグはありません")
		return nil
	}

	fmt.Printf("📋 削除対象タグ: (全%d件)\n", len(deleteTags))
	for i, t := range deleteTags {
		fmt.Printf("  %3d. %s\n", i+1, t)
	}

	if opts.DryRun {
		fmt.Println("⚠️ ドライランのため削除は実行しません")
		return nil
	}

	var imageIds []types.ImageIdentifier
	for _, t := range deleteTags {
		imageIds = append(imageIds, types.ImageIdentifier{ImageTag: aws.String(t)})
	}

	_, err = ecrClient.BatchDeleteImage(context.Background(), &ecr.BatchDeleteImageInput{
		RepositoryName: aws.String(opts.RepositoryName),
		ImageIds:       imageIds,
	})
	if err != nil {
		return fmt.Errorf("❌ イメージの削除に失敗: %w", err)
	}

	fmt.Printf("✅ %d件のタグを削除しました\n", len(deleteTags))
	return nil
}

// SelectTagsToDelete は削除対象タグを選ぶ純粋関数
// 一意タグは <env>-<sha7>-<YYYYMMDDHHMM> 形式のため、
// 末尾のタイムスタンプ部の辞書順がそのまま時系列順になる
func SelectTagsToDelete(tags []string, environment string, keepCount int) ([]string, error) {
	if keepCount < 0 {
		return nil, fmt.Errorf("❌ 残す件数に負の値は指定できません: %d", keepCount)
	}

	pattern, err := glob.Compile(environment + "-*")
	if err != nil {
		return nil, fmt.Errorf("❌ タグパターンの構築に失敗: %w", err)
	}

	latestTag := environment + "-latest"
	var unique []string
	for _, t := range tags {
		if t == latestTag {
			continue
		}
		if pattern.Match(t) {
			unique = append(unique, t)
		}
	}

	// 新しいタグが先頭に来るようタイムスタンプ部で降順ソート
	sort.Slice(unique, func(i, j int) bool {
		return tagTimestamp(unique[i]) > tagTimestamp(unique[j])
	})

	if len(unique) <= keepCount {
		return nil, nil
	}
	return unique[keepCount:], nil
}

// tagTimestamp は一意タグから末尾のタイムスタンプ部を取り出す
func tagTimestamp(tag string) string {
	if i := strings.LastIndex(tag, "-"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// listImages はリポジトリの全イメージ詳細をページングしながら取得する
func listImages(ecrClient *ecr.Client, repoName string) ([]types.ImageDetail, error) {
	var imageDetails []types.ImageDetail
	var nextToken *string

	for {
		result, err := ecrClient.DescribeImages(context.Background(), &ecr.DescribeImagesInput{
			RepositoryName: aws.String(repoName),
			NextToken:      nextToken,
		})
		if err != nil {
			return nil, err
		}

		imageDetails = append(imageDetails, result.ImageDetails...)

		if result.NextToken == nil {
			break
		}
		nextToken = result.NextToken
	}

	return imageDetails, nil
}

// collectTags はイメージ詳細からタグ文字列を集める
func collectTags(images []types.ImageDetail) []string {
	var tags []string
	for _, img := range images {
		tags = append(tags, img.ImageTags...)
	}
	return tags
}
