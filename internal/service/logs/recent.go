package logs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/aws/smithy-go"
)

// RecentOptions はログ取得のオプション
type RecentOptions struct {
	LogGroup string
	Since    time.Duration
	Limit    int32
}

// ShowRecent はロググループの直近のイベントを表示する（デプロイ後の動作確認用）
func ShowRecent(logsClient cloudwatchlogs.FilterLogEventsAPIClient, opts RecentOptions) error {
	fmt.Printf("🔍 ロググループ '%s' の直近 %s のログを取得します...\n", opts.LogGroup, opts.Since)

	events, err := fetchEvents(logsClient, opts)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException" {
			return fmt.Errorf("❌ ロググループ '%s' が見つかりません（初回デプロイ前の可能性があります）", opts.LogGroup)
		}
		return fmt.Errorf("❌ ログの取得に失敗: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("該当するログイベントはありませんでした")
		return nil
	}

	for _, event := range events {
		ts := "不明"
		if event.Timestamp != nil {
			ts = time.UnixMilli(*event.Timestamp).Format("2006-01-02 15:04:05")
		}
		fmt.Printf("  [%s] %s\n", ts, aws.ToString(event.Message))
	}

	fmt.Printf("\n合計: %d件のログイベント\n", len(events))
	return nil
}

// fetchEvents はページングしながらログイベントを集める
// Limitは1リクエストあたりではなく全ページ通算の上限として扱う
func fetchEvents(logsClient cloudwatchlogs.FilterLogEventsAPIClient, opts RecentOptions) ([]types.FilteredLogEvent, error) {
	startTime := time.Now().Add(-opts.Since).UnixMilli()

	var events []types.FilteredLogEvent
	var nextToken *string

	for {
		input := &cloudwatchlogs.FilterLogEventsInput{
			LogGroupName: aws.String(opts.LogGroup),
			StartTime:    aws.Int64(startTime),
			NextToken:    nextToken,
		}
		if opts.Limit > 0 {
			input.Limit = aws.Int32(opts.Limit - int32(len(events)))
		}

		resp, err := logsClient.FilterLogEvents(context.Background(), input)
		if err != nil {
			return nil, err
		}
		events = append(events, resp.Events...)

		if opts.Limit > 0 && int32(len(events)) >= opts.Limit {
			return events[:opts.Limit], nil
		}
		if resp.NextToken == nil {
			return events, nil
		}
		nextToken = resp.NextToken
	}
}
