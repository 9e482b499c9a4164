package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// payload はSlack Incoming Webhookのリクエストボディ
type payload struct {
	Text string `json:"text"`
}

// Message はデプロイ結果通知の内容
type Message struct {
	Environment  string
	ImageTag     string
	DeploymentId string
	Succeeded    bool
	Duration     time.Duration
}

// Text は通知本文を組み立てる
func (m Message) Text() string {
	icon := "✅ デプロイ成功"
	if !m.Succeeded {
		icon = "❌ デプロイ失敗"
	}
	text := fmt.Sprintf("%s [%s] タグ: %s", icon, m.Environment, m.ImageTag)
	if m.DeploymentId != "" {
		text += fmt.Sprintf(" デプロイID: %s", m.DeploymentId)
	}
	if m.Duration > 0 {
		text += fmt.Sprintf(" 所要時間: %s", m.Duration.Round(time.Second))
	}
	return text
}

// PostStatus はSlack Webhookにデプロイ結果を通知する
// デプロイの成否にかかわらず必ず呼び出すこと（通知失敗はデプロイ結果を上書きしない）
func PostStatus(webhookUrl string, msg Message) error {
	return PostText(webhookUrl, msg.Text())
}

// PostText はSlack Webhookにテキストを送信する
func PostText(webhookUrl, text string) error {
	if webhookUrl == "" {
		fmt.Println("⚠️ Slack Webhook URLが未設定のため通知をスキップします")
		return nil
	}

	body, err := json.Marshal(payload{Text: text})
	if err != nil {
		return fmt.Errorf("通知ボディの構築に失敗: %w", err)
	}

	resp, err := httpClient.Post(webhookUrl, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("Slack通知の送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Slack通知がステータス %d で拒否されました", resp.StatusCode)
	}

	fmt.Println("✅ Slackに通知しました")
	return nil
}
