package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

const maxCompletionBody = 1 << 20

// ErrEmptyCompletion 応答にレシピの文章が含まれていない
var ErrEmptyCompletion = errors.New("completion has no content")

// StatusError APIが200以外を返した
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion endpoint returned %d: %s", e.StatusCode, e.Body)
}

// Retryable レート制限かサーバー側のエラーならリトライする
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

type GeneratorConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// ChatCompletionGenerator OpenAI互換の/chat/completionsを呼ぶ（デフォルトはOpenRouter）
type ChatCompletionGenerator struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

func NewChatCompletionGenerator(cfg GeneratorConfig) *ChatCompletionGenerator {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &ChatCompletionGenerator{
		endpoint: cfg.BaseURL + "/chat/completions",
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		client:   client,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// Generate プロンプトを1つのuserメッセージとして送り、最初のchoiceの本文を返す
func (g *ChatCompletionGenerator) Generate(ctx context.Context, prompt string) (recipe string, err error) {
	start := time.Now()
	defer func() {
		AIRequestDuration.Observe(time.Since(start).Seconds())
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		AIRequestsTotal.WithLabelValues(outcome).Inc()
	}()

	if g.apiKey == "" {
		return "", errors.New("AI_API_KEY is not configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model:    g.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "could not build completion request")
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCompletionBody))
	if err != nil {
		return "", errors.Wrap(err, "could not read completion response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 512)}
	}

	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return "", errors.Wrap(err, "malformed completion response")
	}
	content := v.GetStringBytes("choices", "0", "message", "content")
	if len(content) == 0 {
		return "", ErrEmptyCompletion
	}
	return string(content), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
