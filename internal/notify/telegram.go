package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultAPIBase = "https://api.telegram.org"

type TelegramMessage struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
	Parse  string `json:"parse_mode"`
}

// Telegram sends operator alerts to one chat. With no token or chat id it is disabled
// and every send is a no-op.
type Telegram struct {
	token   string
	chatID  string
	apiBase string
	http    *http.Client
	log     *logrus.Logger
}

type TelegramOptions struct {
	Token   string // falls back to TELEGRAM_BOT_TOKEN
	ChatID  string
	APIBase string
	Timeout time.Duration
	Logger  *logrus.Logger
}

func NewTelegram(o TelegramOptions) *Telegram {
	if o.Token == "" {
		o.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if o.APIBase == "" {
		o.APIBase = defaultAPIBase
	}
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}
	if o.Logger == nil {
		o.Logger = logrus.New()
	}
	return &Telegram{
		token:   o.Token,
		chatID:  o.ChatID,
		apiBase: o.APIBase,
		http:    &http.Client{Timeout: o.Timeout},
		log:     o.Logger,
	}
}

func (t *Telegram) Enabled() bool {
	return t != nil && t.token != "" && t.chatID != ""
}

// Send posts content as a MarkdownV2 message.
func (t *Telegram) Send(ctx context.Context, content string) error {
	if !t.Enabled() {
		return nil
	}
	body, err := json.Marshal(TelegramMessage{ChatID: t.chatID, Text: content, Parse: "MarkdownV2"})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram send: status %d: %s", resp.StatusCode, b)
	}
	return nil
}

// SendAsync is Send on its own goroutine; failures are only logged.
func (t *Telegram) SendAsync(content string) {
	if !t.Enabled() {
		return
	}
	go func() {
		if err := t.Send(context.Background(), content); err != nil {
			t.log.WithError(err).Warn("telegram alert not delivered")
		}
	}()
}
