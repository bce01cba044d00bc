package notify

import (
	"fmt"
	"strings"
	"time"
)

// UpstreamAlert formats an upstream health transition for Telegram.
func UpstreamAlert(baseURL, endpoint string, rate float64, degraded bool, at time.Time) string {
	title := "🔴 결제 API 응답 저하"
	if !degraded {
		title = "🟢 결제 API 정상화"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n", escapeMarkdown(title)))
	sb.WriteString(fmt.Sprintf("*API:* %s\n", escapeMarkdown(baseURL+endpoint)))
	sb.WriteString(fmt.Sprintf("*성공률:* %s\n", escapeMarkdown(fmt.Sprintf("%.1f%%", rate))))
	sb.WriteString(fmt.Sprintf("*시각:* %s\n", escapeMarkdown(at.Format("2006-01-02 15:04:05"))))
	return sb.String()
}

// escapeMarkdown escapes the Telegram MarkdownV2 special characters.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"(", "\\(",
		")", "\\)",
		"~", "\\~",
		"`", "\\`",
		">", "\\>",
		"#", "\\#",
		"+", "\\+",
		"-", "\\-",
		"=", "\\=",
		"|", "\\|",
		"{", "\\{",
		"}", "\\}",
		".", "\\.",
		"!", "\\!",
	)
	return replacer.Replace(s)
}
