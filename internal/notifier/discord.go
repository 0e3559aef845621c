package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ChartSentry/internal/model"
)

// DiscordNotifier posts rich embeds to a Discord webhook.
type DiscordNotifier struct {
	WebhookURL string
	Client     *http.Client
}

// NewDiscordNotifier creates a notifier with optional proxy support.
func NewDiscordNotifier(webhookURL, proxyURL string) *DiscordNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &DiscordNotifier{
		WebhookURL: webhookURL,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

func (d *DiscordNotifier) Name() string { return "discord" }

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Timestamp   string         `json:"timestamp"`
	Fields      []discordField `json:"fields"`
}

// Notify posts the signal as an embed. Discord answers 204 on success.
func (d *DiscordNotifier) Notify(ctx context.Context, evt *Event) error {
	color := 0x00FF00
	emoji := "🟢"
	if evt.Decision.Signal == model.SignalShort {
		color = 0xFF0000
		emoji = "🔴"
	}

	embed := discordEmbed{
		Title:       fmt.Sprintf("%s %s | %s", emoji, evt.Symbol, evt.Decision.State),
		Description: FormatNarrative(evt.Decision),
		Color:       color,
		Timestamp:   evt.Time.UTC().Format(time.RFC3339),
	}
	if rr := evt.Decision.RiskReward; rr != nil {
		embed.Fields = append(embed.Fields,
			discordField{Name: "Entry", Value: fmt.Sprintf("%.2f", rr.Entry), Inline: true},
			discordField{Name: "Stop", Value: fmt.Sprintf("%.2f", rr.StopLoss), Inline: true},
			discordField{Name: "Target", Value: fmt.Sprintf("%.2f", rr.TakeProfit), Inline: true},
		)
	}

	payload := map[string]interface{}{"embeds": []discordEmbed{embed}}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", d.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("discord post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discord webhook: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
