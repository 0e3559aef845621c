package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const lineNotifyURL = "https://notify-api.line.me/api/notify"

// LINENotifier sends plain-text messages through LINE Notify.
type LINENotifier struct {
	Token    string
	Endpoint string
	Client   *http.Client
}

// NewLINENotifier creates a notifier with optional proxy support.
func NewLINENotifier(token, proxyURL string) *LINENotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &LINENotifier{
		Token:    token,
		Endpoint: lineNotifyURL,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

func (l *LINENotifier) Name() string { return "line" }

// Notify sends the formatted signal text.
func (l *LINENotifier) Notify(ctx context.Context, evt *Event) error {
	form := url.Values{"message": {"\n" + FormatSignalText(evt)}}

	req, err := http.NewRequestWithContext(ctx, "POST", l.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+l.Token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := l.Client.Do(req)
	if err != nil {
		return fmt.Errorf("line post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("line notify: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
