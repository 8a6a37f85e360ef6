package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TwilioSender delivers SMS through Twilio's Messages REST endpoint.
type TwilioSender struct {
	accountSID string
	authToken  string
	from       string
	client     *http.Client
	baseURL    string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	return &TwilioSender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.twilio.com",
	}
}

// NotifyApproval sends the registration-confirmed SMS to a freshly approved
// player.
func (t *TwilioSender) NotifyApproval(ctx context.Context, playerName, playerPhone, teamName, playerID string) error {
	message := fmt.Sprintf(
		"Hello %s, your registration for %s is confirmed! Your Player ID: %s. [Your Website Link].",
		playerName, teamName, playerID,
	)
	return t.send(ctx, FormatLocalPhone(playerPhone), message)
}

func (t *TwilioSender) send(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build Twilio request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Twilio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("Twilio returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

// FormatLocalPhone converts a locally formatted Bangladeshi number to E.164
// by dropping the leading zero and prepending the country code.
func FormatLocalPhone(phone string) string {
	if phone == "" {
		return phone
	}
	return "+880" + phone[1:]
}
