package sms

import (
	"context"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"
	"github.com/nyaruka/phonenumbers"

	"github.com/fundacionaurora/clinica_backend/config"
)

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client        *smsir.Client
	templateID    string
	defaultRegion string
	enabled       bool
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	region := cfg.DefaultRegion
	if region == "" {
		region = "ES"
	}

	return &Client{
		client:        client,
		templateID:    cfg.SMSIR.TemplateID,
		defaultRegion: region,
		enabled:       true,
	}, nil
}

// NormalizePhone parses a raw phone number and returns it in E.164 format.
// Numbers without a country code are interpreted in the default region.
func (c *Client) NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, c.defaultRegion)
	if err != nil {
		return "", fmt.Errorf("invalid phone number %q: %w", raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number %q", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// SendPayoutNotice notifies a therapist that a settlement has been paid. The
// configured template must have "periodo" and "importe" parameters.
// If SMS is disabled, this is a no-op and returns nil.
func (c *Client) SendPayoutNotice(ctx context.Context, phoneNumber, period, netAmount string) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if c.templateID == "" {
		return fmt.Errorf("template ID is required")
	}

	mobile, err := c.NormalizePhone(phoneNumber)
	if err != nil {
		return err
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     mobile,
		TemplateID: c.templateID,
		Parameters: []smsir.UltraFastParameter{
			{Key: "periodo", Value: period},
			{Key: "importe", Value: netAmount},
		},
	}

	_, err = c.client.Verification.UltraFastSend(ctx, req)
	if err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
