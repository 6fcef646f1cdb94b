package sms

import (
	"context"
	"testing"

	"github.com/fundacionaurora/clinica_backend/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: false,
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:     "",
			SecretKey:  "",
			TemplateID: "test-template",
		},
	}

	_, err := NewFromConfig(cfg)
	if err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestNewFromConfig_EnabledWithAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled:       true,
		DefaultRegion: "ES",
		SMSIR: config.SMSIRConfig{
			APIKey:     "test-api-key",
			SecretKey:  "test-secret-key",
			TemplateID: "test-template",
		},
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if !client.IsEnabled() {
		t.Error("Expected client to be enabled")
	}
}

func TestNormalizePhone(t *testing.T) {
	client := &Client{enabled: true, defaultRegion: "ES"}

	tests := []struct {
		name        string
		raw         string
		want        string
		expectError bool
	}{
		{
			name: "national number gets country code",
			raw:  "612345678",
			want: "+34612345678",
		},
		{
			name: "already E.164",
			raw:  "+34612345678",
			want: "+34612345678",
		},
		{
			name: "foreign number keeps its code",
			raw:  "+442071838750",
			want: "+442071838750",
		},
		{
			name:        "garbage",
			raw:         "not-a-number",
			expectError: true,
		},
		{
			name:        "too short",
			raw:         "12",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.NormalizePhone(tt.raw)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePhone(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSendPayoutNotice_DisabledClient(t *testing.T) {
	client := &Client{enabled: false}

	err := client.SendPayoutNotice(context.Background(), "+34612345678", "2026-07", "912,00 €")
	if err != nil {
		t.Errorf("Expected no error for disabled client, got: %v", err)
	}
}

func TestSendPayoutNotice_Validation(t *testing.T) {
	tests := []struct {
		name       string
		phone      string
		templateID string
	}{
		{
			name:       "empty phone number",
			phone:      "",
			templateID: "template-id",
		},
		{
			name:       "empty template ID",
			phone:      "+34612345678",
			templateID: "",
		},
		{
			name:       "unparseable phone",
			phone:      "garbage",
			templateID: "template-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{enabled: true, templateID: tt.templateID, defaultRegion: "ES"}
			err := client.SendPayoutNotice(context.Background(), tt.phone, "2026-07", "912,00 €")
			if err == nil {
				t.Error("Expected error but got nil")
			}
		})
	}
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"enabled client", true},
		{"disabled client", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{enabled: tt.enabled}
			if client.IsEnabled() != tt.enabled {
				t.Errorf("Expected IsEnabled() = %v, got %v", tt.enabled, client.IsEnabled())
			}
		})
	}
}
