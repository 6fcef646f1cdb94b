package email

import (
	"strings"
	"testing"
)

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0,00 €"},
		{5, "0,05 €"},
		{91200, "912,00 €"},
		{123456, "1.234,56 €"},
		{100000000, "1.000.000,00 €"},
		{-9150, "-91,50 €"},
	}

	for _, tt := range tests {
		if got := FormatEUR(tt.cents); got != tt.want {
			t.Errorf("FormatEUR(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestBuildPayoutPaidEmail(t *testing.T) {
	msg := BuildPayoutPaidEmail(PayoutEmailData{
		TherapistName: "María López",
		Email:         "maria@example.org",
		PeriodStart:   "2026-07-01",
		PeriodEnd:     "2026-07-31",
		GrossAmount:   100000,
		Commission:    5000,
		Deduction:     3800,
		NetAmount:     91200,
		TransferRef:   "TRF-2026-0042",
	})

	if len(msg.To) != 1 || msg.To[0] != "maria@example.org" {
		t.Errorf("To = %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "2026-07-01") {
		t.Errorf("subject missing period: %q", msg.Subject)
	}
	for _, want := range []string{"María López", "912,00 €", "TRF-2026-0042"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestBuildPayoutPaidEmailDefaults(t *testing.T) {
	msg := BuildPayoutPaidEmail(PayoutEmailData{Email: "t@example.org"})

	if !strings.Contains(msg.TextBody, "terapeuta") {
		t.Error("expected fallback salutation")
	}
	if !strings.Contains(msg.TextBody, "Fundación Aurora") {
		t.Error("expected default app name")
	}
}
