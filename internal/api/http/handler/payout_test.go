package handler

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/fundacionaurora/clinica_backend/internal/service/payout"
)

func TestMapPayoutError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", payout.ErrPayoutNotFound, fiber.StatusNotFound},
		{"empty period", payout.ErrEmptyPeriod, fiber.StatusUnprocessableEntity},
		{"already paid", payout.ErrAlreadyPaid, fiber.StatusConflict},
		{"invalid period", payout.ErrInvalidPeriod, fiber.StatusBadRequest},
		{"not owner", payout.ErrNotOwner, fiber.StatusForbidden},
		{"unexpected", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error {
				return mapPayoutError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestParsePeriodDefaultsToMensual(t *testing.T) {
	req, msg := parsePeriod("3b9e7a52-6c1d-4e0f-9a2b-8d4c5e6f7a80", "2026-07-01", "2026-07-31", "")
	if msg != "" {
		t.Fatalf("parsePeriod: %s", msg)
	}
	if req.PayoutType != "mensual" {
		t.Errorf("payout type = %s, want mensual", req.PayoutType)
	}

	if _, msg := parsePeriod("3b9e7a52-6c1d-4e0f-9a2b-8d4c5e6f7a80", "2026-07-01", "2026-07-31", "semanal"); msg == "" {
		t.Error("expected message for unknown payout type")
	}
}
