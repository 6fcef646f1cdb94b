package email

import (
	"fmt"
	"strings"
)

// PayoutEmailData contains the data needed for settlement notification emails.
// Amounts are in euro cents.
type PayoutEmailData struct {
	TherapistName string
	Email         string
	PeriodStart   string
	PeriodEnd     string
	GrossAmount   int64
	Commission    int64
	Deduction     int64
	NetAmount     int64
	TransferRef   string
	AppName       string
}

// BuildPayoutPaidEmail creates the notification sent to a therapist when
// their settlement is marked as paid.
func BuildPayoutPaidEmail(data PayoutEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Fundación Aurora"
	}

	name := data.TherapistName
	if name == "" {
		name = "terapeuta"
	}

	subject := fmt.Sprintf("Liquidación abonada: %s a %s", data.PeriodStart, data.PeriodEnd)

	ref := data.TransferRef
	if ref == "" {
		ref = "-"
	}

	textBody := fmt.Sprintf(`Hola %s,

Tu liquidación del periodo %s a %s ha sido abonada.

Desglose:
  Importe bruto:   %s
  Comisión:       -%s
  Retención:      -%s
  Importe neto:    %s

Referencia de transferencia: %s

Un saludo,
%s`,
		name, data.PeriodStart, data.PeriodEnd,
		FormatEUR(data.GrossAmount), FormatEUR(data.Commission),
		FormatEUR(data.Deduction), FormatEUR(data.NetAmount),
		ref, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hola %s,</h2>
    <p>Tu liquidación del periodo <strong>%s</strong> a <strong>%s</strong> ha sido abonada.</p>
    <table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 0;">Importe bruto</td><td style="text-align: right;">%s</td></tr>
        <tr><td style="padding: 6px 0;">Comisión</td><td style="text-align: right;">-%s</td></tr>
        <tr><td style="padding: 6px 0;">Retención</td><td style="text-align: right;">-%s</td></tr>
        <tr><td style="padding: 6px 0; border-top: 1px solid #e5e7eb;"><strong>Importe neto</strong></td><td style="text-align: right; border-top: 1px solid #e5e7eb;"><strong>%s</strong></td></tr>
    </table>
    <p>Referencia de transferencia: <span style="background-color: #f3f4f6; padding: 4px 8px; border-radius: 4px; font-family: monospace;">%s</span></p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Un saludo,<br>%s</p>
</body>
</html>`,
		name, data.PeriodStart, data.PeriodEnd,
		FormatEUR(data.GrossAmount), FormatEUR(data.Commission),
		FormatEUR(data.Deduction), FormatEUR(data.NetAmount),
		ref, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// FormatEUR renders euro cents as "1.234,56 €".
func FormatEUR(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("%s,%02d €", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}
