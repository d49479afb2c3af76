package services

import (
	"context"
	"strings"
	"time"

	"github.com/shashiranjanraj/stylestore/app/models"
)

// PaymentProcessor simulates a payment provider. There is no real charge:
// it pauses for a configured delay and hands back a summary holding only
// the card's last four digits and the cardholder name — the full number
// and CVV are dropped on the floor here and never reach an order.
type PaymentProcessor struct {
	delay time.Duration
}

// NewPaymentProcessor returns a processor with the given simulated
// processing delay.
func NewPaymentProcessor(delay time.Duration) *PaymentProcessor {
	return &PaymentProcessor{delay: delay}
}

// Process waits out the simulated delay cooperatively and returns the
// payment summary. If ctx is cancelled mid-delay — the shopper navigated
// away — it returns ctx.Err() and the checkout simply never happens; the
// scheduled continuation is inert, not a fault.
func (p *PaymentProcessor) Process(ctx context.Context, nameOnCard, cardNumber string) (models.PaymentSummary, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.PaymentSummary{}, ctx.Err()
		}
	}

	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	last4 := cleaned
	if len(cleaned) > 4 {
		last4 = cleaned[len(cleaned)-4:]
	}

	return models.PaymentSummary{
		CardLast4:   last4,
		NameOnCard:  nameOnCard,
		PaymentDate: time.Now().UTC(),
	}, nil
}
