package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"voltlink/internal/models"
)

// NegotiationService is the remote decision-maker that authorizes a session
// start. Implemented by the Gemini client; tests substitute fakes.
type NegotiationService interface {
	StartSession(ctx context.Context, chargerID, vehicleID string) (models.NegotiationOutcome, error)
}

const (
	fallbackMessage    = "Connection established (Fallback Mode)"
	fallbackMaxPowerKW = 50
)

// Negotiator issues a single session start request and interprets the
// decision. Transport and parse failures never surface to the caller:
// the demo must stay usable offline, so they are masked by a synthesized
// ACCEPTED outcome.
type Negotiator struct {
	remote NegotiationService
	logger *zap.Logger
	now    func() time.Time
}

// NewNegotiator builds negotiator.
func NewNegotiator(remote NegotiationService, logger *zap.Logger) *Negotiator {
	return &Negotiator{
		remote: remote,
		logger: logger,
		now:    time.Now,
	}
}

// Negotiate requests a session start decision for the charger. The returned
// outcome is always well-formed: either the remote decision or the fallback.
func (n *Negotiator) Negotiate(ctx context.Context, chargerID, vehicleID string) models.NegotiationOutcome {
	outcome, err := n.remote.StartSession(ctx, chargerID, vehicleID)
	if err == nil && validOutcome(outcome) {
		return outcome
	}

	n.logger.Warn("session negotiation unreachable, using fallback",
		zap.String("charger_id", chargerID),
		zap.Error(err))

	return models.NegotiationOutcome{
		Status:            models.NegotiationAccepted,
		SessionID:         fmt.Sprintf("mock_%d", n.now().UnixMilli()),
		Message:           fallbackMessage,
		EstimatedMaxPower: fallbackMaxPowerKW,
	}
}

// validOutcome rejects malformed decisions; they are treated the same as a
// transport failure.
func validOutcome(o models.NegotiationOutcome) bool {
	switch o.Status {
	case models.NegotiationAccepted:
		return o.SessionID != ""
	case models.NegotiationRejected:
		return true
	default:
		return false
	}
}
