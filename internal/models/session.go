package models

import "time"

// SessionStatus tracks the lifecycle of a charging session.
// StatusError is reserved: no transition currently produces it.
type SessionStatus string

const (
	SessionStatusInitializing SessionStatus = "initializing"
	SessionStatusCharging     SessionStatus = "charging"
	SessionStatusCompleted    SessionStatus = "completed"
	SessionStatusError        SessionStatus = "error"
)

// Session is a single charging transaction with accruing energy and cost.
type Session struct {
	ID           string        `json:"id"`
	ChargerID    string        `json:"charger_id"`
	StartTime    time.Time     `json:"start_time"`
	KwhDelivered float64       `json:"kwh_delivered"`
	CurrentCost  float64       `json:"current_cost"`
	ServiceFee   float64       `json:"service_fee"`
	IsActive     bool          `json:"is_active"`
	Status       SessionStatus `json:"status"`
}

// Negotiation decision values returned by the remote gateway.
const (
	NegotiationAccepted = "ACCEPTED"
	NegotiationRejected = "REJECTED"
)

// NegotiationOutcome is the structured decision for a session start request.
type NegotiationOutcome struct {
	Status            string  `json:"status"`
	SessionID         string  `json:"sessionId"`
	Message           string  `json:"message"`
	EstimatedMaxPower float64 `json:"estimatedMaxPower"`
}
