package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"voltlink/internal/directory"
	"voltlink/internal/models"
)

// Service fee applied on top of the energy cost, reported in snapshots.
const serviceFeePercent = 0.05

// Session flow errors.
var (
	ErrNoChargerSelected  = errors.New("sessions: no charger selected")
	ErrUnknownCharger     = errors.New("sessions: unknown charger")
	ErrChargerUnavailable = errors.New("sessions: charger is not available")
	ErrSessionActive      = errors.New("sessions: a session is already active")
	ErrNegotiationPending = errors.New("sessions: negotiation already in flight")
	ErrNoActiveSession    = errors.New("sessions: no active session")
)

// RejectionError carries the charger's refusal message.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// SessionListener receives a snapshot after every observable session change.
// A nil session means the session was cleared.
type SessionListener interface {
	SessionUpdated(session *models.Session)
}

// SessionsConfig tunes the simulated charging behaviour.
type SessionsConfig struct {
	TickInterval       time.Duration
	EnergyPerTickKwh   float64
	FallbackRatePerKwh float64
	GraceDelay         time.Duration
	VehicleID          string
}

// SessionsService owns the single active charging session: selection,
// negotiation, the simulated energy accrual, stop and clear.
type SessionsService struct {
	negotiator *Negotiator
	dir        *directory.Directory
	listener   SessionListener
	logger     *zap.Logger
	cfg        SessionsConfig

	// notifyMu is acquired before mu on every path that mutates the
	// session and notifies the listener, so snapshots are delivered in
	// the order the state changed.
	notifyMu sync.Mutex

	mu          sync.Mutex
	selectedID  string
	session     *models.Session
	ticker      *tickerHandle
	graceTimer  *time.Timer
	generation  uint64
	negotiating bool
}

// NewSessionsService builds service. The listener may be nil.
func NewSessionsService(negotiator *Negotiator, dir *directory.Directory, listener SessionListener, cfg SessionsConfig, logger *zap.Logger) *SessionsService {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.EnergyPerTickKwh <= 0 {
		cfg.EnergyPerTickKwh = 0.10
	}
	if cfg.FallbackRatePerKwh <= 0 {
		cfg.FallbackRatePerKwh = 0.40
	}
	if cfg.GraceDelay <= 0 {
		cfg.GraceDelay = 3 * time.Second
	}
	if cfg.VehicleID == "" {
		cfg.VehicleID = "USER_VEHICLE_01"
	}
	return &SessionsService{
		negotiator: negotiator,
		dir:        dir,
		listener:   listener,
		logger:     logger,
		cfg:        cfg,
	}
}

// SelectCharger records the charger the user is looking at.
func (s *SessionsService) SelectCharger(chargerID string) (models.Charger, error) {
	charger, ok := s.dir.Get(chargerID)
	if !ok {
		return models.Charger{}, ErrUnknownCharger
	}
	s.mu.Lock()
	s.selectedID = chargerID
	s.mu.Unlock()
	return charger, nil
}

// ClearSelection drops the current selection.
func (s *SessionsService) ClearSelection() {
	s.mu.Lock()
	s.selectedID = ""
	s.mu.Unlock()
}

// SelectedCharger returns the currently selected charger if any.
func (s *SessionsService) SelectedCharger() (models.Charger, bool) {
	s.mu.Lock()
	id := s.selectedID
	s.mu.Unlock()
	if id == "" {
		return models.Charger{}, false
	}
	return s.dir.Get(id)
}

// ActiveSession returns a snapshot of the current session.
func (s *SessionsService) ActiveSession() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// StartCharging negotiates a session for the selected charger and, on
// acceptance, starts the accrual loop. Only one negotiation may be in
// flight and only one session may exist at a time.
func (s *SessionsService) StartCharging(ctx context.Context) (models.Session, error) {
	s.mu.Lock()
	if s.negotiating {
		s.mu.Unlock()
		return models.Session{}, ErrNegotiationPending
	}
	if s.session != nil {
		s.mu.Unlock()
		return models.Session{}, ErrSessionActive
	}
	if s.selectedID == "" {
		s.mu.Unlock()
		return models.Session{}, ErrNoChargerSelected
	}
	charger, ok := s.dir.Get(s.selectedID)
	if !ok {
		s.mu.Unlock()
		return models.Session{}, ErrUnknownCharger
	}
	if charger.Status != models.ChargerStatusAvailable {
		s.mu.Unlock()
		return models.Session{}, ErrChargerUnavailable
	}
	s.negotiating = true
	s.mu.Unlock()

	outcome := s.negotiator.Negotiate(ctx, charger.ID, s.cfg.VehicleID)

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.mu.Lock()
	s.negotiating = false
	if outcome.Status != models.NegotiationAccepted {
		s.mu.Unlock()
		message := outcome.Message
		if message == "" {
			message = "Charger rejected the connection."
		}
		s.logger.Info("session rejected",
			zap.String("charger_id", charger.ID),
			zap.String("message", message))
		return models.Session{}, &RejectionError{Message: message}
	}

	session := &models.Session{
		ID:        outcome.SessionID,
		ChargerID: charger.ID,
		StartTime: time.Now().UTC(),
		IsActive:  true,
		Status:    models.SessionStatusCharging,
	}
	s.session = session
	s.generation++
	gen := s.generation
	handle := newTickerHandle()
	s.ticker = handle
	snapshot := *session
	s.mu.Unlock()

	go runTicks(handle, s.cfg.TickInterval, func() bool { return s.applyTick(gen) })

	s.logger.Info("session started",
		zap.String("session_id", snapshot.ID),
		zap.String("charger_id", snapshot.ChargerID),
		zap.Float64("estimated_max_power_kw", outcome.EstimatedMaxPower))

	s.notify(&snapshot)
	return snapshot, nil
}

// applyTick adds one energy increment to the session owned by the given
// generation. Returns false once the session left the charging state.
func (s *SessionsService) applyTick(gen uint64) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.mu.Lock()
	if s.generation != gen || s.session == nil || s.session.Status != models.SessionStatusCharging {
		s.mu.Unlock()
		return false
	}

	rate := s.cfg.FallbackRatePerKwh
	if charger, ok := s.dir.Get(s.session.ChargerID); ok {
		rate = charger.PricePerKwh
	}

	s.session.KwhDelivered += s.cfg.EnergyPerTickKwh
	s.session.CurrentCost += s.cfg.EnergyPerTickKwh * rate
	s.session.ServiceFee = s.session.CurrentCost * serviceFeePercent
	snapshot := *s.session
	s.mu.Unlock()

	s.notify(&snapshot)
	return true
}

// StopCharging completes the active session, halts the accrual loop and
// schedules the clear after the grace delay.
func (s *SessionsService) StopCharging() (models.Session, error) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.mu.Lock()
	if s.session == nil || s.session.Status != models.SessionStatusCharging {
		s.mu.Unlock()
		return models.Session{}, ErrNoActiveSession
	}

	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.session.Status = models.SessionStatusCompleted
	s.session.IsActive = false
	snapshot := *s.session
	gen := s.generation
	s.graceTimer = time.AfterFunc(s.cfg.GraceDelay, func() { s.clear(gen) })
	s.mu.Unlock()

	s.logger.Info("session stopped",
		zap.String("session_id", snapshot.ID),
		zap.Float64("kwh_delivered", snapshot.KwhDelivered),
		zap.Float64("final_cost", snapshot.CurrentCost))

	s.notify(&snapshot)
	return snapshot, nil
}

// clear discards the completed session if it still belongs to the given
// generation.
func (s *SessionsService) clear(gen uint64) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.mu.Lock()
	if s.generation != gen || s.session == nil {
		s.mu.Unlock()
		return
	}
	s.session = nil
	s.graceTimer = nil
	s.mu.Unlock()

	s.notify(nil)
}

// Close halts any running timers. The session itself is process-lifetime
// state and needs no further teardown.
func (s *SessionsService) Close() {
	s.mu.Lock()
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	if s.graceTimer != nil {
		s.graceTimer.Stop()
		s.graceTimer = nil
	}
	s.mu.Unlock()
}

func (s *SessionsService) notify(session *models.Session) {
	if s.listener == nil {
		return
	}
	s.listener.SessionUpdated(session)
}
