package service

import (
	"context"
	"fmt"
	"time"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"
	"payout-gateway/pkg/requestmeta"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// submitLockTTL bounds how long a crashed submission can block the session.
const submitLockTTL = 30 * time.Second

// WizardServiceImpl implements ports.WizardService. Every call loads the
// session from the store, applies one legal transition, and saves it back,
// so the service stays stateless across replicas. Illegal transitions are
// rejected before any upstream call is made.
type WizardServiceImpl struct {
	ledger       ports.LedgerClient
	sessions     ports.WizardSessionStore
	accounts     ports.PayoutAccountService
	historyCache ports.HistoryCache
	submitLock   ports.SubmitLock
	audit        ports.AuditService
	fees         *FeeCalculator
	sessionTTL   time.Duration
	log          zerolog.Logger
}

// NewWizardService creates a new WizardServiceImpl.
func NewWizardService(
	ledger ports.LedgerClient,
	sessions ports.WizardSessionStore,
	accounts ports.PayoutAccountService,
	historyCache ports.HistoryCache,
	submitLock ports.SubmitLock,
	audit ports.AuditService,
	fees *FeeCalculator,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *WizardServiceImpl {
	return &WizardServiceImpl{
		ledger:       ledger,
		sessions:     sessions,
		accounts:     accounts,
		historyCache: historyCache,
		submitLock:   submitLock,
		audit:        audit,
		fees:         fees,
		sessionTTL:   sessionTTL,
		log:          log,
	}
}

// Start opens a fresh session at the amount entry step.
func (s *WizardServiceImpl) Start(ctx context.Context, userID string) (*ports.WizardView, error) {
	session := domain.NewWizardSession(userID)
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}
	s.log.Info().Str("user_id", userID).Str("session_id", session.ID.String()).Msg("withdrawal wizard started")
	return s.buildView(ctx, session)
}

// Get returns the current view of a session. The fee breakdown and the
// step context are recomputed on every read, never stored.
func (s *WizardServiceImpl) Get(ctx context.Context, userID string, sessionID uuid.UUID) (*ports.WizardView, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, session)
}

// EnterAmount validates the amount against the minimum and the freshly
// fetched available balance, then advances to account confirmation. A
// configured payout account is required to advance; without one the
// caller is pointed at account setup instead.
func (s *WizardServiceImpl) EnterAmount(ctx context.Context, userID string, sessionID uuid.UUID, amount int64) (*ports.WizardView, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != domain.StepAmountEntry {
		return nil, apperror.ErrIllegalTransition(string(session.Step))
	}

	if amount < s.fees.MinAmount() {
		return nil, apperror.ErrAmountBelowMinimum(s.fees.MinAmount())
	}
	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount > balance.Available {
		return nil, apperror.ErrAmountExceedsAvailable()
	}

	account, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.ErrNoPayoutAccount()
	}

	if !session.EnterAmount(amount) {
		return nil, apperror.ErrIllegalTransition(string(session.Step))
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}
	return s.buildView(ctx, session)
}

// ConfirmAccount records optional notes and advances to the summary.
func (s *WizardServiceImpl) ConfirmAccount(ctx context.Context, userID string, sessionID uuid.UUID, notes string) (*ports.WizardView, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.ConfirmAccount(notes) {
		return nil, apperror.ErrIllegalTransition(string(session.Step))
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}
	return s.buildView(ctx, session)
}

// RevealDuringConfirm relays a PIN-gated disclosure while the session sits
// at account confirmation. The step does not change either way.
func (s *WizardServiceImpl) RevealDuringConfirm(ctx context.Context, userID string, sessionID uuid.UUID, pin string) (*domain.RevealedFields, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != domain.StepAccountConfirm {
		return nil, apperror.ErrIllegalTransition(string(session.Step))
	}
	return s.accounts.Reveal(ctx, userID, pin)
}

// ConfirmSummary advances to PIN confirmation.
func (s *WizardServiceImpl) ConfirmSummary(ctx context.Context, userID string, sessionID uuid.UUID) (*ports.WizardView, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.ConfirmSummary() {
		return nil, apperror.ErrIllegalTransition(string(session.Step))
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}
	return s.buildView(ctx, session)
}

// Submit forwards the withdrawal with the PIN. At most one submission per
// session may be in flight. On a recoverable upstream rejection the
// session reroutes backward with its data intact and the error is
// returned; a subsequent Get shows the rerouted step.
func (s *WizardServiceImpl) Submit(ctx context.Context, userID string, sessionID uuid.UUID, pin string) (*ports.WizardView, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != domain.StepPinConfirm {
		return nil, apperror.ErrIllegalTransition(string(session.Step))
	}
	if !validPinShape(pin) {
		return nil, apperror.ErrMalformedPin()
	}

	lockKey := sessionID.String()
	acquired, err := s.submitLock.Acquire(ctx, lockKey, submitLockTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("acquire submit lock: %w", err))
	}
	if !acquired {
		return nil, apperror.ErrSubmitInFlight()
	}
	defer func() {
		if relErr := s.submitLock.Release(ctx, lockKey); relErr != nil {
			s.log.Warn().Err(relErr).Str("session_id", lockKey).Msg("submit lock release failed")
		}
	}()

	if !session.BeginSubmit() {
		return nil, apperror.ErrIllegalTransition(string(session.Step))
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}

	withdrawal, err := s.ledger.SubmitWithdrawal(ctx, userID, ports.SubmitWithdrawalRequest{
		Amount: session.Amount,
		Pin:    pin,
		Notes:  session.Notes,
	})
	if err != nil {
		return nil, s.handleSubmitFailure(ctx, session, err)
	}

	if !session.CompleteSubmit(withdrawal.UID) {
		return nil, apperror.ErrIllegalTransition(string(session.Step))
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}

	if cacheErr := s.historyCache.Invalidate(ctx, userID); cacheErr != nil {
		s.log.Warn().Err(cacheErr).Str("user_id", userID).Msg("history cache invalidation failed")
	}
	s.recordAudit(ctx, session, withdrawal.UID, nil)

	s.log.Info().
		Str("user_id", userID).
		Str("session_id", lockKey).
		Str("withdrawal_uid", withdrawal.UID).
		Int64("amount", session.Amount).
		Msg("withdrawal submitted")
	return s.buildView(ctx, session)
}

// handleSubmitFailure routes a rejected submission. Wrong PIN and the
// recoverable business rejections send the session backward with its data
// intact; everything else ends it at failed.
func (s *WizardServiceImpl) handleSubmitFailure(ctx context.Context, session *domain.WizardSession, err error) error {
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		appErr = apperror.InternalError(err)
	}

	switch appErr.Code {
	case "PIN_001", "NET_001":
		// Invalid PIN, or an unreachable ledger: re-enter the PIN and retry.
		session.RerouteToPinEntry()
	case "BIZ_001", "BIZ_002":
		// Balance moved or the account vanished since the summary was shown.
		session.RerouteToAmountEntry(appErr.Code)
	default:
		session.FailSubmit(appErr.Code)
	}

	if saveErr := s.sessions.Save(ctx, session, s.sessionTTL); saveErr != nil {
		s.log.Error().Err(saveErr).Str("session_id", session.ID.String()).Msg("failed to save rerouted session")
	}
	s.recordAudit(ctx, session, "", appErr)

	s.log.Warn().
		Str("session_id", session.ID.String()).
		Str("code", appErr.Code).
		Str("step", string(session.Step)).
		Msg("withdrawal submission rejected")
	return appErr
}

// Back steps to the previous state without clearing entered data. Back
// from amount entry closes the session.
func (s *WizardServiceImpl) Back(ctx context.Context, userID string, sessionID uuid.UUID) (*ports.WizardView, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	closed, ok := session.Back()
	if !ok {
		return nil, apperror.ErrIllegalTransition(string(session.Step))
	}
	if closed {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("delete session: %w", err))
		}
		return &ports.WizardView{Session: session, Closed: true}, nil
	}

	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}
	return s.buildView(ctx, session)
}

// load fetches a session and checks ownership. A session belonging to a
// different user is reported as not found, not as forbidden.
func (s *WizardServiceImpl) load(ctx context.Context, userID string, sessionID uuid.UUID) (*domain.WizardSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load session: %w", err))
	}
	if session == nil || session.UserID != userID {
		return nil, apperror.ErrSessionNotFound()
	}
	return session, nil
}

// buildView projects the session for the caller. Presets carry the fresh
// balance availability at amount entry; the account snapshot rides along
// from account confirmation onward.
func (s *WizardServiceImpl) buildView(ctx context.Context, session *domain.WizardSession) (*ports.WizardView, error) {
	view := &ports.WizardView{Session: session}

	if session.Amount > 0 {
		view.Quote = s.fees.Quote(session.Amount)
	}

	switch session.Step {
	case domain.StepAmountEntry:
		balance, err := s.ledger.GetBalance(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		view.Presets = s.fees.PresetOptions(balance.Available)
	case domain.StepAccountConfirm, domain.StepSummary, domain.StepPinConfirm:
		account, err := s.accounts.Get(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		view.Account = account
	}

	return view, nil
}

func (s *WizardServiceImpl) recordAudit(ctx context.Context, session *domain.WizardSession, withdrawalUID string, err error) {
	if s.audit == nil {
		return
	}
	resourceID := withdrawalUID
	if resourceID == "" {
		resourceID = session.ID.String()
	}
	s.audit.Record(ctx, &domain.AuditEntry{
		ID:         uuid.New(),
		UserID:     session.UserID,
		Action:     domain.AuditActionSubmitWithdrawal,
		ResourceID: resourceID,
		Outcome:    auditOutcome(err),
		Details:    fmt.Sprintf(`{"amount":%d}`, session.Amount),
		IPAddress:  requestmeta.ClientIP(ctx),
		CreatedAt:  time.Now().UTC(),
	})
}
