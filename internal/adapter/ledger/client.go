package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"payout-gateway/config"
	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	headerAPIKey   = "X-Api-Key"
	headerTenantID = "X-Tenant-Id"
)

// Client talks to the upstream ledger REST API. It is a thin relay: the
// ledger owns balances, the payout account, the PIN credential, and all
// withdrawal state. The client's job is the error mapping contract:
// 401 -> invalid PIN, 400 business codes -> BIZ errors, transport
// failures and timeouts -> a retryable NET error.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.LedgerClient = (*Client)(nil)

// NewClient creates a ledger client with the configured request timeout.
func NewClient(cfg config.LedgerConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// envelope is the upstream response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path, userID string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("marshal ledger request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build ledger request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerTenantID, userID)

	resp, err := c.http.Do(req)
	if err != nil {
		// Covers DNS errors, refused connections, and the client timeout.
		c.log.Warn().Err(err).Str("path", path).Msg("ledger request failed")
		return apperror.ErrLedgerUnavailable(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperror.ErrLedgerUnavailable(fmt.Errorf("read ledger response: %w", err))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return apperror.ErrLedgerUnavailable(fmt.Errorf("decode ledger response (%d): %w", resp.StatusCode, err))
	}

	if err := c.mapError(resp.StatusCode, &env); err != nil {
		return err
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperror.InternalError(fmt.Errorf("decode ledger data: %w", err))
		}
	}
	return nil
}

// mapError translates upstream failures into the local taxonomy. Raw
// upstream messages are only surfaced when no known code applies.
func (c *Client) mapError(status int, env *envelope) error {
	if status < http.StatusBadRequest && env.Success {
		return nil
	}

	switch status {
	case http.StatusUnauthorized:
		return apperror.ErrInvalidPin()
	case http.StatusForbidden:
		if env.Code == "PIN_NOT_SET" {
			return apperror.ErrPinNotConfigured()
		}
		return apperror.ErrInvalidPin()
	}

	switch env.Code {
	case "INSUFFICIENT_BALANCE":
		return apperror.ErrInsufficientBalance()
	case "NO_WITHDRAWAL_ACCOUNT":
		return apperror.ErrNoPayoutAccount()
	case "PIN_CONFIRMATION_REQUIRED":
		return apperror.ErrPinConfirmationRequired()
	case "PIN_NOT_SET":
		return apperror.ErrPinNotConfigured()
	case "CANCEL_NOT_ALLOWED":
		return apperror.ErrCancelNotAllowed()
	}

	if status >= http.StatusInternalServerError {
		return apperror.ErrLedgerUnavailable(fmt.Errorf("ledger returned %d: %s", status, env.Message))
	}
	if env.Code != "" {
		// Unknown but machine-readable: keep the code, hide nothing useful.
		return apperror.New(env.Code, env.Message, http.StatusBadRequest)
	}
	return apperror.InternalError(fmt.Errorf("ledger rejected request (%d): %s", status, env.Message))
}

// --- wire types ---

type balanceData struct {
	Current struct {
		Available int64 `json:"available"`
		Pending   int64 `json:"pending"`
		OnHold    int64 `json:"on_hold"`
	} `json:"current"`
}

type accountData struct {
	Current *struct {
		Method              string     `json:"method"`
		AccountName         string     `json:"accountName"`
		MaskedAccountNumber string     `json:"maskedAccountNumber,omitempty"`
		MaskedPhoneNumber   string     `json:"maskedPhoneNumber,omitempty"`
		Verified            bool       `json:"verified"`
		SetAt               *time.Time `json:"setAt,omitempty"`
	} `json:"current"`
	HasPin bool `json:"hasPin"`
}

type revealData struct {
	Current struct {
		AccountName   string `json:"accountName"`
		AccountNumber string `json:"accountNumber,omitempty"`
		PhoneNumber   string `json:"phoneNumber,omitempty"`
	} `json:"current"`
}

type saveAccountData struct {
	VerificationRequired bool `json:"verificationRequired"`
}

type withdrawalData struct {
	UID         string     `json:"uid"`
	Amount      int64      `json:"amount"`
	FeeAmount   int64      `json:"fee_amount"`
	Status      string     `json:"status"`
	Method      string     `json:"method"`
	Notes       string     `json:"notes,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

type withdrawalListData struct {
	Withdrawals []withdrawalData `json:"withdrawals"`
}

func toWithdrawal(w withdrawalData) domain.WithdrawalRequest {
	return domain.WithdrawalRequest{
		UID:         w.UID,
		Amount:      w.Amount,
		FeeAmount:   w.FeeAmount,
		Status:      domain.WithdrawalStatus(w.Status),
		Method:      domain.PayoutMethod(w.Method),
		Notes:       w.Notes,
		RequestedAt: w.RequestedAt,
		ProcessedAt: w.ProcessedAt,
	}
}

// --- LedgerClient implementation ---

// GetBalance implements ports.LedgerClient.
func (c *Client) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	var data balanceData
	if err := c.do(ctx, http.MethodGet, "/balance", userID, nil, &data); err != nil {
		return nil, err
	}
	return &domain.Balance{
		Available: data.Current.Available,
		Pending:   data.Current.Pending,
		OnHold:    data.Current.OnHold,
	}, nil
}

// GetPayoutAccount implements ports.LedgerClient. Returns (nil, nil) when
// no account is configured.
func (c *Client) GetPayoutAccount(ctx context.Context, userID string) (*domain.PayoutAccount, error) {
	var data accountData
	if err := c.do(ctx, http.MethodGet, "/withdrawal", userID, nil, &data); err != nil {
		return nil, err
	}
	if data.Current == nil {
		return nil, nil
	}

	acc := &domain.PayoutAccount{
		Method:              domain.PayoutMethod(data.Current.Method),
		AccountName:         data.Current.AccountName,
		MaskedAccountNumber: data.Current.MaskedAccountNumber,
		MaskedPhoneNumber:   data.Current.MaskedPhoneNumber,
		Verification:        domain.VerificationPending,
		HasPin:              data.HasPin,
	}
	if data.Current.Verified {
		acc.Verification = domain.VerificationVerified
	}
	if data.Current.SetAt != nil {
		acc.SetAt = *data.Current.SetAt
	}
	return acc, nil
}

// SavePayoutAccount implements ports.LedgerClient.
func (c *Client) SavePayoutAccount(ctx context.Context, userID string, input domain.PayoutAccountInput, pin string) (*ports.SaveAccountResult, error) {
	body := map[string]interface{}{
		"method":      string(input.Method),
		"accountName": input.AccountName,
	}
	if input.Method.IsBankRail() {
		body["accountNumber"] = input.AccountNumber
	} else {
		body["phoneNumber"] = input.PhoneNumber
	}
	if pin != "" {
		body["pin"] = pin
	}

	var data saveAccountData
	if err := c.do(ctx, http.MethodPost, "/withdrawal", userID, body, &data); err != nil {
		return nil, err
	}
	return &ports.SaveAccountResult{VerificationRequired: data.VerificationRequired}, nil
}

// DeletePayoutAccount implements ports.LedgerClient.
func (c *Client) DeletePayoutAccount(ctx context.Context, userID string, pin string) error {
	return c.do(ctx, http.MethodDelete, "/withdrawal", userID, map[string]string{"pin": pin}, nil)
}

// RevealFields implements ports.LedgerClient.
func (c *Client) RevealFields(ctx context.Context, userID string, pin string) (*domain.RevealedFields, error) {
	var data revealData
	if err := c.do(ctx, http.MethodPost, "/reveal-withdrawal-data", userID, map[string]string{"pin": pin}, &data); err != nil {
		return nil, err
	}
	return &domain.RevealedFields{
		AccountName:   data.Current.AccountName,
		AccountNumber: data.Current.AccountNumber,
		PhoneNumber:   data.Current.PhoneNumber,
	}, nil
}

// SubmitWithdrawal implements ports.LedgerClient.
func (c *Client) SubmitWithdrawal(ctx context.Context, userID string, req ports.SubmitWithdrawalRequest) (*domain.WithdrawalRequest, error) {
	body := map[string]interface{}{
		"amount": req.Amount,
		"pin":    req.Pin,
	}
	if req.Notes != "" {
		body["notes"] = req.Notes
	}

	var data withdrawalData
	if err := c.do(ctx, http.MethodPost, "/withdraw", userID, body, &data); err != nil {
		return nil, err
	}
	w := toWithdrawal(data)
	return &w, nil
}

// ListWithdrawals implements ports.LedgerClient.
func (c *Client) ListWithdrawals(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	var data withdrawalListData
	if err := c.do(ctx, http.MethodGet, "/withdrawals", userID, nil, &data); err != nil {
		return nil, err
	}
	items := make([]domain.WithdrawalRequest, 0, len(data.Withdrawals))
	for _, w := range data.Withdrawals {
		items = append(items, toWithdrawal(w))
	}
	return items, nil
}

// CancelWithdrawal implements ports.LedgerClient.
func (c *Client) CancelWithdrawal(ctx context.Context, userID string, uid string) error {
	return c.do(ctx, http.MethodPost, "/withdrawals/"+uid+"/cancel", userID, nil, nil)
}
