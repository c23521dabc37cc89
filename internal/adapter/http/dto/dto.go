package dto

import (
	"time"

	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
)

// ---- Wizard ----

// EnterAmountRequest is the request body for the amount entry step.
type EnterAmountRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// ConfirmAccountRequest is the request body for the account confirmation step.
type ConfirmAccountRequest struct {
	Notes string `json:"notes" binding:"max=255"`
}

// PinRequest carries a PIN for submit, reveal, and account removal. The PIN
// is shape-checked in the service layer so the error carries the VAL code.
type PinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// FeeQuoteResponse is the fee breakdown shown from amount entry onward.
type FeeQuoteResponse struct {
	Amount int64 `json:"amount"`
	Fee    int64 `json:"fee"`
	Net    int64 `json:"net"`
}

// WizardViewResponse is the session state projected for the client.
type WizardViewResponse struct {
	SessionID   string                 `json:"session_id"`
	Step        string                 `json:"step"`
	Amount      int64                  `json:"amount,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	FailureCode string                 `json:"failure_code,omitempty"`
	ResultUID   string                 `json:"result_uid,omitempty"`
	Quote       *FeeQuoteResponse      `json:"quote,omitempty"`
	Account     *PayoutAccountResponse `json:"account,omitempty"`
	Presets     []ports.PresetOption   `json:"presets,omitempty"`
	Closed      bool                   `json:"closed,omitempty"`
}

// ToWizardViewResponse maps a service view onto the wire shape.
func ToWizardViewResponse(view *ports.WizardView) WizardViewResponse {
	resp := WizardViewResponse{
		SessionID:   view.Session.ID.String(),
		Step:        string(view.Session.Step),
		Amount:      view.Session.Amount,
		Notes:       view.Session.Notes,
		FailureCode: view.Session.FailureCode,
		ResultUID:   view.Session.ResultUID,
		Presets:     view.Presets,
		Closed:      view.Closed,
	}
	if view.Quote != nil {
		resp.Quote = &FeeQuoteResponse{
			Amount: view.Quote.Amount,
			Fee:    view.Quote.Fee,
			Net:    view.Quote.Net,
		}
	}
	if view.Account != nil {
		acc := ToPayoutAccountResponse(view.Account)
		resp.Account = &acc
	}
	return resp
}

// ---- Payout account ----

// SavePayoutAccountRequest is the request body for creating or replacing
// the payout account. Pin is empty on the first phase of the two-phase save.
type SavePayoutAccountRequest struct {
	Method        string `json:"method" binding:"required,payout_method"`
	AccountName   string `json:"account_name" binding:"required,max=100"`
	AccountNumber string `json:"account_number,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	Pin           string `json:"pin,omitempty"`
}

// ToPayoutAccountInput maps the request onto the domain input.
func (r SavePayoutAccountRequest) ToPayoutAccountInput() domain.PayoutAccountInput {
	return domain.PayoutAccountInput{
		Method:        domain.PayoutMethod(r.Method),
		AccountName:   r.AccountName,
		AccountNumber: r.AccountNumber,
		PhoneNumber:   r.PhoneNumber,
	}
}

// PayoutAccountResponse is the masked account snapshot.
type PayoutAccountResponse struct {
	Method              string `json:"method"`
	AccountName         string `json:"account_name"`
	MaskedAccountNumber string `json:"masked_account_number,omitempty"`
	MaskedPhoneNumber   string `json:"masked_phone_number,omitempty"`
	Verification        string `json:"verification"`
	HasPin              bool   `json:"has_pin"`
	SetAt               string `json:"set_at"`
}

// ToPayoutAccountResponse maps a domain account onto the wire shape.
func ToPayoutAccountResponse(a *domain.PayoutAccount) PayoutAccountResponse {
	return PayoutAccountResponse{
		Method:              string(a.Method),
		AccountName:         a.AccountName,
		MaskedAccountNumber: a.MaskedAccountNumber,
		MaskedPhoneNumber:   a.MaskedPhoneNumber,
		Verification:        string(a.Verification),
		HasPin:              a.HasPin,
		SetAt:               a.SetAt.UTC().Format(time.RFC3339),
	}
}

// SaveAccountResponse is the response body for a successful save.
type SaveAccountResponse struct {
	VerificationRequired bool   `json:"verification_required"`
	Message              string `json:"message,omitempty"`
}

// RevealedFieldsResponse is the one-shot plaintext disclosure. Never cached
// or echoed anywhere else.
type RevealedFieldsResponse struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
}

// ---- History ----

// WithdrawalResponse is one withdrawal request in the history list.
type WithdrawalResponse struct {
	UID         string  `json:"uid"`
	Amount      int64   `json:"amount"`
	FeeAmount   int64   `json:"fee_amount"`
	NetAmount   int64   `json:"net_amount"`
	Status      string  `json:"status"`
	Method      string  `json:"method"`
	Notes       string  `json:"notes,omitempty"`
	Cancellable bool    `json:"cancellable"`
	RequestedAt string  `json:"requested_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

// ToWithdrawalResponse maps a domain withdrawal onto the wire shape.
func ToWithdrawalResponse(w *domain.WithdrawalRequest) WithdrawalResponse {
	resp := WithdrawalResponse{
		UID:         w.UID,
		Amount:      w.Amount,
		FeeAmount:   w.FeeAmount,
		NetAmount:   w.NetAmount(),
		Status:      string(w.Status),
		Method:      string(w.Method),
		Notes:       w.Notes,
		Cancellable: w.Cancellable(),
		RequestedAt: w.RequestedAt.UTC().Format(time.RFC3339),
	}
	if w.ProcessedAt != nil {
		s := w.ProcessedAt.UTC().Format(time.RFC3339)
		resp.ProcessedAt = &s
	}
	return resp
}

// ToWithdrawalListResponse maps a slice of withdrawals.
func ToWithdrawalListResponse(items []domain.WithdrawalRequest) []WithdrawalResponse {
	out := make([]WithdrawalResponse, 0, len(items))
	for i := range items {
		out = append(out, ToWithdrawalResponse(&items[i]))
	}
	return out
}

// BalanceResponse is the ledger funds snapshot.
type BalanceResponse struct {
	Available int64 `json:"available"`
	Pending   int64 `json:"pending"`
	OnHold    int64 `json:"on_hold"`
}
