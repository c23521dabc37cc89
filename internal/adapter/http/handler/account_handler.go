package handler

import (
	"payout-gateway/internal/adapter/http/dto"
	"payout-gateway/internal/adapter/http/middleware"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"
	"payout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles payout account endpoints.
type AccountHandler struct {
	accountSvc ports.PayoutAccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.PayoutAccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// Get handles GET /api/v1/payout-account.
func (h *AccountHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	account, err := h.accountSvc.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if account == nil {
		response.Error(c, apperror.ErrNoPayoutAccount())
		return
	}
	response.OK(c, dto.ToPayoutAccountResponse(account))
}

// Save handles PUT /api/v1/payout-account. Without a pin in the body this
// is the first phase of the two-phase save; the BIZ_003 answer tells the
// client to re-submit with the pin.
func (h *AccountHandler) Save(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SavePayoutAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("body", "invalid payout account payload"))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.accountSvc.Save(c.Request.Context(), userID, req.ToPayoutAccountInput(), req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SaveAccountResponse{
		VerificationRequired: result.VerificationRequired,
		Message:              result.Message,
	})
}

// Remove handles DELETE /api/v1/payout-account.
func (h *AccountHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMalformedPin())
		return
	}

	if err := h.accountSvc.Remove(c.Request.Context(), userID, req.Pin); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reveal handles POST /api/v1/payout-account/reveal.
func (h *AccountHandler) Reveal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMalformedPin())
		return
	}

	fields, err := h.accountSvc.Reveal(c.Request.Context(), userID, req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RevealedFieldsResponse{
		AccountName:   fields.AccountName,
		AccountNumber: fields.AccountNumber,
		PhoneNumber:   fields.PhoneNumber,
	})
}
