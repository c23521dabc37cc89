package handler

import (
	"payout-gateway/internal/adapter/http/dto"
	"payout-gateway/internal/adapter/http/middleware"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"
	"payout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WizardHandler handles the withdrawal wizard endpoints.
type WizardHandler struct {
	wizardSvc ports.WizardService
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(wizardSvc ports.WizardService) *WizardHandler {
	return &WizardHandler{wizardSvc: wizardSvc}
}

// Start handles POST /api/v1/withdrawals/wizard.
func (h *WizardHandler) Start(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	view, err := h.wizardSvc.Start(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToWizardViewResponse(view))
}

// Get handles GET /api/v1/withdrawals/wizard/:id.
func (h *WizardHandler) Get(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	view, err := h.wizardSvc.Get(c.Request.Context(), userID, sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToWizardViewResponse(view))
}

// EnterAmount handles POST /api/v1/withdrawals/wizard/:id/amount.
func (h *WizardHandler) EnterAmount(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var req dto.EnterAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("amount", "a positive amount is required"))
		return
	}

	view, err := h.wizardSvc.EnterAmount(c.Request.Context(), userID, sessionID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToWizardViewResponse(view))
}

// ConfirmAccount handles POST /api/v1/withdrawals/wizard/:id/confirm-account.
func (h *WizardHandler) ConfirmAccount(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var req dto.ConfirmAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("notes", "notes must be at most 255 characters"))
		return
	}
	dto.SanitizeStruct(&req)

	view, err := h.wizardSvc.ConfirmAccount(c.Request.Context(), userID, sessionID, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToWizardViewResponse(view))
}

// Reveal handles POST /api/v1/withdrawals/wizard/:id/reveal.
func (h *WizardHandler) Reveal(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMalformedPin())
		return
	}

	fields, err := h.wizardSvc.RevealDuringConfirm(c.Request.Context(), userID, sessionID, req.Pin)
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

// ConfirmSummary handles POST /api/v1/withdrawals/wizard/:id/confirm-summary.
func (h *WizardHandler) ConfirmSummary(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	view, err := h.wizardSvc.ConfirmSummary(c.Request.Context(), userID, sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToWizardViewResponse(view))
}

// Submit handles POST /api/v1/withdrawals/wizard/:id/submit.
func (h *WizardHandler) Submit(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMalformedPin())
		return
	}

	view, err := h.wizardSvc.Submit(c.Request.Context(), userID, sessionID, req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToWizardViewResponse(view))
}

// Back handles POST /api/v1/withdrawals/wizard/:id/back.
func (h *WizardHandler) Back(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	view, err := h.wizardSvc.Back(c.Request.Context(), userID, sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToWizardViewResponse(view))
}

// sessionParams extracts the authenticated user and the session id from
// the request, writing the error response itself on failure.
func (h *WizardHandler) sessionParams(c *gin.Context) (string, uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", uuid.Nil, false
	}
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrSessionNotFound())
		return "", uuid.Nil, false
	}
	return userID, sessionID, true
}
