package handler

import (
	"payout-gateway/internal/adapter/http/dto"
	"payout-gateway/internal/adapter/http/middleware"
	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/apperror"
	"payout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// HistoryHandler handles withdrawal history and balance endpoints.
type HistoryHandler struct {
	historySvc ports.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historySvc ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{historySvc: historySvc}
}

// List handles GET /api/v1/withdrawals?status=.
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	filter := domain.WithdrawalStatus(c.Query("status"))
	items, err := h.historySvc.List(c.Request.Context(), userID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToWithdrawalListResponse(items))
}

// Refresh handles POST /api/v1/withdrawals/refresh.
func (h *HistoryHandler) Refresh(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	items, err := h.historySvc.Refresh(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToWithdrawalListResponse(items))
}

// Cancel handles DELETE /api/v1/withdrawals/:uid.
func (h *HistoryHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	if err := h.historySvc.Cancel(c.Request.Context(), userID, c.Param("uid")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Balance handles GET /api/v1/balance.
func (h *HistoryHandler) Balance(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, err := h.historySvc.Balance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{
		Available: balance.Available,
		Pending:   balance.Pending,
		OnHold:    balance.OnHold,
	})
}
