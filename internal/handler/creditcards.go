// internal/handler/creditcards.go
package handler

import (
	"log/slog"
	"net/http"

	"sampada/internal/middleware"
	"sampada/internal/portfolio"

	"github.com/gin-gonic/gin"
)

type CreditCardsHandler struct{}

func NewCreditCardsHandler() *CreditCardsHandler {
	return &CreditCardsHandler{}
}

// GetCreditCards godoc
// @Summary Credit-card portfolio of the caller
// @Description Summary totals, cards, utilization, due-date timeline and recent activity
// @Tags credit-cards
// @Produce json
// @Success 200 {object} domain.CreditCardsResponse
// @Router /api/v1/credit-cards [get]
func (h *CreditCardsHandler) GetCreditCards(c *gin.Context) {
	holder := portfolio.HolderName(middleware.Holder(c))
	slog.Debug("GetCreditCards request received", "holder", holder)

	c.JSON(http.StatusOK, portfolio.Snapshot(holder))
}
