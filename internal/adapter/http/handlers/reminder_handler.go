package handlers

import (
	"net/http"

	"agencyops/internal/usecase"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	usecase usecase.IReminderUseCase
}

func NewReminderHandler(uc usecase.IReminderUseCase) *ReminderHandler {
	return &ReminderHandler{usecase: uc}
}

// RunPaymentReminders godoc
// @Summary Run the payment reminder batch now
// @Description Per-lead failures are counted in the report instead of failing the run.
// @Tags admin-leads
// @Produce json
// @Success 200 {object} usecase.ReminderReport
// @Security BearerAuth
// @Router /admin/reminders/run [post]
func (h *ReminderHandler) RunPaymentReminders(c *gin.Context) {
	report, err := h.usecase.RunPaymentReminders(c.Request.Context())
	if err != nil {
		respondError(c, pkg.NewInternalError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}
