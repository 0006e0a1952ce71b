package api

import (
	"errors"
	"net/http"

	reqdto "fleet-rental/internal/handler/dto/request"
	"fleet-rental/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// PaymentHandler receives the payment provider's webhook and drives the
// pending booking to confirmed or cancelled.
type PaymentHandler struct {
	bookingCommands commands.BookingCommands
}

func NewPaymentHandler(bookingCommands commands.BookingCommands) *PaymentHandler {
	return &PaymentHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Payment webhook
// @Description Callback from the payment provider for a booking's payment outcome
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Payment event"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *PaymentHandler) HandlePaymentEvent(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var err error
	switch req.Status {
	case "succeeded":
		err = h.bookingCommands.ConfirmPayment(c.Request.Context(), req.BookingID)
	case "failed":
		err = h.bookingCommands.FailPayment(c.Request.Context(), req.BookingID)
	}
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			// Replayed or out-of-order webhook; the booking already moved on.
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking status does not allow this transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
