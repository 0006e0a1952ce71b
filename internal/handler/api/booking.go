package api

import (
	"errors"
	"net/http"

	"fleet-rental/internal/domain/booking"
	reqdto "fleet-rental/internal/handler/dto/request"
	resdto "fleet-rental/internal/handler/dto/response"
	"fleet-rental/internal/handler/middleware"
	"fleet-rental/internal/pkg/jwt"
	"fleet-rental/internal/usecase/commands"
	"fleet-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a vehicle for an inclusive date range; the total price is computed server-side
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreatedBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	period, err := req.ToPeriod()
	if err != nil {
		respondDateRangeError(c, err)
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingParams{
		VehicleID: req.VehicleID,
		UserID:    userID,
		Period:    period,
	})
	if err != nil {
		respondCreateBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Create booking as operator
// @Description Book a vehicle on behalf of a customer, optionally pre-confirmed
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdminCreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreatedBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings [post]
func (h *BookingHandler) AdminCreateBooking(c *gin.Context) {
	var req reqdto.AdminCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	period, err := req.ToPeriod()
	if err != nil {
		respondDateRangeError(c, err)
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingParams{
		VehicleID: req.VehicleID,
		UserID:    req.UserID,
		Period:    period,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		respondCreateBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Get booking by ID; customers only see their own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var view *queries.BookingView
	if role, _ := middleware.GetUserRole(c); role == jwt.RoleOperator {
		view, err = h.bookingQueries.GetByIDSystem(c.Request.Context(), id)
	} else {
		view, err = h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	}
	if err != nil {
		if errors.Is(err, queries.ErrBookingViewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List user bookings
// @Description List all bookings of the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking, releasing its dates
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Operators may cancel any booking.
	actor := userID
	if role, _ := middleware.GetUserRole(c); role == jwt.RoleOperator {
		actor = uuid.Nil
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), id, actor); err != nil {
		respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Complete booking
// @Description Mark a confirmed booking as completed after the vehicle is returned
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Complete(c.Request.Context(), id); err != nil {
		respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondDateRangeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrMalformedDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must use the YYYY-MM-DD format",
		})
	case errors.Is(err, booking.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_date must not be after end_date",
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
	}
}

func respondCreateBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vehicle not found",
		})
	case errors.Is(err, commands.ErrPastDateRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Booking cannot start in the past",
		})
	case errors.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Vehicle is not available for the requested dates",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Booking belongs to another user",
		})
	case errors.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking status does not allow this transition",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
