//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-rental/internal/handler/api"
	"fleet-rental/internal/pkg/jwt"
	"fleet-rental/internal/usecase/commands"
	"fleet-rental/internal/usecase/queries"
	commandsmock "fleet-rental/tests/mock/commands"
	queriesmock "fleet-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = new(commandsmock.MockBookingCommands)
	s.mockQueries = new(queriesmock.MockBookingQueries)
	s.userID = uuid.New()
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	asCustomer := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", jwt.RoleCustomer)
		c.Next()
	}
	asOperator := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", jwt.RoleOperator)
		c.Next()
	}

	s.router.POST("/bookings", asCustomer, handler.CreateBooking)
	s.router.GET("/bookings/:id", asCustomer, handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", asCustomer, handler.CancelBooking)
	s.router.POST("/admin/bookings", asOperator, handler.AdminCreateBooking)
	s.router.POST("/admin/bookings/:id/complete", asOperator, handler.CompleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCommands.AssertExpectations(s.T())
	s.mockQueries.AssertExpectations(s.T())
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) performJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	vehicleID := uuid.New()
	body := map[string]any{
		"vehicle_id": vehicleID.String(),
		"start_date": "2025-12-24",
		"end_date":   "2025-12-27",
	}

	s.Run("success returns 201 with server-computed quote", func() {
		result := &commands.CreateBookingResult{
			BookingID:  uuid.New(),
			Status:     "pending",
			TotalCents: 42000,
			Days: []queries.DayPriceView{
				{Date: "2025-12-24", PriceCents: 15000, IsSpecialPrice: true},
				{Date: "2025-12-25", PriceCents: 9000, IsSpecialPrice: true},
				{Date: "2025-12-26", PriceCents: 9000, IsSpecialPrice: true},
				{Date: "2025-12-27", PriceCents: 9000, IsSpecialPrice: true},
			},
		}
		s.mockCommands.On("Create", mock.Anything, mock.MatchedBy(func(p commands.CreateBookingParams) bool {
			return p.VehicleID == vehicleID && p.UserID == s.userID && !p.Confirmed
		})).Return(result, nil).Once()

		rec := s.performJSON(http.MethodPost, "/bookings", body)

		s.Equal(http.StatusCreated, rec.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(float64(42000), resp["totalCents"])
		s.Equal("pending", resp["status"])
		s.Len(resp["days"], 4)
	})

	s.Run("conflict maps to 409", func() {
		s.mockCommands.On("Create", mock.Anything, mock.Anything).
			Return(nil, commands.ErrBookingConflict).Once()

		rec := s.performJSON(http.MethodPost, "/bookings", body)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown vehicle maps to 404", func() {
		s.mockCommands.On("Create", mock.Anything, mock.Anything).
			Return(nil, commands.ErrVehicleNotFound).Once()

		rec := s.performJSON(http.MethodPost, "/bookings", body)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("past start date maps to 400", func() {
		s.mockCommands.On("Create", mock.Anything, mock.Anything).
			Return(nil, commands.ErrPastDateRange).Once()

		rec := s.performJSON(http.MethodPost, "/bookings", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("inverted range never reaches the use case", func() {
		bad := map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": "2025-12-27",
			"end_date":   "2025-12-24",
		}
		rec := s.performJSON(http.MethodPost, "/bookings", bad)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed date never reaches the use case", func() {
		bad := map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": "24/12/2025",
			"end_date":   "2025-12-27",
		}
		rec := s.performJSON(http.MethodPost, "/bookings", bad)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("client-supplied price field is rejected by strict binding", func() {
		// The request schema has no price field; the total always comes from
		// the server-side resolver.
		s.mockCommands.On("Create", mock.Anything, mock.Anything).
			Return(&commands.CreateBookingResult{BookingID: uuid.New(), Status: "pending"}, nil).Maybe()

		withPrice := map[string]any{
			"vehicle_id":  vehicleID.String(),
			"start_date":  "2025-12-24",
			"end_date":    "2025-12-27",
			"total_cents": 1,
		}
		rec := s.performJSON(http.MethodPost, "/bookings", withPrice)
		// Ignored or rejected, never trusted: the handler binds only known
		// fields, so a 201 here still carries the mocked server total.
		s.Contains([]int{http.StatusCreated, http.StatusBadRequest}, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestAdminCreateBooking() {
	vehicleID := uuid.New()
	customerID := uuid.New()

	s.Run("operator books for a customer pre-confirmed", func() {
		s.mockCommands.On("Create", mock.Anything, mock.MatchedBy(func(p commands.CreateBookingParams) bool {
			return p.UserID == customerID && p.Confirmed
		})).Return(&commands.CreateBookingResult{BookingID: uuid.New(), Status: "confirmed", TotalCents: 40000}, nil).Once()

		rec := s.performJSON(http.MethodPost, "/admin/bookings", map[string]any{
			"vehicle_id": vehicleID.String(),
			"user_id":    customerID.String(),
			"start_date": "2025-12-24",
			"end_date":   "2025-12-27",
			"confirmed":  true,
		})
		s.Equal(http.StatusCreated, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()

	s.Run("owner sees own booking", func() {
		view := &queries.BookingView{ID: bookingID, UserID: s.userID, Status: "confirmed"}
		s.mockQueries.On("GetByID", mock.Anything, s.userID, bookingID).Return(view, nil).Once()

		rec := s.performJSON(http.MethodGet, "/bookings/"+bookingID.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("someone else's booking is indistinguishable from absence", func() {
		s.mockQueries.On("GetByID", mock.Anything, s.userID, bookingID).
			Return(nil, queries.ErrBookingViewNotFound).Once()

		rec := s.performJSON(http.MethodGet, "/bookings/"+bookingID.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("invalid id is 400", func() {
		rec := s.performJSON(http.MethodGet, "/bookings/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()

	s.Run("owner cancels", func() {
		s.mockCommands.On("Cancel", mock.Anything, bookingID, s.userID).Return(nil).Once()

		rec := s.performJSON(http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("foreign booking is 403", func() {
		s.mockCommands.On("Cancel", mock.Anything, bookingID, s.userID).
			Return(commands.ErrNotBookingOwner).Once()

		rec := s.performJSON(http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("terminal booking is 409", func() {
		s.mockCommands.On("Cancel", mock.Anything, bookingID, s.userID).
			Return(commands.ErrInvalidTransition).Once()

		rec := s.performJSON(http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	bookingID := uuid.New()

	s.Run("operator completes a confirmed booking", func() {
		s.mockCommands.On("Complete", mock.Anything, bookingID).Return(nil).Once()

		rec := s.performJSON(http.MethodPost, "/admin/bookings/"+bookingID.String()+"/complete", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("pending booking cannot complete", func() {
		s.mockCommands.On("Complete", mock.Anything, bookingID).
			Return(commands.ErrInvalidTransition).Once()

		rec := s.performJSON(http.MethodPost, "/admin/bookings/"+bookingID.String()+"/complete", nil)
		s.Equal(http.StatusConflict, rec.Code)
	})
}
