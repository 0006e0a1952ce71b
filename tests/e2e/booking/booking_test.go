//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/pricing"
	"fleet-rental/internal/handler/dto/response"
	"fleet-rental/internal/pkg/jwt"
	"fleet-rental/tests/common/authtest"
	"fleet-rental/tests/common/dbtest"
	"fleet-rental/tests/common/helper"
	"fleet-rental/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	listingsURL = "/api/listings"
	bookingsURL = "/api/bookings"
	webhookURL  = "/api/webhooks/payment"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// futureDay returns a date string offset days after a fixed anchor two
// months out, keeping every scenario safely in the future.
func (s *BookingSuite) futureDay(offset int) string {
	anchor := time.Now().UTC().AddDate(0, 2, 0)
	return anchor.AddDate(0, 0, offset).Format(booking.DateLayout)
}

func (s *BookingSuite) searchURL(start, end string) string {
	return fmt.Sprintf("%s?start_date=%s&end_date=%s", listingsURL, start, end)
}

func (s *BookingSuite) TestListingsAndPricing() {
	s.Run("overlapping rules price per day and booked vehicles drop out", func() {
		t := s.T()

		sedanID := dbtest.CreateTestVehicle(t, s.DB, "Sedan", 10000)
		suvID := dbtest.CreateTestVehicle(t, s.DB, "SUV", 20000)

		d0, d1, d2, d3 := s.futureDay(0), s.futureDay(1), s.futureDay(2), s.futureDay(3)

		// Surge created first, promo later; the promo wins on shared days.
		t1 := time.Now().UTC().Add(-48 * time.Hour)
		dbtest.CreateTestRule(t, s.DB, "Holiday surge", d0, d2, string(pricing.PriceTypeMultiplier), 1.5, t1)
		dbtest.CreateTestRule(t, s.DB, "Promo override", d1, d3, string(pricing.PriceTypeFixed), 9000, t1.Add(time.Hour))

		rec := helper.PerformRequest(t, s.Router, http.MethodGet, s.searchURL(d0, d3), nil, "")
		s.Equal(http.StatusOK, rec.Code)

		listings := helper.DecodeJSON[[]response.ListingResponse](t, rec)
		s.Require().Len(listings, 2)

		var sedan *response.ListingResponse
		for i := range listings {
			if listings[i].VehicleID == sedanID {
				sedan = &listings[i]
			}
		}
		s.Require().NotNil(sedan)
		s.Require().Len(sedan.DailyPrices, 4)
		s.Equal(int64(15000), sedan.DailyPrices[0].PriceCents)
		s.Equal(int64(9000), sedan.DailyPrices[1].PriceCents)
		s.Equal(int64(9000), sedan.DailyPrices[2].PriceCents)
		s.Equal(int64(9000), sedan.DailyPrices[3].PriceCents)
		s.Equal(int64(42000), sedan.TotalCents)
		s.True(sedan.HasSpecialPricing)

		// Book the SUV, then the same search no longer offers it.
		token := authtest.IssueToken(t, s.Config, uuid.New(), jwt.RoleCustomer)
		createRec := helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"vehicle_id": suvID.String(),
			"start_date": d1,
			"end_date":   d2,
		}, token)
		s.Require().Equal(http.StatusCreated, createRec.Code)

		rec = helper.PerformRequest(t, s.Router, http.MethodGet, s.searchURL(d0, d3), nil, "")
		s.Equal(http.StatusOK, rec.Code)
		listings = helper.DecodeJSON[[]response.ListingResponse](t, rec)
		s.Require().Len(listings, 1)
		s.Equal(sedanID, listings[0].VehicleID)
	})
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("checkout, payment webhook, completion", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Sedan", 10000)
		customerID := uuid.New()
		customerToken := authtest.IssueToken(t, s.Config, customerID, jwt.RoleCustomer)
		operatorToken := authtest.IssueToken(t, s.Config, uuid.New(), jwt.RoleOperator)

		d0, d3 := s.futureDay(0), s.futureDay(3)

		rec := helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": d0,
			"end_date":   d3,
		}, customerToken)
		s.Require().Equal(http.StatusCreated, rec.Code)

		created := helper.DecodeJSON[response.CreatedBookingResponse](t, rec)
		s.Equal("pending", created.Status)
		s.Equal(int64(40000), created.TotalCents)
		s.Len(created.Days, 4)

		bookingURL := bookingsURL + "/" + created.BookingID.String()

		// Payment succeeds, the hold becomes a confirmed booking.
		rec = helper.PerformRequest(t, s.Router, http.MethodPost, webhookURL, map[string]any{
			"booking_id": created.BookingID.String(),
			"status":     "succeeded",
		}, "")
		s.Require().Equal(http.StatusNoContent, rec.Code)

		rec = helper.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, customerToken)
		s.Require().Equal(http.StatusOK, rec.Code)
		view := helper.DecodeJSON[response.BookingResponse](t, rec)
		s.Equal("confirmed", view.Status)
		s.Equal(int64(40000), view.TotalPriceCents)

		// A replayed webhook no longer applies.
		rec = helper.PerformRequest(t, s.Router, http.MethodPost, webhookURL, map[string]any{
			"booking_id": created.BookingID.String(),
			"status":     "succeeded",
		}, "")
		s.Equal(http.StatusConflict, rec.Code)

		// Another customer cannot see or cancel it.
		strangerToken := authtest.IssueToken(t, s.Config, uuid.New(), jwt.RoleCustomer)
		rec = helper.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, strangerToken)
		s.Equal(http.StatusNotFound, rec.Code)
		rec = helper.PerformRequest(t, s.Router, http.MethodPost, bookingURL+"/cancel", nil, strangerToken)
		s.Equal(http.StatusForbidden, rec.Code)

		// Operator completes it after the rental.
		rec = helper.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/bookings/"+created.BookingID.String()+"/complete", nil, operatorToken)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		rec = helper.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, customerToken)
		s.Require().Equal(http.StatusOK, rec.Code)
		view = helper.DecodeJSON[response.BookingResponse](t, rec)
		s.Equal("completed", view.Status)
	})

	s.Run("pending booking blocks overlapping dates", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Sedan", 10000)
		first := authtest.IssueToken(t, s.Config, uuid.New(), jwt.RoleCustomer)
		second := authtest.IssueToken(t, s.Config, uuid.New(), jwt.RoleCustomer)

		rec := helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": s.futureDay(0),
			"end_date":   s.futureDay(2),
		}, first)
		s.Require().Equal(http.StatusCreated, rec.Code)

		// Shares only the boundary day, still conflicts.
		rec = helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": s.futureDay(2),
			"end_date":   s.futureDay(4),
		}, second)
		s.Equal(http.StatusConflict, rec.Code)

		// Adjacent dates do not.
		rec = helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": s.futureDay(3),
			"end_date":   s.futureDay(4),
		}, second)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("cancelled booking releases its dates", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Sedan", 10000)
		ownerID := uuid.New()
		owner := authtest.IssueToken(t, s.Config, ownerID, jwt.RoleCustomer)

		rec := helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": s.futureDay(0),
			"end_date":   s.futureDay(2),
		}, owner)
		s.Require().Equal(http.StatusCreated, rec.Code)
		created := helper.DecodeJSON[response.CreatedBookingResponse](t, rec)

		rec = helper.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.BookingID.String()+"/cancel", nil, owner)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		rec = helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": s.futureDay(0),
			"end_date":   s.futureDay(2),
		}, owner)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("past start date is rejected", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Sedan", 10000)
		token := authtest.IssueToken(t, s.Config, uuid.New(), jwt.RoleCustomer)

		yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(booking.DateLayout)
		rec := helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": yesterday,
			"end_date":   s.futureDay(0),
		}, token)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingSuite) TestConcurrentBookingRace() {
	s.Run("two simultaneous checkouts produce one booking and one conflict", func() {
		t := s.T()

		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Sedan", 10000)

		body := map[string]any{
			"vehicle_id": vehicleID.String(),
			"start_date": s.futureDay(0),
			"end_date":   s.futureDay(3),
		}

		const attempts = 2
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				token := authtest.IssueToken(t, s.Config, uuid.New(), jwt.RoleCustomer)
				rec := helper.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, token)
				codes[i] = rec.Code
			}(i)
		}
		wg.Wait()

		s.ElementsMatch([]int{http.StatusCreated, http.StatusConflict}, codes)
	})
}
