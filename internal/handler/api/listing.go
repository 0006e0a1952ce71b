package api

import (
	"errors"
	"net/http"

	"fleet-rental/internal/domain/booking"
	reqdto "fleet-rental/internal/handler/dto/request"
	resdto "fleet-rental/internal/handler/dto/response"
	"fleet-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingQueries queries.ListingQueries
}

func NewListingHandler(listingQueries queries.ListingQueries) *ListingHandler {
	return &ListingHandler{
		listingQueries: listingQueries,
	}
}

// @Summary Search available vehicles
// @Description List vehicles available for the whole period with their daily price breakdown
// @Tags listings
// @Produce json
// @Param start_date query string true "Rental start date (YYYY-MM-DD)"
// @Param end_date query string true "Rental end date (YYYY-MM-DD, inclusive)"
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Router /listings [get]
func (h *ListingHandler) SearchListings(c *gin.Context) {
	var req reqdto.SearchListingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_date and end_date are required",
		})
		return
	}

	period, err := req.ToPeriod()
	if err != nil {
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
		return
	}

	listings, err := h.listingQueries.Search(c.Request.Context(), period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingViews(listings))
}
