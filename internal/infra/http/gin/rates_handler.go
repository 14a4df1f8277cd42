package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"ratefeed/internal/app/dto"
	"ratefeed/internal/app/events"
	ratesapp "ratefeed/internal/app/handlers/rates"
	"ratefeed/internal/app/queries"
	domainrates "ratefeed/internal/domain/rates"
	"ratefeed/internal/domain/shared/daterange"
)

type RatesHandler struct {
	Queries  queries.Bus
	Notifier *events.Notifier
}

type losRequest struct {
	Records []string `json:"records"`
}

func (h RatesHandler) ComputeLOS(c *gin.Context) {
	propertyID := c.Param("id")
	var req losRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query := ratesapp.ComputeLOSRatesQuery{PropertyID: propertyID, Records: req.Records}
	blocks, err := queries.Ask[ratesapp.ComputeLOSRatesQuery, []dto.RateBlock](c.Request.Context(), h.Queries, query)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	h.Notifier.RatesComputed(c.Request.Context(), propertyID, "los", len(blocks))
	c.JSON(http.StatusOK, blocks)
}

func (h RatesHandler) ComputeNightly(c *gin.Context) {
	propertyID := c.Param("id")
	var req dto.NightlyPricing
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query := ratesapp.ComputeNightlyRatesQuery{PropertyID: propertyID, Pricing: req}
	blocks, err := queries.Ask[ratesapp.ComputeNightlyRatesQuery, []dto.RateBlock](c.Request.Context(), h.Queries, query)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	h.Notifier.RatesComputed(c.Request.Context(), propertyID, "nightly", len(blocks))
	c.JSON(http.StatusOK, blocks)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainrates.ErrMalformedRecord),
		errors.Is(err, domainrates.ErrNoRateAvailable),
		errors.Is(err, domainrates.ErrOverlappingOverrides),
		errors.Is(err, domainrates.ErrOverrideWithoutPrice),
		errors.Is(err, daterange.ErrInvalidRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var _ RatesHTTP = RatesHandler{}
