package handlers

import (
	"context"
	"ecoalerta/internal/calendar"
	"ecoalerta/internal/core"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ProfileLoader provides the saved configuration
type ProfileLoader interface {
	Load(ctx context.Context) *core.UserConfig
}

// CollectionsHandler resolves upcoming collections and lists the calendar
type CollectionsHandler struct {
	profiles ProfileLoader
	calendar core.Calendar
	clock    core.Clock
	lang     core.Language
	location *time.Location
	logger   *slog.Logger
}

// NewCollectionsHandler creates a new collections handler
func NewCollectionsHandler(profiles ProfileLoader, cal core.Calendar, clock core.Clock, lang core.Language, location *time.Location, logger *slog.Logger) *CollectionsHandler {
	if clock == nil {
		clock = core.RealClock{}
	}
	if location == nil {
		location = time.Local
	}
	return &CollectionsHandler{
		profiles: profiles,
		calendar: cal,
		clock:    clock,
		lang:     lang,
		location: location,
		logger:   logger,
	}
}

// GetNext returns the next collection for the saved configuration.
// The optional "at" query parameter (RFC 3339) replaces the current time.
// GET /v1/collections/next
func (h *CollectionsHandler) GetNext(c *gin.Context) {
	now := h.clock.Now()
	if at := c.Query("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid 'at' parameter, expected RFC 3339",
				"code":  "INVALID_TIME",
			})
			return
		}
		now = parsed
	}
	now = now.In(h.location)

	cfg := h.profiles.Load(c.Request.Context())
	occ, ok := core.NextCollection(now, cfg, h.calendar)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":           true,
		"label":           occ.Label,
		"timestamp":       occ.At.Format(time.RFC3339),
		"hours_remaining": occ.HoursRemaining,
		"duration_text":   core.FormatDuration(occ.HoursRemaining),
		"date_text":       core.FormatCollectionDate(occ.At, h.lang),
		"is_eve":          core.IsEve(now, occ),
	})
}

// ListNeighborhoods returns the calendar sorted by neighborhood
// GET /v1/neighborhoods
func (h *CollectionsHandler) ListNeighborhoods(c *gin.Context) {
	c.JSON(http.StatusOK, calendar.Neighborhoods(h.calendar))
}
