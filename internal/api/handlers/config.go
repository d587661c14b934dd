package handlers

import (
	"ecoalerta/internal/core"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfigHandler handles the resident's saved configuration
type ConfigHandler struct {
	profiles core.ProfileStore
	logger   *slog.Logger
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(profiles core.ProfileStore, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{
		profiles: profiles,
		logger:   logger,
	}
}

// UpdateConfigRequest is the body of PUT /v1/config
type UpdateConfigRequest struct {
	Neighborhood string   `json:"neighborhood" binding:"required"`
	Slots        []string `json:"slots"`
}

// GetConfig returns the saved configuration
// GET /v1/config
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg := h.profiles.Load(c.Request.Context())
	if cfg == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No configuration saved",
			"code":  "CONFIG_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, formatConfig(cfg))
}

// UpdateConfig replaces the saved configuration
// PUT /v1/config
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
			"code":  "INVALID_REQUEST",
		})
		return
	}

	cfg := core.UserConfig{
		Neighborhood: req.Neighborhood,
		Slots:        req.Slots,
	}
	if cfg.Slots == nil {
		cfg.Slots = []string{}
	}

	if err := h.profiles.Save(c.Request.Context(), cfg); err != nil {
		h.logger.Error("Failed to save config",
			"component", "api",
			"neighborhood", cfg.Neighborhood,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save configuration",
			"code":  "SAVE_FAILED",
		})
		return
	}

	c.JSON(http.StatusOK, formatConfig(&cfg))
}

func formatConfig(cfg *core.UserConfig) gin.H {
	slots := cfg.Slots
	if slots == nil {
		slots = []string{}
	}
	return gin.H{
		"neighborhood": cfg.Neighborhood,
		"slots":        slots,
	}
}
