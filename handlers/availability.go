package handlers

import (
	"net/http"
	"strconv"
	"time"

	"clinagenda/models"
	"clinagenda/services/availability"
	"clinagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the slot-finder endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(service availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: service, Logger: logger}
}

// FindSlots handles GET /api/disponibilidad.
//
// Query params: fecha (YYYY-MM-DD, required), duracionMinutos (required),
// profesionalId, salaId, horaInicio/horaFin (HH:mm), excluirAlmuerzo,
// profesionalPreferido, maxResultados.
func (h *AvailabilityHandler) FindSlots(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "fecha must be a valid YYYY-MM-DD date")
		return
	}
	duration, err := strconv.Atoi(c.Query("duracionMinutos"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "duracionMinutos must be an integer")
		return
	}

	query := models.AvailabilityQuery{
		Date:            day,
		DurationMinutes: duration,
	}
	if id := c.Query("profesionalId"); id != "" {
		query.ProfessionalID = &id
	}
	if id := c.Query("salaId"); id != "" {
		query.RoomID = &id
	}

	prefs, err := parsePreferences(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	query.Preferences = prefs

	maxResults := availability.DefaultMaxResults
	if raw := c.Query("maxResultados"); raw != "" {
		if maxResults, err = strconv.Atoi(raw); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "maxResultados must be an integer")
			return
		}
	}

	slots, err := h.Service.FindBestAvailableSlots(c.Request.Context(), query, maxResults)
	if err != nil {
		h.Logger.Error("availability search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "availability search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CheckSlot handles GET /api/disponibilidad/check. It verifies a single
// interval for a professional, optionally excluding one booking id (used when
// rescheduling).
func (h *AvailabilityHandler) CheckSlot(c *gin.Context) {
	professionalID := c.Query("profesionalId")
	if professionalID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "profesionalId is required")
		return
	}
	day, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "fecha must be a valid YYYY-MM-DD date")
		return
	}
	start, end, err := parseClockRange(c.Query("horaInicio"), c.Query("horaFin"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var excludeID *string
	if id := c.Query("excluirCitaId"); id != "" {
		excludeID = &id
	}

	free, err := h.Service.IsSlotAvailable(c.Request.Context(),
		professionalID, atMinute(day, start), atMinute(day, end), excludeID)
	if err != nil {
		h.Logger.Error("slot check failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "slot check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"disponible": free})
}

// parsePreferences builds a Preferences block from the flattened query
// params, or returns nil when none were supplied.
func parsePreferences(c *gin.Context) (*models.Preferences, error) {
	var prefs models.Preferences
	supplied := false

	if raw := c.Query("horaInicio"); raw != "" {
		minute, err := availability.ParseClock(raw)
		if err != nil {
			return nil, err
		}
		prefs.WindowStart = &minute
		supplied = true
	}
	if raw := c.Query("horaFin"); raw != "" {
		minute, err := availability.ParseClock(raw)
		if err != nil {
			return nil, err
		}
		prefs.WindowEnd = &minute
		supplied = true
	}
	if c.Query("excluirAlmuerzo") == "true" {
		prefs.ExcludeLunch = true
		supplied = true
	}
	if id := c.Query("profesionalPreferido"); id != "" {
		prefs.PreferredProfessional = &id
		supplied = true
	}

	if !supplied {
		return nil, nil
	}
	return &prefs, nil
}

func parseClockRange(startRaw, endRaw string) (int, int, error) {
	start, err := availability.ParseClock(startRaw)
	if err != nil {
		return 0, 0, err
	}
	end, err := availability.ParseClock(endRaw)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func atMinute(day time.Time, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minute/60, minute%60, 0, 0, day.Location())
}
