package handlers

import (
	"errors"
	"net/http"
	"time"

	"clinagenda/services/appointment"
	"clinagenda/services/availability"
	"clinagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the appointment lifecycle endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Logger  *zap.Logger
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(service appointment.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: service, Logger: logger}
}

type appointmentInput struct {
	ProfessionalID string  `json:"profesionalId" binding:"required"`
	PatientID      string  `json:"pacienteId"`
	RoomID         *string `json:"salaId"`
	Date           string  `json:"fecha" binding:"required"`
	StartTime      string  `json:"horaInicio" binding:"required"`
	EndTime        string  `json:"horaFin" binding:"required"`
	Reason         string  `json:"motivo"`
}

// Create handles POST /api/citas.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var input appointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	start, end, err := parseDayInterval(input.Date, input.StartTime, input.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Service.Create(c.Request.Context(), appointment.CreateRequest{
		ProfessionalID: input.ProfessionalID,
		PatientID:      input.PatientID,
		RoomID:         input.RoomID,
		Start:          start,
		End:            end,
		Reason:         input.Reason,
	})
	if err != nil {
		h.respondServiceError(c, err, "failed to create appointment")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

type rescheduleInput struct {
	Date      string  `json:"fecha" binding:"required"`
	StartTime string  `json:"horaInicio" binding:"required"`
	EndTime   string  `json:"horaFin" binding:"required"`
	RoomID    *string `json:"salaId"`
}

// Reschedule handles PUT /api/citas/:id/reprogramar.
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var input rescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	start, end, err := parseDayInterval(input.Date, input.StartTime, input.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Service.Reschedule(c.Request.Context(), c.Param("id"), start, end, input.RoomID)
	if err != nil {
		h.respondServiceError(c, err, "failed to reschedule appointment")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Confirm handles PUT /api/citas/:id/confirmar.
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	if err := h.Service.Confirm(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "failed to confirm appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

// Cancel handles DELETE /api/citas/:id.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "failed to cancel appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// DayAgenda handles GET /api/profesionales/:id/agenda.
func (h *AppointmentHandler) DayAgenda(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "fecha must be a valid YYYY-MM-DD date")
		return
	}
	bookings, err := h.Service.DayAgenda(c.Request.Context(), c.Param("id"), day)
	if err != nil {
		h.respondServiceError(c, err, "failed to fetch agenda")
		return
	}
	c.JSON(http.StatusOK, gin.H{"citas": bookings})
}

func (h *AppointmentHandler) respondServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, appointment.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "slot taken", err.Error())
	case errors.Is(err, appointment.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, appointment.ErrInvalidInterval), errors.Is(err, appointment.ErrInvalidState):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	default:
		h.Logger.Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}

func parseDayInterval(date, startRaw, endRaw string) (time.Time, time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	startMinute, err := availability.ParseClock(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMinute, err := availability.ParseClock(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return atMinute(day, startMinute), atMinute(day, endMinute), nil
}
