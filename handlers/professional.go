package handlers

import (
	"net/http"

	professionalRepo "clinagenda/database/repository/professional"
	"clinagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfessionalHandler exposes the staff roster endpoints.
type ProfessionalHandler struct {
	Repo   professionalRepo.ProfessionalRepository
	Logger *zap.Logger
}

// NewProfessionalHandler constructs a ProfessionalHandler.
func NewProfessionalHandler(repo professionalRepo.ProfessionalRepository, logger *zap.Logger) *ProfessionalHandler {
	return &ProfessionalHandler{Repo: repo, Logger: logger}
}

// ListActive handles GET /api/profesionales.
func (h *ProfessionalHandler) ListActive(c *gin.Context) {
	professionals, err := h.Repo.ListActive(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list professionals", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list professionals", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"profesionales": professionals})
}
