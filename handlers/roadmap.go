package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ascendai/backend/config"
	"github.com/ascendai/backend/gemini"
	"github.com/ascendai/backend/models"
	"github.com/ascendai/backend/utils"
)

// RoadmapHandler handles career roadmap generation
type RoadmapHandler struct {
	gateway   LLMGateway
	extractor TextExtractor
	cfg       *config.Config
}

// NewRoadmapHandler creates a new roadmap handler
func NewRoadmapHandler(gateway LLMGateway, extractor TextExtractor, cfg *config.Config) *RoadmapHandler {
	return &RoadmapHandler{
		gateway:   gateway,
		extractor: extractor,
		cfg:       cfg,
	}
}

// Generate builds a career roadmap from a resume and target parameters
// @Summary Generate a career roadmap
// @Description Build a step-by-step career roadmap from an uploaded PDF resume
// @Tags Roadmap
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF only)"
// @Param timeframe formData string true "Planning timeframe, e.g. 2 years"
// @Param targetIndustry formData string true "Target industry or role"
// @Param additionalGoals formData string false "Additional goals"
// @Success 200 {object} models.Roadmap "Career roadmap"
// @Failure 400 {object} models.ErrorResponse "Missing file or fields, or unreadable document"
// @Failure 500 {object} models.ErrorResponse "Generation failed"
// @Router /roadmap/generate [post]
func (h *RoadmapHandler) Generate(c *gin.Context) {
	var req models.RoadmapRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "timeframe and targetIndustry are required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	header, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Resume file is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	text, _, err := extractUpload(header, h.cfg.UploadDir, utils.PDFOnly, h.cfg.MaxUploadBytes(), h.extractor)
	if err != nil {
		status := uploadErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[RoadmapHandler] Failed to extract resume text: %v", err)
		}
		c.JSON(status, models.ErrorResponse{
			Error:   "Failed to read resume",
			Code:    status,
			Details: err.Error(),
		})
		return
	}

	roadmap, err := h.gateway.GenerateRoadmap(c.Request.Context(), text, req.Timeframe, req.TargetIndustry, req.AdditionalGoals)
	if err != nil {
		if errors.Is(err, gemini.ErrBadModelReply) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "AI analysis returned an unexpected response",
				Code:  http.StatusInternalServerError,
			})
			return
		}
		log.Printf("[RoadmapHandler] Generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate roadmap",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, roadmap)
}
