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

// ATSHandler handles resume ATS compatibility scoring
type ATSHandler struct {
	gateway   LLMGateway
	extractor TextExtractor
	cfg       *config.Config
}

// NewATSHandler creates a new ATS score handler
func NewATSHandler(gateway LLMGateway, extractor TextExtractor, cfg *config.Config) *ATSHandler {
	return &ATSHandler{
		gateway:   gateway,
		extractor: extractor,
		cfg:       cfg,
	}
}

// Analyze scores an uploaded resume for ATS compatibility
// @Summary Analyze ATS compatibility
// @Description Score an uploaded PDF resume across six ATS criteria
// @Tags ATS
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF only)"
// @Success 200 {object} models.ATSReport "ATS compatibility report"
// @Failure 400 {object} models.ErrorResponse "Missing file, non-PDF upload or unreadable document"
// @Failure 500 {object} models.ErrorResponse "Analysis failed"
// @Router /ats-score/analyze [post]
func (h *ATSHandler) Analyze(c *gin.Context) {
	header, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Resume file is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	text, pages, err := extractUpload(header, h.cfg.UploadDir, utils.PDFOnly, h.cfg.MaxUploadBytes(), h.extractor)
	if err != nil {
		status := uploadErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[ATSHandler] Failed to extract resume text: %v", err)
		}
		c.JSON(status, models.ErrorResponse{
			Error:   "Failed to read resume",
			Code:    status,
			Details: err.Error(),
		})
		return
	}

	report, err := h.gateway.AnalyzeATS(c.Request.Context(), text, pages)
	if err != nil {
		if errors.Is(err, gemini.ErrBadModelReply) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "AI analysis returned an unexpected response",
				Code:  http.StatusInternalServerError,
			})
			return
		}
		log.Printf("[ATSHandler] Analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to analyze resume",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
