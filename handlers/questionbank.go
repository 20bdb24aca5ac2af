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

// QuestionBankHandler handles interview question generation and answer grading
type QuestionBankHandler struct {
	gateway   LLMGateway
	extractor TextExtractor
	cfg       *config.Config
}

// NewQuestionBankHandler creates a new question bank handler
func NewQuestionBankHandler(gateway LLMGateway, extractor TextExtractor, cfg *config.Config) *QuestionBankHandler {
	return &QuestionBankHandler{
		gateway:   gateway,
		extractor: extractor,
		cfg:       cfg,
	}
}

// GenerateFromResume creates interview questions tailored to a resume
// @Summary Generate questions from a resume
// @Description Generate five interview questions tailored to an uploaded PDF resume
// @Tags QuestionBank
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF only)"
// @Success 200 {object} models.QuestionsResponse "Generated questions"
// @Failure 400 {object} models.ErrorResponse "Missing file, non-PDF upload or unreadable document"
// @Failure 500 {object} models.ErrorResponse "Generation failed"
// @Router /question-bank/generate-from-resume [post]
func (h *QuestionBankHandler) GenerateFromResume(c *gin.Context) {
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
			log.Printf("[QuestionBankHandler] Failed to extract resume text: %v", err)
		}
		c.JSON(status, models.ErrorResponse{
			Error:   "Failed to read resume",
			Code:    status,
			Details: err.Error(),
		})
		return
	}

	questions, err := h.gateway.QuestionsFromResume(c.Request.Context(), text)
	if err != nil {
		h.respondGenerationError(c, "[QuestionBankHandler] Question generation failed", err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// GenerateFromRole creates interview questions for a job role
// @Summary Generate questions from a role
// @Description Generate five interview questions for a job role and experience level
// @Tags QuestionBank
// @Accept json
// @Produce json
// @Param request body models.QuestionsFromRoleRequest true "Role and experience"
// @Success 200 {object} models.QuestionsResponse "Generated questions"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Generation failed"
// @Router /question-bank/generate-from-role [post]
func (h *QuestionBankHandler) GenerateFromRole(c *gin.Context) {
	var req models.QuestionsFromRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "jobRole and experience are required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	questions, err := h.gateway.QuestionsFromRole(c.Request.Context(), req.JobRole, req.Experience)
	if err != nil {
		h.respondGenerationError(c, "[QuestionBankHandler] Question generation failed", err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// AnalyzeResponse grades a candidate's answer to an interview question
// @Summary Grade an interview answer
// @Description Score a candidate answer for clarity, structure and depth
// @Tags QuestionBank
// @Accept json
// @Produce json
// @Param request body models.AnalyzeResponseRequest true "Question and answer"
// @Success 200 {object} models.ResponseAnalysis "Answer evaluation"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Evaluation failed"
// @Router /question-bank/analyze [post]
func (h *QuestionBankHandler) AnalyzeResponse(c *gin.Context) {
	var req models.AnalyzeResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "question and response are required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	analysis, err := h.gateway.GradeResponse(c.Request.Context(), req.Question, req.Response)
	if err != nil {
		h.respondGenerationError(c, "[QuestionBankHandler] Answer evaluation failed", err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *QuestionBankHandler) respondGenerationError(c *gin.Context, logPrefix string, err error) {
	if errors.Is(err, gemini.ErrBadModelReply) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "AI analysis returned an unexpected response",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	log.Printf("%s: %v", logPrefix, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "Failed to process request",
		Code:  http.StatusInternalServerError,
	})
}
