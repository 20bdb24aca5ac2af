package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ascendai/backend/models"
	"github.com/ascendai/backend/utils"
)

// Version is the reported API version
const Version = "1.0.0"

// LLMGateway is the model-backed analysis surface used by the handlers
type LLMGateway interface {
	ParseResume(ctx context.Context, resumeText string) (*models.ParsedResume, error)
	AnalyzeATS(ctx context.Context, resumeText string, pageCount int) (*models.ATSReport, error)
	GenerateRoadmap(ctx context.Context, resumeText, timeframe, targetIndustry, additionalGoals string) (*models.Roadmap, error)
	QuestionsFromResume(ctx context.Context, resumeText string) (*models.QuestionsResponse, error)
	QuestionsFromRole(ctx context.Context, jobRole, experience string) (*models.QuestionsResponse, error)
	GradeResponse(ctx context.Context, question, response string) (*models.ResponseAnalysis, error)
}

// AccountStore covers user accounts and resume records
type AccountStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserProfile(ctx context.Context, userID string) (*models.Profile, error)
	CreateResume(ctx context.Context, userID, userEmail string) (*models.Resume, error)
}

// JobStore covers shortlisted job persistence
type JobStore interface {
	CreateShortlistedJob(ctx context.Context, job *models.ShortlistedJob) error
	ListShortlistedJobs(ctx context.Context, userID string) ([]models.ShortlistedJob, error)
	DeleteShortlistedJob(ctx context.Context, jobID, userID string) error
}

// JobSearcher finds job listings for a parsed resume
type JobSearcher interface {
	FetchJobs(ctx context.Context, parsed *models.ParsedResume) []models.JobResult
}

// TextExtractor pulls plain text and a page count out of an uploaded document
type TextExtractor interface {
	ExtractText(content []byte, mimeType string) (text string, pages int, err error)
}

// extractUpload saves the uploaded file, reads its text and page count, and
// removes the file again. Uploads are never retained past the request.
func extractUpload(header *multipart.FileHeader, uploadDir string, allowed []string, maxBytes int64, extractor TextExtractor) (string, int, error) {
	path, mimeType, cleanup, err := utils.SaveUpload(header, uploadDir, allowed, maxBytes)
	if err != nil {
		return "", 0, err
	}
	defer cleanup()

	content, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}

	return extractor.ExtractText(content, mimeType)
}

// uploadErrorStatus maps upload and extraction failures to an HTTP status.
// Anything the caller could fix is a 400.
func uploadErrorStatus(err error) int {
	switch {
	case errors.Is(err, utils.ErrMissingFile),
		errors.Is(err, utils.ErrFileTooLarge),
		errors.Is(err, utils.ErrDisallowedType),
		errors.Is(err, utils.ErrUnsupportedFormat),
		errors.Is(err, utils.ErrUnreadablePDF):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HealthCheck returns service status
// @Summary Health check
// @Description Check if the service is running
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
