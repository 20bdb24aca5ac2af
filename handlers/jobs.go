package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ascendai/backend/config"
	"github.com/ascendai/backend/models"
	"github.com/ascendai/backend/storage"
	"github.com/ascendai/backend/utils"
)

// JobHandler handles resume upload, job matching and shortlist requests
type JobHandler struct {
	accounts  AccountStore
	jobs      JobStore
	searcher  JobSearcher
	gateway   LLMGateway
	extractor TextExtractor
	cfg       *config.Config
}

// NewJobHandler creates a new job handler
func NewJobHandler(
	accounts AccountStore,
	jobs JobStore,
	searcher JobSearcher,
	gateway LLMGateway,
	extractor TextExtractor,
	cfg *config.Config,
) *JobHandler {
	return &JobHandler{
		accounts:  accounts,
		jobs:      jobs,
		searcher:  searcher,
		gateway:   gateway,
		extractor: extractor,
		cfg:       cfg,
	}
}

// UploadResume parses an uploaded resume and returns matched job listings
// @Summary Upload a resume
// @Description Parse a resume with AI, record it for the user and return matching job listings
// @Tags Jobs
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF, PNG or JPEG)"
// @Param userId formData string true "Owning user ID"
// @Success 200 {object} models.UploadResumeResponse "Parsed resume with job matches"
// @Failure 400 {object} models.ErrorResponse "Missing file, missing userId or unreadable document"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Parsing failed"
// @Router /jobs/uploadresume [post]
func (h *JobHandler) UploadResume(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "userId is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	user, err := h.accounts.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "User not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[JobHandler] Failed to look up user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to look up user",
			Code:  http.StatusInternalServerError,
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

	text, _, err := extractUpload(header, h.cfg.UploadDir, utils.PDFOrImages, h.cfg.MaxUploadBytes(), h.extractor)
	if err != nil {
		status := uploadErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[JobHandler] Failed to extract resume text: %v", err)
		}
		c.JSON(status, models.ErrorResponse{
			Error:   "Failed to read resume",
			Code:    status,
			Details: err.Error(),
		})
		return
	}

	parsed, err := h.gateway.ParseResume(c.Request.Context(), text)
	if err != nil {
		log.Printf("[JobHandler] Failed to parse resume: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to parse resume",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	resume, err := h.accounts.CreateResume(c.Request.Context(), user.ID, user.Email)
	if err != nil {
		log.Printf("[JobHandler] Failed to record resume: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to record resume",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	// Search failures degrade to an empty list inside FetchJobs
	jobs := h.searcher.FetchJobs(c.Request.Context(), parsed)

	c.JSON(http.StatusOK, models.UploadResumeResponse{
		ResumeID:     resume.ID,
		ParsedResume: *parsed,
		Jobs:         jobs,
	})
}

// ShortlistJob saves a job listing to the user's shortlist
// @Summary Shortlist a job
// @Description Save a job listing to the user's shortlist
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body models.ShortlistRequest true "Job to shortlist"
// @Success 201 {object} models.ShortlistedJob "Job shortlisted"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 409 {object} models.ErrorResponse "Job already shortlisted"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs/shortlist [post]
func (h *JobHandler) ShortlistJob(c *gin.Context) {
	var req models.ShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if _, err := h.accounts.GetUserByID(c.Request.Context(), req.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "User not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[JobHandler] Failed to look up user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to look up user",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	job := &models.ShortlistedJob{
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		CompanyImage:   req.CompanyImage,
		ApplicationURL: req.ApplicationURL,
		UserID:         req.UserID,
	}
	if job.CompanyImage == "" {
		job.CompanyImage = models.FallbackCompanyImage
	}
	if job.ApplicationURL == "" {
		job.ApplicationURL = models.FallbackApplyLink
	}

	if err := h.jobs.CreateShortlistedJob(c.Request.Context(), job); err != nil {
		if errors.Is(err, storage.ErrAlreadyShortlisted) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: "Job is already shortlisted",
				Code:  http.StatusConflict,
			})
			return
		}
		log.Printf("[JobHandler] Failed to shortlist job: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to shortlist job",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// ListShortlisted returns a user's shortlisted jobs, newest first
// @Summary List shortlisted jobs
// @Description List the user's shortlisted jobs, newest first
// @Tags Jobs
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.ShortlistedJob "Shortlisted jobs"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs/shortlisted/{userId} [get]
func (h *JobHandler) ListShortlisted(c *gin.Context) {
	userID := c.Param("userId")

	jobs, err := h.jobs.ListShortlistedJobs(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[JobHandler] Failed to list shortlisted jobs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list shortlisted jobs",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// RemoveShortlisted deletes a shortlisted job and its user reference
// @Summary Remove a shortlisted job
// @Description Delete a shortlisted job and detach it from the user
// @Tags Jobs
// @Accept json
// @Produce json
// @Param jobId path string true "Shortlisted job ID"
// @Param request body models.RemoveShortlistRequest true "Owning user"
// @Success 200 {object} models.MessageResponse "Job removed"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs/shortlisted/{jobId} [delete]
func (h *JobHandler) RemoveShortlisted(c *gin.Context) {
	jobID := c.Param("jobId")

	var req models.RemoveShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if err := h.jobs.DeleteShortlistedJob(c.Request.Context(), jobID, req.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Shortlisted job not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[JobHandler] Failed to remove shortlisted job: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to remove shortlisted job",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Job removed from shortlist"})
}
