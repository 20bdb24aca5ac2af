package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascendai/backend/models"
	"github.com/ascendai/backend/utils"
)

type jobRouterDeps struct {
	accounts  *fakeAccounts
	jobs      *fakeJobs
	searcher  *fakeSearcher
	gateway   *fakeGateway
	extractor *fakeExtractor
}

func setupJobRouter(t *testing.T, deps jobRouterDeps) *gin.Engine {
	t.Helper()

	if deps.accounts == nil {
		deps.accounts = newFakeAccounts()
	}
	if deps.jobs == nil {
		deps.jobs = newFakeJobs()
	}
	if deps.searcher == nil {
		deps.searcher = &fakeSearcher{}
	}
	if deps.gateway == nil {
		deps.gateway = &fakeGateway{parsed: &models.ParsedResume{}}
	}
	if deps.extractor == nil {
		deps.extractor = &fakeExtractor{text: "resume text", pages: 1}
	}

	handler := NewJobHandler(deps.accounts, deps.jobs, deps.searcher, deps.gateway, deps.extractor, testConfig(t))

	router := gin.New()
	router.POST("/api/jobs/uploadresume", handler.UploadResume)
	router.POST("/api/jobs/shortlist", handler.ShortlistJob)
	router.GET("/api/jobs/shortlisted/:userId", handler.ListShortlisted)
	router.DELETE("/api/jobs/shortlisted/:jobId", handler.RemoveShortlisted)
	return router
}

// resumeUpload builds a multipart request with a resume file and extra fields
func resumeUpload(t *testing.T, path, contentType string, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="resume"; filename="resume.pdf"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test content"))
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadResume(t *testing.T) {
	accounts := newFakeAccounts()
	user := accounts.addUser("Ada Lovelace", "ada@example.com")

	parsed := &models.ParsedResume{
		Skills:     []string{"Python", "Go"},
		Experience: []string{"Backend Engineer at Acme"},
		Projects:   []string{"Billing service"},
		Summary:    "Backend engineer.",
	}
	searcher := &fakeSearcher{jobs: []models.JobResult{
		{JobTitle: "Backend Engineer", CompanyName: "Acme"},
	}}

	router := setupJobRouter(t, jobRouterDeps{
		accounts: accounts,
		searcher: searcher,
		gateway:  &fakeGateway{parsed: parsed},
	})

	req := resumeUpload(t, "/api/jobs/uploadresume", "application/pdf", map[string]string{"userId": user.ID})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.UploadResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ResumeID)
	assert.Equal(t, []string{"Python", "Go"}, resp.ParsedResume.Skills)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Acme", resp.Jobs[0].CompanyName)

	// the search ran against the parsed resume
	require.NotNil(t, searcher.lastParsed)
	assert.Equal(t, parsed.Skills, searcher.lastParsed.Skills)

	// the resume record is attached to the user
	require.Len(t, accounts.resumes, 1)
	assert.Equal(t, user.ID, accounts.resumes[0].UserID)
	assert.Equal(t, "ada@example.com", accounts.resumes[0].UserEmail)
}

func TestUploadResumeMissingUserID(t *testing.T) {
	router := setupJobRouter(t, jobRouterDeps{})

	req := resumeUpload(t, "/api/jobs/uploadresume", "application/pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadResumeUnknownUser(t *testing.T) {
	router := setupJobRouter(t, jobRouterDeps{})

	req := resumeUpload(t, "/api/jobs/uploadresume", "application/pdf", map[string]string{"userId": "missing"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadResumeUnreadableDocument(t *testing.T) {
	accounts := newFakeAccounts()
	user := accounts.addUser("Ada Lovelace", "ada@example.com")

	router := setupJobRouter(t, jobRouterDeps{
		accounts:  accounts,
		extractor: &fakeExtractor{err: utils.ErrUnreadablePDF},
	})

	req := resumeUpload(t, "/api/jobs/uploadresume", "application/pdf", map[string]string{"userId": user.ID})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, accounts.resumes, "no resume record on a failed upload")
}

func TestUploadResumeSearchDegradesToEmptyList(t *testing.T) {
	accounts := newFakeAccounts()
	user := accounts.addUser("Ada Lovelace", "ada@example.com")

	router := setupJobRouter(t, jobRouterDeps{
		accounts: accounts,
		searcher: &fakeSearcher{}, // no listings
		gateway:  &fakeGateway{parsed: &models.ParsedResume{Skills: []string{"Go"}}},
	})

	req := resumeUpload(t, "/api/jobs/uploadresume", "application/pdf", map[string]string{"userId": user.ID})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UploadResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Jobs)
	assert.Empty(t, resp.Jobs)
}

func TestShortlistJob(t *testing.T) {
	accounts := newFakeAccounts()
	user := accounts.addUser("Ada Lovelace", "ada@example.com")
	jobs := newFakeJobs()
	router := setupJobRouter(t, jobRouterDeps{accounts: accounts, jobs: jobs})

	request := models.ShortlistRequest{
		UserID:      user.ID,
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme",
	}

	w := postJSON(router, "/api/jobs/shortlist", request)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.ShortlistedJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.FallbackCompanyImage, created.CompanyImage)
	assert.Equal(t, models.FallbackApplyLink, created.ApplicationURL)

	t.Run("duplicate is rejected", func(t *testing.T) {
		w := postJSON(router, "/api/jobs/shortlist", request)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		other := request
		other.UserID = "missing"
		w := postJSON(router, "/api/jobs/shortlist", other)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListShortlisted(t *testing.T) {
	accounts := newFakeAccounts()
	user := accounts.addUser("Ada Lovelace", "ada@example.com")
	jobs := newFakeJobs()
	require.NoError(t, jobs.CreateShortlistedJob(nil, &models.ShortlistedJob{
		UserID: user.ID, JobTitle: "Backend Engineer", CompanyName: "Acme",
	}))

	router := setupJobRouter(t, jobRouterDeps{accounts: accounts, jobs: jobs})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/shortlisted/"+user.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.ShortlistedJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Acme", listed[0].CompanyName)
}

func TestRemoveShortlisted(t *testing.T) {
	accounts := newFakeAccounts()
	user := accounts.addUser("Ada Lovelace", "ada@example.com")
	jobs := newFakeJobs()
	saved := &models.ShortlistedJob{UserID: user.ID, JobTitle: "Backend Engineer", CompanyName: "Acme"}
	require.NoError(t, jobs.CreateShortlistedJob(nil, saved))

	router := setupJobRouter(t, jobRouterDeps{accounts: accounts, jobs: jobs})

	deleteJob := func(jobID string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(models.RemoveShortlistRequest{UserID: user.ID})
		req := httptest.NewRequest(http.MethodDelete, "/api/jobs/shortlisted/"+jobID, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := deleteJob(saved.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, jobs.jobs)

	t.Run("second delete is a 404", func(t *testing.T) {
		w := deleteJob(saved.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
