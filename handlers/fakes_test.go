package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ascendai/backend/auth"
	"github.com/ascendai/backend/config"
	"github.com/ascendai/backend/models"
	"github.com/ascendai/backend/storage"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeAccounts is an in-memory AccountStore
type fakeAccounts struct {
	users   map[string]*models.User
	resumes []models.Resume
	nextID  int
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{users: make(map[string]*models.User)}
}

func (f *fakeAccounts) addUser(name, email string) *models.User {
	f.nextID++
	user := &models.User{
		ID:    fmt.Sprintf("user-%d", f.nextID),
		Name:  name,
		Email: strings.ToLower(email),
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeAccounts) CreateUser(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == strings.ToLower(user.Email) {
			return storage.ErrEmailTaken
		}
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeAccounts) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == strings.ToLower(email) {
			return user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeAccounts) GetUserByID(_ context.Context, userID string) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return user, nil
}

func (f *fakeAccounts) GetUserProfile(_ context.Context, userID string) (*models.Profile, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &models.Profile{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Resumes:         []models.Resume{},
		ShortlistedJobs: []models.ShortlistedJob{},
	}, nil
}

func (f *fakeAccounts) CreateResume(_ context.Context, userID, userEmail string) (*models.Resume, error) {
	resume := models.Resume{
		ID:        fmt.Sprintf("resume-%d", len(f.resumes)+1),
		UserID:    userID,
		UserEmail: userEmail,
		CreatedAt: time.Now(),
	}
	f.resumes = append(f.resumes, resume)
	return &resume, nil
}

// fakeJobs is an in-memory JobStore
type fakeJobs struct {
	jobs   map[string]*models.ShortlistedJob
	nextID int
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: make(map[string]*models.ShortlistedJob)}
}

func (f *fakeJobs) CreateShortlistedJob(_ context.Context, job *models.ShortlistedJob) error {
	for _, existing := range f.jobs {
		if existing.UserID == job.UserID &&
			existing.JobTitle == job.JobTitle &&
			existing.CompanyName == job.CompanyName {
			return storage.ErrAlreadyShortlisted
		}
	}
	f.nextID++
	job.ID = fmt.Sprintf("job-%d", f.nextID)
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobs) ListShortlistedJobs(_ context.Context, userID string) ([]models.ShortlistedJob, error) {
	result := []models.ShortlistedJob{}
	for _, job := range f.jobs {
		if job.UserID == userID {
			result = append(result, *job)
		}
	}
	return result, nil
}

func (f *fakeJobs) DeleteShortlistedJob(_ context.Context, jobID, _ string) error {
	if _, ok := f.jobs[jobID]; !ok {
		return storage.ErrNotFound
	}
	delete(f.jobs, jobID)
	return nil
}

// fakeSearcher returns canned listings and records the parsed resume it saw
type fakeSearcher struct {
	jobs       []models.JobResult
	lastParsed *models.ParsedResume
}

func (f *fakeSearcher) FetchJobs(_ context.Context, parsed *models.ParsedResume) []models.JobResult {
	f.lastParsed = parsed
	if f.jobs == nil {
		return []models.JobResult{}
	}
	return f.jobs
}

// fakeGateway returns canned analysis results, or err if set
type fakeGateway struct {
	parsed    *models.ParsedResume
	report    *models.ATSReport
	roadmap   *models.Roadmap
	questions *models.QuestionsResponse
	analysis  *models.ResponseAnalysis
	err       error

	lastQuestion string
	lastResponse string
}

func (f *fakeGateway) ParseResume(context.Context, string) (*models.ParsedResume, error) {
	return f.parsed, f.err
}

func (f *fakeGateway) AnalyzeATS(context.Context, string, int) (*models.ATSReport, error) {
	return f.report, f.err
}

func (f *fakeGateway) GenerateRoadmap(context.Context, string, string, string, string) (*models.Roadmap, error) {
	return f.roadmap, f.err
}

func (f *fakeGateway) QuestionsFromResume(context.Context, string) (*models.QuestionsResponse, error) {
	return f.questions, f.err
}

func (f *fakeGateway) QuestionsFromRole(context.Context, string, string) (*models.QuestionsResponse, error) {
	return f.questions, f.err
}

func (f *fakeGateway) GradeResponse(_ context.Context, question, response string) (*models.ResponseAnalysis, error) {
	f.lastQuestion = question
	f.lastResponse = response
	return f.analysis, f.err
}

// fakeExtractor skips real PDF parsing and returns fixed text
type fakeExtractor struct {
	text  string
	pages int
	err   error
}

func (f *fakeExtractor) ExtractText([]byte, string) (string, int, error) {
	return f.text, f.pages, f.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		UploadDir:      t.TempDir(),
		MaxUploadMB:    10,
		JWTSecret:      "handler-test-secret",
		JWTExpiryHours: 1,
	}
}

func testJWT(cfg *config.Config) *auth.JWTService {
	return auth.NewJWTService(cfg)
}
