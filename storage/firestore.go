package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ascendai/backend/config"
	"github.com/ascendai/backend/models"
)

const (
	usersCollection       = "users"
	resumesCollection     = "resumes"
	shortlistedCollection = "shortlistedJobs"
)

// Typed errors so handlers can map storage failures to HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrAlreadyShortlisted = errors.New("job already shortlisted")
)

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// CreateUser creates a new user. Email uniqueness is checked case-insensitively
// before the insert; duplicates return ErrEmailTaken.
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.Resumes == nil {
		user.Resumes = []string{}
	}
	if user.ShortlistedJobs == nil {
		user.ShortlistedJobs = []string{}
	}

	iter := f.client.Collection(usersCollection).Where("email", "==", user.Email).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err == nil {
		return ErrEmailTaken
	} else if err != iterator.Done {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	docRef := f.client.Collection(usersCollection).NewDoc()
	if _, err := docRef.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = docRef.ID
	return nil
}

// GetUserByEmail retrieves a user by email (case-insensitive)
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("email", "==", strings.ToLower(email)).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByID retrieves a user by document ID
func (f *FirestoreClient) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	doc, err := f.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserProfile retrieves a user with the referenced resume and shortlist
// documents populated. References whose documents no longer exist are skipped.
func (f *FirestoreClient) GetUserProfile(ctx context.Context, userID string) (*models.Profile, error) {
	user, err := f.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Resumes:         []models.Resume{},
		ShortlistedJobs: []models.ShortlistedJob{},
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}

	for _, resumeID := range user.Resumes {
		doc, err := f.client.Collection(resumesCollection).Doc(resumeID).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				continue
			}
			return nil, fmt.Errorf("failed to get resume %s: %w", resumeID, err)
		}

		var resume models.Resume
		if err := doc.DataTo(&resume); err != nil {
			return nil, fmt.Errorf("failed to parse resume data: %w", err)
		}
		resume.ID = doc.Ref.ID
		profile.Resumes = append(profile.Resumes, resume)
	}

	for _, jobID := range user.ShortlistedJobs {
		doc, err := f.client.Collection(shortlistedCollection).Doc(jobID).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				continue
			}
			return nil, fmt.Errorf("failed to get shortlisted job %s: %w", jobID, err)
		}

		var job models.ShortlistedJob
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to parse shortlisted job data: %w", err)
		}
		job.ID = doc.Ref.ID
		profile.ShortlistedJobs = append(profile.ShortlistedJobs, job)
	}

	return profile, nil
}

// CreateResume records a resume upload for a user and appends the reference to
// the user's resumes array. ArrayUnion keeps the reference append idempotent.
func (f *FirestoreClient) CreateResume(ctx context.Context, userID, userEmail string) (*models.Resume, error) {
	resume := &models.Resume{
		UserID:    userID,
		UserEmail: strings.ToLower(userEmail),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	docRef := f.client.Collection(resumesCollection).NewDoc()
	if _, err := docRef.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	resume.ID = docRef.ID

	_, err := f.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "resumes", Value: firestore.ArrayUnion(resume.ID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user resumes: %w", err)
	}

	return resume, nil
}

// CreateShortlistedJob saves a job for a user. A duplicate
// (userId, jobTitle, companyName) triple returns ErrAlreadyShortlisted.
func (f *FirestoreClient) CreateShortlistedJob(ctx context.Context, job *models.ShortlistedJob) error {
	iter := f.client.Collection(shortlistedCollection).
		Where("userId", "==", job.UserID).
		Where("jobTitle", "==", job.JobTitle).
		Where("companyName", "==", job.CompanyName).
		Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err == nil {
		return ErrAlreadyShortlisted
	} else if err != iterator.Done {
		return fmt.Errorf("failed to check shortlist: %w", err)
	}

	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	docRef := f.client.Collection(shortlistedCollection).NewDoc()
	if _, err := docRef.Create(ctx, job); err != nil {
		return fmt.Errorf("failed to create shortlisted job: %w", err)
	}
	job.ID = docRef.ID

	_, err := f.client.Collection(usersCollection).Doc(job.UserID).Update(ctx, []firestore.Update{
		{Path: "shortlistedJobs", Value: firestore.ArrayUnion(job.ID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to update user shortlist: %w", err)
	}

	return nil
}

// ListShortlistedJobs returns a user's saved jobs, newest first
func (f *FirestoreClient) ListShortlistedJobs(ctx context.Context, userID string) ([]models.ShortlistedJob, error) {
	iter := f.client.Collection(shortlistedCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	jobs := []models.ShortlistedJob{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list shortlisted jobs: %w", err)
		}

		var job models.ShortlistedJob
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to parse shortlisted job data: %w", err)
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// GetShortlistedJob retrieves a shortlisted job by document ID
func (f *FirestoreClient) GetShortlistedJob(ctx context.Context, jobID string) (*models.ShortlistedJob, error) {
	doc, err := f.client.Collection(shortlistedCollection).Doc(jobID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shortlisted job: %w", err)
	}

	var job models.ShortlistedJob
	if err := doc.DataTo(&job); err != nil {
		return nil, fmt.Errorf("failed to parse shortlisted job data: %w", err)
	}

	job.ID = doc.Ref.ID
	return &job, nil
}

// DeleteShortlistedJob pulls the reference from the user's array and deletes
// the job document. Firestore deletes are no-ops on missing documents, so
// existence is checked first to surface ErrNotFound. The two writes are
// independent; ArrayRemove makes the pull idempotent if the delete is retried.
func (f *FirestoreClient) DeleteShortlistedJob(ctx context.Context, jobID, userID string) error {
	if _, err := f.GetShortlistedJob(ctx, jobID); err != nil {
		return err
	}

	_, err := f.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "shortlistedJobs", Value: firestore.ArrayRemove(jobID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to update user shortlist: %w", err)
	}

	if _, err := f.client.Collection(shortlistedCollection).Doc(jobID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete shortlisted job: %w", err)
	}

	return nil
}
