package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Vedant005/SkillBridge-Backend/internal/repositories"
	"github.com/Vedant005/SkillBridge-Backend/internal/services/dto"
	"github.com/Vedant005/SkillBridge-Backend/internal/storage"
	"github.com/Vedant005/SkillBridge-Backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records saves and serves URLs without touching a filesystem.
type fakeStorage struct {
	saved   map[string][]byte
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}}
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.saved[path] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.saved[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.saved, path)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.saved[path]
	return ok, nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "https://files.test/" + path, nil
}

func (f *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return f.GetURL(ctx, path)
}

func (f *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	return int64(len(f.saved[path])), nil
}

var _ storage.Storage = (*fakeStorage)(nil)

func newFreelancerFixture(t *testing.T) (FreelancerService, *fakeStorage) {
	t.Helper()

	db := newTestDB(t)
	repo := repositories.NewFreelancerRepository(db)
	fs := newFakeStorage()
	return NewFreelancerService(repo, fs), fs
}

func registerRequest() *dto.RegisterFreelancerRequest {
	return &dto.RegisterFreelancerRequest{
		FullName:        "Ada Example",
		Email:           "ada@x.com",
		Password:        "secret1",
		Location:        "Berlin",
		ExperienceLevel: "Expert",
		HourlyRate:      55,
		Occupation:      "Backend Developer",
		Skills:          []string{"go", "postgres"},
		Description:     "Ships reliable services",
		Qualification:   "BSc",
	}
}

func TestFreelancerService_RegisterWithResume(t *testing.T) {
	svc, fs := newFreelancerFixture(t)

	resume := &dto.ResumeUpload{
		File:     strings.NewReader("resume body"),
		Filename: "cv.pdf",
		Size:     11,
	}

	freelancer, err := svc.Register(context.Background(), registerRequest(), resume)
	require.NoError(t, err)

	assert.NotEmpty(t, freelancer.ID)
	assert.Equal(t, []string{"go", "postgres"}, freelancer.Skills)
	assert.True(t, strings.HasPrefix(freelancer.Resume, "https://files.test/resumes/"), "resume URL: %s", freelancer.Resume)
	assert.Len(t, fs.saved, 1)
}

func TestFreelancerService_RegisterWithoutResume(t *testing.T) {
	svc, _ := newFreelancerFixture(t)

	freelancer, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)
	assert.Empty(t, freelancer.Resume)
}

func TestFreelancerService_RegisterResumeFailureDegrades(t *testing.T) {
	svc, fs := newFreelancerFixture(t)
	fs.saveErr = errors.New("bucket unavailable")

	resume := &dto.ResumeUpload{
		File:     strings.NewReader("resume body"),
		Filename: "cv.pdf",
	}

	freelancer, err := svc.Register(context.Background(), registerRequest(), resume)
	require.NoError(t, err, "a failed upload must not fail registration")
	assert.Empty(t, freelancer.Resume)
}

func TestFreelancerService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newFreelancerFixture(t)

	_, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest(), nil)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestFreelancerService_UpdateMergesFields(t *testing.T) {
	svc, _ := newFreelancerFixture(t)

	freelancer, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	rate := 80.0
	location := "Remote"
	updated, err := svc.Update(freelancer.ID, &dto.UpdateFreelancerRequest{
		HourlyRate: &rate,
		Location:   &location,
		Skills:     []string{"go", "kubernetes"},
	})
	require.NoError(t, err)

	assert.Equal(t, 80.0, updated.HourlyRate)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, []string{"go", "kubernetes"}, updated.Skills)
	// untouched fields survive
	assert.Equal(t, "Ada Example", updated.FullName)
}

func TestFreelancerService_UploadResume(t *testing.T) {
	svc, _ := newFreelancerFixture(t)

	freelancer, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	updated, err := svc.UploadResume(context.Background(), freelancer.ID, &dto.ResumeUpload{
		File:     strings.NewReader("new resume"),
		Filename: "cv.pdf",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, updated.Resume)

	_, err = svc.UploadResume(context.Background(), freelancer.ID, nil)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestFreelancerService_GetNotFound(t *testing.T) {
	svc, _ := newFreelancerFixture(t)

	_, err := svc.Get("missing")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestFreelancerService_Delete(t *testing.T) {
	svc, _ := newFreelancerFixture(t)
	created, err := svc.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Get(created.ID)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)

	err = svc.Delete("missing")
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}
