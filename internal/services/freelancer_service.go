package services

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/Vedant005/SkillBridge-Backend/internal/auth"
	"github.com/Vedant005/SkillBridge-Backend/internal/logger"
	"github.com/Vedant005/SkillBridge-Backend/internal/models"
	"github.com/Vedant005/SkillBridge-Backend/internal/repositories"
	"github.com/Vedant005/SkillBridge-Backend/internal/services/dto"
	"github.com/Vedant005/SkillBridge-Backend/internal/storage"
	"github.com/Vedant005/SkillBridge-Backend/pkg/apperrors"
	"github.com/google/uuid"
)

type FreelancerService interface {
	Register(ctx context.Context, req *dto.RegisterFreelancerRequest, resume *dto.ResumeUpload) (*models.Freelancer, error)
	Get(id string) (*models.Freelancer, error)
	Update(id string, req *dto.UpdateFreelancerRequest) (*models.Freelancer, error)
	UploadResume(ctx context.Context, id string, resume *dto.ResumeUpload) (*models.Freelancer, error)
	Delete(id string) error
}

type FreelancerServiceImpl struct {
	freelancerRepo repositories.FreelancerRepository
	fileStorage    storage.Storage
}

func NewFreelancerService(freelancerRepo repositories.FreelancerRepository, fileStorage storage.Storage) FreelancerService {
	return &FreelancerServiceImpl{freelancerRepo: freelancerRepo, fileStorage: fileStorage}
}

func (s *FreelancerServiceImpl) Register(ctx context.Context, req *dto.RegisterFreelancerRequest, resume *dto.ResumeUpload) (*models.Freelancer, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Resume upload is best effort: a failed or absent upload leaves the
	// field empty rather than failing registration.
	resumeURL := ""
	if resume != nil && resume.File != nil {
		resumeURL = s.storeResume(ctx, resume)
	}

	freelancer := &models.Freelancer{
		FullName:        req.FullName,
		Email:           req.Email,
		PasswordHash:    hash,
		Location:        req.Location,
		ExperienceLevel: req.ExperienceLevel,
		HourlyRate:      req.HourlyRate,
		Occupation:      req.Occupation,
		Skills:          req.Skills,
		Description:     req.Description,
		Qualification:   req.Qualification,
		Resume:          resumeURL,
	}

	if err := s.freelancerRepo.Create(freelancer); err != nil {
		if apperrors.Is(err, repositories.ErrFreelancerAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return freelancer, nil
}

func (s *FreelancerServiceImpl) Get(id string) (*models.Freelancer, error) {
	freelancer, err := s.freelancerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFreelancerNotFound) {
			return nil, apperrors.ErrFreelancerNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return freelancer, nil
}

// Update merges the supplied fields onto the stored record and persists it
// whole.
func (s *FreelancerServiceImpl) Update(id string, req *dto.UpdateFreelancerRequest) (*models.Freelancer, error) {
	freelancer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		freelancer.FullName = *req.FullName
	}
	if req.Location != nil {
		freelancer.Location = *req.Location
	}
	if req.ExperienceLevel != nil {
		freelancer.ExperienceLevel = *req.ExperienceLevel
	}
	if req.HourlyRate != nil {
		freelancer.HourlyRate = *req.HourlyRate
	}
	if req.Occupation != nil {
		freelancer.Occupation = *req.Occupation
	}
	if req.Skills != nil {
		freelancer.Skills = req.Skills
	}
	if req.Description != nil {
		freelancer.Description = *req.Description
	}
	if req.Qualification != nil {
		freelancer.Qualification = *req.Qualification
	}

	if err := s.freelancerRepo.Update(freelancer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return freelancer, nil
}

func (s *FreelancerServiceImpl) UploadResume(ctx context.Context, id string, resume *dto.ResumeUpload) (*models.Freelancer, error) {
	if resume == nil || resume.File == nil {
		return nil, apperrors.ErrResumeRequired
	}

	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	resumeURL := s.storeResume(ctx, resume)
	if resumeURL == "" {
		return nil, apperrors.ExternalServiceError(nil, "Resume upload failed")
	}

	if err := s.freelancerRepo.UpdateFields(id, map[string]interface{}{"resume": resumeURL}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.Get(id)
}

func (s *FreelancerServiceImpl) Delete(id string) error {
	if err := s.freelancerRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrFreelancerNotFound) {
			return apperrors.ErrFreelancerNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// storeResume pushes the file to object storage and returns its public URL,
// or "" when the upload fails.
func (s *FreelancerServiceImpl) storeResume(ctx context.Context, resume *dto.ResumeUpload) string {
	ext := filepath.Ext(resume.Filename)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path := fmt.Sprintf("resumes/%d_%s%s", time.Now().Unix(), uuid.NewString()[:8], ext)

	if err := s.fileStorage.Save(ctx, path, resume.File, contentType); err != nil {
		logger.Warn("resume upload failed", "error", err)
		return ""
	}

	url, err := s.fileStorage.GetURL(ctx, path)
	if err != nil {
		logger.Warn("resume url lookup failed", "error", err)
		return ""
	}
	return url
}
