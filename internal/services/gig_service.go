package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Vedant005/SkillBridge-Backend/internal/clients"
	"github.com/Vedant005/SkillBridge-Backend/internal/logger"
	"github.com/Vedant005/SkillBridge-Backend/internal/models"
	"github.com/Vedant005/SkillBridge-Backend/internal/repositories"
	"github.com/Vedant005/SkillBridge-Backend/internal/services/dto"
	"github.com/Vedant005/SkillBridge-Backend/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	SentimentPositive    = "Positive"
	SentimentNeutral     = "Neutral"
	SentimentNegative    = "Negative"
	SentimentRecommended = "Recommended"
)

// chatbotRefusal is returned verbatim for off-topic questions.
const chatbotRefusal = "I specialize in freelancing topics only. Please ask me about freelancing, gigs, or hiring professionals."

var freelancingKeywords = []string{
	"freelance", "freelancer", "freelancing", "gig", "project", "hire",
	"client", "developer", "designer", "writer", "remote work", "contract",
	"job", "upwork", "fiverr", "toptal",
}

// Recommender and TextGenerator are the contracts the gig flow needs from
// the external services; failure modes are handled here, never inside the
// clients.
type Recommender interface {
	Recommend(ctx context.Context, gigID string) ([]models.Gig, error)
	PredictPrice(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

var _ Recommender = (*clients.RecommenderClient)(nil)
var _ TextGenerator = (*clients.InferenceClient)(nil)

type GigService interface {
	List(ctx context.Context, page, pageSize int, recommendForGigID string) (*dto.GigListResult, error)
	Get(gigID string) (*dto.GigView, error)
	ListByClient(clientID string) ([]models.Gig, error)
	Create(req *dto.CreateGigRequest) (*models.Gig, error)
	Update(req *dto.UpdateGigRequest) (*models.Gig, error)
	Delete(gigID string) error
	PredictPrice(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	Chat(ctx context.Context, query string) (string, error)
}

type GigServiceImpl struct {
	gigRepo     repositories.GigRepository
	clientRepo  repositories.ClientRepository
	recommender Recommender
	generator   TextGenerator
}

func NewGigService(
	gigRepo repositories.GigRepository,
	clientRepo repositories.ClientRepository,
	recommender Recommender,
	generator TextGenerator,
) GigService {
	return &GigServiceImpl{
		gigRepo:     gigRepo,
		clientRepo:  clientRepo,
		recommender: recommender,
		generator:   generator,
	}
}

// Sentiment classifies a feedback score into a label. The thresholds are
// user-visible and must not drift: >= 4.0 Positive, [2.5, 4.0) Neutral,
// (0, 2.5) Negative, exactly 0 Neutral.
func Sentiment(feedbackScore float64) string {
	switch {
	case feedbackScore >= 4.0:
		return SentimentPositive
	case feedbackScore >= 2.5:
		return SentimentNeutral
	case feedbackScore > 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func gigView(gig models.Gig) dto.GigView {
	return dto.GigView{
		Gig:           gig,
		Sentiment:     Sentiment(gig.ClientTotalFeedback),
		TotalReviews:  gig.ClientTotalReviews,
		FeedbackScore: gig.ClientTotalFeedback,
	}
}

// List returns one page of the gig collection, each item decorated with a
// sentiment label. When recommendForGigID is set, recommendations are
// fetched and prepended; a recommender failure degrades to none.
func (s *GigServiceImpl) List(ctx context.Context, page, pageSize int, recommendForGigID string) (*dto.GigListResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	gigs, err := s.gigRepo.FindPage(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.gigRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.GigView, 0, len(gigs))

	if recommendForGigID != "" {
		recommended, err := s.recommender.Recommend(ctx, recommendForGigID)
		if err != nil {
			logger.Warn("recommendation fetch failed", "gig_id", recommendForGigID, "error", err)
		}
		for _, gig := range recommended {
			view := gigView(gig)
			view.Sentiment = SentimentRecommended
			views = append(views, view)
		}
	}

	for _, gig := range gigs {
		views = append(views, gigView(gig))
	}

	return &dto.GigListResult{
		Gigs: views,
		Pagination: dto.Pagination{
			CurrentPage: page,
			TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
			TotalGigs:   total,
		},
	}, nil
}

func (s *GigServiceImpl) Get(gigID string) (*dto.GigView, error) {
	gig, err := s.gigRepo.FindByGigID(gigID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	view := gigView(*gig)
	return &view, nil
}

func (s *GigServiceImpl) ListByClient(clientID string) ([]models.Gig, error) {
	if _, err := s.clientRepo.FindByID(clientID); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	gigs, err := s.gigRepo.FindByClientID(clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gigs, nil
}

func (s *GigServiceImpl) Create(req *dto.CreateGigRequest) (*models.Gig, error) {
	if _, err := s.clientRepo.FindByID(req.ClientID); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	gigID := req.GigID
	if gigID == "" {
		gigID = uuid.NewString()
	}

	now := time.Now()
	gig := &models.Gig{
		GigID:                    gigID,
		ClientID:                 req.ClientID,
		Title:                    req.Title,
		Description:              req.Description,
		Status:                   req.Status,
		Type:                     req.Type,
		AmountAmount:             req.AmountAmount,
		HourlyRate:               req.HourlyRate,
		Duration:                 req.Duration,
		Engagement:               req.Engagement,
		FreelancersToHire:        req.FreelancersToHire,
		ProposalsTier:            req.ProposalsTier,
		Tier:                     req.Tier,
		ClientTotalReviews:       req.ClientTotalReviews,
		ClientTotalSpent:         req.ClientTotalSpent,
		ClientTotalFeedback:      req.ClientTotalFeedback,
		ClientLocationCountry:    req.ClientLocationCountry,
		OccupationsCategoryLabel: req.OccupationsCategoryLabel,
		OccupationsOserviceLabel: req.OccupationsOserviceLabel,
		CreatedOn:                now,
		PublishedOn:              now,
	}
	if req.CreatedOn != nil {
		gig.CreatedOn = *req.CreatedOn
	}
	if req.PublishedOn != nil {
		gig.PublishedOn = *req.PublishedOn
	}

	if err := s.gigRepo.Create(gig); err != nil {
		if apperrors.Is(err, repositories.ErrGigAlreadyExists) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("Gig %s already exists", req.GigID))
		}
		return nil, apperrors.InternalError(err)
	}

	return gig, nil
}

func (s *GigServiceImpl) Update(req *dto.UpdateGigRequest) (*models.Gig, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.AmountAmount != nil {
		fields["amount_amount"] = *req.AmountAmount
	}
	if req.HourlyRate != nil {
		fields["hourly_rate"] = *req.HourlyRate
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Engagement != nil {
		fields["engagement"] = *req.Engagement
	}
	if req.FreelancersToHire != nil {
		fields["freelancers_to_hire"] = *req.FreelancersToHire
	}
	if req.ProposalsTier != nil {
		fields["proposals_tier"] = *req.ProposalsTier
	}
	if req.Tier != nil {
		fields["tier"] = *req.Tier
	}
	if req.ClientTotalReviews != nil {
		fields["client_total_reviews"] = *req.ClientTotalReviews
	}
	if req.ClientTotalSpent != nil {
		fields["client_total_spent"] = *req.ClientTotalSpent
	}
	if req.ClientTotalFeedback != nil {
		fields["client_total_feedback"] = *req.ClientTotalFeedback
	}

	if len(fields) > 0 {
		if err := s.gigRepo.UpdateFields(req.GigID, fields); err != nil {
			if apperrors.Is(err, repositories.ErrGigNotFound) {
				return nil, apperrors.ErrGigNotFound
			}
			return nil, apperrors.InternalError(err)
		}
	}

	gig, err := s.gigRepo.FindByGigID(req.GigID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *GigServiceImpl) Delete(gigID string) error {
	if err := s.gigRepo.DeleteByGigID(gigID); err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return apperrors.ErrGigNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *GigServiceImpl) PredictPrice(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	if len(payload) == 0 {
		return nil, apperrors.NewBadRequestError("Content needed!")
	}

	prediction, err := s.recommender.PredictPrice(ctx, payload)
	if err != nil {
		return nil, apperrors.ExternalServiceError(err, "Failed to predict price")
	}
	return prediction, nil
}

// Chat answers freelancing questions through the text-generation service.
// Off-topic queries get a canned refusal without ever calling the service.
func (s *GigServiceImpl) Chat(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", apperrors.NewBadRequestError("Query parameter is required")
	}

	lowered := strings.ToLower(query)
	onTopic := false
	for _, keyword := range freelancingKeywords {
		if strings.Contains(lowered, keyword) {
			onTopic = true
			break
		}
	}
	if !onTopic {
		return chatbotRefusal, nil
	}

	prompt := fmt.Sprintf(`[INST] <<SYS>>
You are a helpful freelancing assistant. Answer concisely.
ONLY answer questions related to freelancing, gigs, hiring professionals, learning skills, or remote work.
If the question is unrelated, respond: "I specialize in freelancing topics only."
If the question is a hi hello then respond appropriate answers
<</SYS>>

User Question: %s

Provide a clear, actionable response. [/INST]`, query)

	answer, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", apperrors.ExternalServiceError(err, "Failed to process request")
	}
	return answer, nil
}
