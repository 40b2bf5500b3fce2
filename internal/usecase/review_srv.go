package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/dto/response"
	"movie-review-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	GetReviews(ctx context.Context) ([]response.ReviewResponse, error)
	GetReviewByID(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
	CreateReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err))
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	return s.toResponses(ctx, reviews), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		s.log.Warn("Invalid review ID format", zap.String("review_id", reviewID), zap.Error(err))
		return nil, fmt.Errorf("invalid review id: %w", err)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get review by ID", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("get review by id: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review not found")
	}

	reviewResp := s.toResponse(ctx, review)
	return &reviewResp, nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	return s.toResponses(ctx, reviews), nil
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. The target movie must exist
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	// 3. The author is the verified token identity, never request data
	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Content: req.Content,
		Rating:  *req.Rating,
		MovieID: &id,
		UserID:  userID,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", movieID),
		zap.String("user_id", userID.String()),
	)

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to get review author", zap.Error(err), zap.String("user_id", userID.String()))
	}

	reviewResp := response.ReviewToResponse(review, user, movie)
	return &reviewResp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review not found")
	}

	// Authorship is deliberately not checked: any authenticated user
	// may edit any review. See DESIGN.md.
	review.Content = req.Content
	review.Rating = *req.Rating

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated", zap.String("review_id", reviewID))

	reviewResp := s.toResponse(ctx, review)
	return &reviewResp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review id: %w", err)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review not found")
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.String("review_id", reviewID))
	return nil
}

// ==================== HELPER METHODS ====================

// toResponse attaches the user and movie snapshots to a review.
// Lookups that fail only lose the snapshot, not the review itself.
func (s *reviewService) toResponse(ctx context.Context, review *entity.Review) response.ReviewResponse {
	user, err := s.repo.User.FindByID(ctx, review.UserID)
	if err != nil {
		s.log.Warn("Failed to get review author",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
	}

	var movie *entity.Movie
	if review.MovieID != nil {
		movie, err = s.repo.Movie.FindByID(ctx, *review.MovieID)
		if err != nil {
			s.log.Warn("Failed to get review movie",
				zap.Error(err),
				zap.String("review_id", review.ID.String()),
			)
		}
	}

	return response.ReviewToResponse(review, user, movie)
}

func (s *reviewService) toResponses(ctx context.Context, reviews []*entity.Review) []response.ReviewResponse {
	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = s.toResponse(ctx, review)
	}
	return reviewResponses
}
