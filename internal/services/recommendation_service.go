package services

import (
	"context"

	"placement_backend/internal/preferences"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
)

const defaultTheme = "light"

// RecommendationService - заглушки поверх документного хранилища.
// Рекомендации фиксированные, реального подбора нет.
type RecommendationService interface {
	GetRecommendations(userID uint) *dto.RecommendationsResponse
	UpdatePreferences(ctx context.Context, userID uint, req *dto.UpdatePreferenceRequest) (*dto.PreferenceAck, error)
}

type recommendationService struct {
	store preferences.Store
}

func NewRecommendationService(store preferences.Store) RecommendationService {
	return &recommendationService{store: store}
}

func (s *recommendationService) GetRecommendations(userID uint) *dto.RecommendationsResponse {
	return &dto.RecommendationsResponse{
		UserID: userID,
		Recommendations: []dto.Recommendation{
			{Role: "Simulated Data Analyst", MatchScore: 0.85},
			{Role: "Simulated Software Engineer", MatchScore: 0.79},
		},
	}
}

func (s *recommendationService) UpdatePreferences(ctx context.Context, userID uint, req *dto.UpdatePreferenceRequest) (*dto.PreferenceAck, error) {
	if userID != req.UserID {
		return nil, apperrors.ErrUserIDMismatch
	}
	if req.Theme == "" {
		req.Theme = defaultTheme
	}

	if err := s.store.Save(ctx, preferences.Preference{UserID: req.UserID, Theme: req.Theme}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "preferences", "Failed to update preferences", 500)
	}

	return &dto.PreferenceAck{
		Message: "User preferences updated (MongoDB simulated)",
		Data:    *req,
	}, nil
}
