package dto

type Recommendation struct {
	Role       string  `json:"role"`
	MatchScore float64 `json:"match_score"`
}

type RecommendationsResponse struct {
	UserID          uint             `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
}

// UpdatePreferenceRequest - тема по умолчанию "light"
type UpdatePreferenceRequest struct {
	UserID uint   `json:"user_id" validate:"required,gt=0"`
	Theme  string `json:"theme" validate:"max=32"`
}

type PreferenceAck struct {
	Message string                  `json:"message"`
	Data    UpdatePreferenceRequest `json:"data"`
}
