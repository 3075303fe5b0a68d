package preferences

import (
	"context"

	"placement_backend/internal/logger"
)

// SimulatedStore ничего не сохраняет, только пишет в лог.
// Используется, когда mongo.url не задан.
type SimulatedStore struct{}

func NewSimulatedStore() *SimulatedStore {
	return &SimulatedStore{}
}

func (s *SimulatedStore) Save(ctx context.Context, pref Preference) error {
	logger.CtxInfo(ctx, "MongoDB simulation: updated preferences", "user_id", pref.UserID, "theme", pref.Theme)
	return nil
}

func (s *SimulatedStore) Close(context.Context) error { return nil }
