// Package preferences хранит пользовательские настройки интерфейса в документном хранилище.
package preferences

import (
	"context"
	"time"
)

const collectionName = "user_preferences"

// Preference - документ настроек пользователя
type Preference struct {
	UserID    uint      `bson:"user_id" json:"user_id"`
	Theme     string    `bson:"theme" json:"theme"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}

type Store interface {
	Save(ctx context.Context, pref Preference) error
	Close(ctx context.Context) error
}
