package models

import "time"

// BaseModel - целочисленный автоинкрементный идентификатор и время создания
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"-"`
}
