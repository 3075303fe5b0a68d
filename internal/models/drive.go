package models

import "time"

// Drive - набор на позицию от компании.
// Company нужен только для внешнего ключа при миграции и никогда не подгружается:
// связи читаются явными JOIN по идентификаторам.
type Drive struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CompanyID  uint      `gorm:"not null;index"`
	Role       string    `gorm:"type:varchar(255);not null"`
	PackageLPA float64   `gorm:"column:package_lpa"`
	Deadline   time.Time `gorm:"not null"`

	Company *Company `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
