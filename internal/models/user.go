package models

// User - студент, администратор TPO или рекрутер.
// Email сравнивается точно (с учетом регистра).
type User struct {
	BaseModel
	FullName       string      `gorm:"type:varchar(255);index;not null"`
	Email          string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string      `gorm:"not null"`
	AccountType    AccountType `gorm:"type:varchar(20);not null;default:'student'"`
	IsActive       bool        `gorm:"default:true"`
}
