package models

type Company struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Industry string `gorm:"type:varchar(255)"`
	Location string `gorm:"type:varchar(255)"`
}
