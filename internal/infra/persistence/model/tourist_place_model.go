package model

import (
	"time"
)

// TouristPlaceModel mirrors the 'tourist_places' table, the itinerary candidate pool.
type TouristPlaceModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Location      string `gorm:"type:varchar(200)"`
	Description   string `gorm:"type:text"`
	Interest      string `gorm:"type:varchar(20);not null;index"`
	BudgetTier    string `gorm:"type:varchar(20);not null;index"`
	EstimatedCost int
	ImageURL      string `gorm:"type:varchar(500)"`
	IsActive      bool   `gorm:"not null;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TouristPlaceModel) TableName() string {
	return "tourist_places"
}
