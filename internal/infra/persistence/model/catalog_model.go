package model

import (
	"time"
)

// PlaceModel mirrors the 'places' table. Coordinates are nullable.
type PlaceModel struct {
	ID          uint     `gorm:"primaryKey"`
	Name        string   `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string   `gorm:"type:text"`
	Location    string   `gorm:"type:varchar(200)"`
	Category    string   `gorm:"type:varchar(20);not null;index"`
	Latitude    *float64 `gorm:"type:double precision"`
	Longitude   *float64 `gorm:"type:double precision"`
	ImageURL    string   `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}

// HillStationModel mirrors the 'hill_stations' table. Coordinates are required.
type HillStationModel struct {
	ID               uint    `gorm:"primaryKey"`
	Name             string  `gorm:"type:varchar(200);not null;uniqueIndex"`
	City             string  `gorm:"type:varchar(100);index"`
	District         string  `gorm:"type:varchar(100)"`
	State            string  `gorm:"type:varchar(100);index"`
	Country          string  `gorm:"type:varchar(100);not null"`
	Description      string  `gorm:"type:text"`
	BestTimeToVisit  string  `gorm:"type:varchar(200)"`
	TemperatureRange string  `gorm:"type:varchar(100)"`
	Latitude         float64 `gorm:"type:double precision;not null"`
	Longitude        float64 `gorm:"type:double precision;not null"`
	ImageURL         string  `gorm:"type:varchar(500)"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (HillStationModel) TableName() string {
	return "hill_stations"
}
