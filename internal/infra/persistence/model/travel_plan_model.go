package model

import (
	"time"

	"github.com/google/uuid"
)

// TravelPlanModel mirrors the 'travel_plans' table. Interests are stored comma separated.
type TravelPlanModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Destination string    `gorm:"type:varchar(200);not null"`
	NumDays     int       `gorm:"not null"`
	Budget      string    `gorm:"type:varchar(20);not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Interests   string    `gorm:"type:varchar(200)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Days       []*DayPlanModel  `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	TripBudget *TripBudgetModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TravelPlanModel) TableName() string {
	return "travel_plans"
}

// DayPlanModel mirrors the 'day_plans' table. (plan_id, day_number) is unique.
type DayPlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_day_plans_plan_day"`
	DayNumber int       `gorm:"not null;uniqueIndex:idx_day_plans_plan_day"`

	Items []*DayPlaceItemModel `gorm:"foreignKey:DayPlanID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DayPlanModel) TableName() string {
	return "day_plans"
}

// DayPlaceItemModel mirrors the 'day_place_items' table.
type DayPlaceItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DayPlanID uuid.UUID `gorm:"type:uuid;not null;index"`
	PlaceID   uint      `gorm:"not null;index"`
	SortOrder int       `gorm:"column:sort_order;not null"`
	Notes     string    `gorm:"type:text"`

	Place *TouristPlaceModel `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DayPlaceItemModel) TableName() string {
	return "day_place_items"
}

// TripBudgetModel mirrors the 'trip_budgets' table. A plan has at most one budget.
type TripBudgetModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	HotelCost     float64   `gorm:"type:decimal(10,2);not null"`
	TransportCost float64   `gorm:"type:decimal(10,2);not null"`
	FoodCost      float64   `gorm:"type:decimal(10,2);not null"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TripBudgetModel) TableName() string {
	return "trip_budgets"
}
