package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TravelPlan is a persisted itinerary owned by one user.
type TravelPlan struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Destination string
	NumDays     int
	Budget      BudgetTier
	StartDate   time.Time
	EndDate     time.Time
	Interests   []InterestCategory
	Days        []*DayPlan
	TripBudget  *TripBudget
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DayPlan is one day of a plan. Day numbers start at 1 and are unique within a plan.
type DayPlan struct {
	ID        uuid.UUID
	PlanID    uuid.UUID
	DayNumber int
	Items     []*DayPlaceItem
}

// DayPlaceItem schedules a tourist place on a day. Order starts at 0.
type DayPlaceItem struct {
	ID        uuid.UUID
	DayPlanID uuid.UUID
	PlaceID   uint
	Place     *TouristPlace
	Order     int
	Notes     string
}

// TripBudget holds the traveller's own cost estimates for a plan.
type TripBudget struct {
	ID            uuid.UUID
	PlanID        uuid.UUID
	HotelCost     float64
	TransportCost float64
	FoodCost      float64
	UpdatedAt     time.Time
}

// Total is the sum of all cost figures.
func (b *TripBudget) Total() float64 {
	if b == nil {
		return 0
	}

	return b.HotelCost + b.TransportCost + b.FoodCost
}

// TotalItems counts scheduled places across all days.
func (p *TravelPlan) TotalItems() int {
	total := 0
	for _, day := range p.Days {
		total += len(day.Items)
	}

	return total
}

// JoinInterests encodes interests the way they are stored: comma separated.
func JoinInterests(interests []InterestCategory) string {
	parts := make([]string, 0, len(interests))
	for _, interest := range interests {
		parts = append(parts, string(interest))
	}

	return strings.Join(parts, ",")
}

// SplitInterests decodes the stored interest list, skipping blanks.
func SplitInterests(raw string) []InterestCategory {
	interests := make([]InterestCategory, 0)
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		interests = append(interests, InterestCategory(part))
	}

	return interests
}
