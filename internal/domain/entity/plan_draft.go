package entity

import (
	"time"

	"github.com/google/uuid"
)

// DayBucket is one day of a generated, not yet saved, itinerary.
type DayBucket struct {
	DayNumber int
	Places    []*TouristPlace
}

// PlanDraft is a generated itinerary waiting to be saved. It is addressed by Token
// and only visible to the user who generated it.
type PlanDraft struct {
	Token       uuid.UUID
	UserID      uuid.UUID
	Destination string
	NumDays     int
	Budget      BudgetTier
	StartDate   time.Time
	EndDate     time.Time
	Interests   []InterestCategory
	Days        []DayBucket
	Costs       *TripBudget
	CreatedAt   time.Time
}

// PlaceIDs returns the distinct tourist place IDs referenced by the draft.
func (d *PlanDraft) PlaceIDs() []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0)
	for _, day := range d.Days {
		for _, place := range day.Places {
			if _, ok := seen[place.ID]; ok {
				continue
			}
			seen[place.ID] = struct{}{}
			ids = append(ids, place.ID)
		}
	}

	return ids
}
