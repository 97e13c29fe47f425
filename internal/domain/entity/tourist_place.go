package entity

import "time"

// InterestCategory is a traveller interest used to pick itinerary candidates.
type InterestCategory string

const (
	InterestTemples      InterestCategory = "temples"
	InterestAdventure    InterestCategory = "adventure"
	InterestHillStations InterestCategory = "hill_stations"
	InterestFood         InterestCategory = "food"
	InterestShopping     InterestCategory = "shopping"
	InterestBeaches      InterestCategory = "beaches"
	InterestHistorical   InterestCategory = "historical"
	InterestNature       InterestCategory = "nature"
)

var interestLabels = map[InterestCategory]string{
	InterestTemples:      "Temples",
	InterestAdventure:    "Adventure",
	InterestHillStations: "Hill Stations",
	InterestFood:         "Food & Cuisine",
	InterestShopping:     "Shopping",
	InterestBeaches:      "Beaches",
	InterestHistorical:   "Historical Places",
	InterestNature:       "Nature & Wildlife",
}

// Interests returns every interest in display order.
func Interests() []InterestCategory {
	return []InterestCategory{
		InterestTemples,
		InterestAdventure,
		InterestHillStations,
		InterestFood,
		InterestShopping,
		InterestBeaches,
		InterestHistorical,
		InterestNature,
	}
}

func (i InterestCategory) IsValid() bool {
	_, ok := interestLabels[i]

	return ok
}

// Label is the human readable name, or the raw value when unknown.
func (i InterestCategory) Label() string {
	if label, ok := interestLabels[i]; ok {
		return label
	}

	return string(i)
}

// BudgetTier is an ordered cost class: economy < moderate < luxury.
type BudgetTier string

const (
	BudgetEconomy  BudgetTier = "economy"
	BudgetModerate BudgetTier = "moderate"
	BudgetLuxury   BudgetTier = "luxury"
)

var budgetLabels = map[BudgetTier]string{
	BudgetEconomy:  "Economy (₹0 – ₹500/day)",
	BudgetModerate: "Moderate (₹500 – ₹2000/day)",
	BudgetLuxury:   "Luxury (₹2000+/day)",
}

func (b BudgetTier) IsValid() bool {
	_, ok := budgetLabels[b]

	return ok
}

func (b BudgetTier) Label() string {
	if label, ok := budgetLabels[b]; ok {
		return label
	}

	return string(b)
}

// EligibleTiers returns the tiers a traveller on budget b can afford: b and every cheaper tier.
// Unknown tiers are treated as luxury.
func (b BudgetTier) EligibleTiers() []BudgetTier {
	switch b {
	case BudgetEconomy:
		return []BudgetTier{BudgetEconomy}
	case BudgetModerate:
		return []BudgetTier{BudgetEconomy, BudgetModerate}
	default:
		return []BudgetTier{BudgetEconomy, BudgetModerate, BudgetLuxury}
	}
}

// TouristPlace is a candidate stop for generated itineraries.
type TouristPlace struct {
	ID            uint
	Name          string
	Location      string
	Description   string
	Interest      InterestCategory
	BudgetTier    BudgetTier
	EstimatedCost int
	ImageURL      string
	IsActive      bool
	CreatedAt     time.Time
}
