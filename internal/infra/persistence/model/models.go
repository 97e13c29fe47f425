// Package model holds the GORM persistence models. Domain entities never carry gorm tags.
package model

// All lists every model in dependency order, parents before children.
func All() []any {
	return []any{
		&PlaceModel{},
		&HillStationModel{},
		&TouristPlaceModel{},
		&TravelPlanModel{},
		&DayPlanModel{},
		&DayPlaceItemModel{},
		&TripBudgetModel{},
	}
}
