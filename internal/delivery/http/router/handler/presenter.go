package handler

import (
	"time"

	"tourist/internal/domain/entity"
	"tourist/internal/usecase"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SearchResultResponse struct {
	ID         uint     `json:"id"`
	Type       string   `json:"type"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Location   string   `json:"location"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	DistanceKm *float64 `json:"distance_km"`
}

type PlaceResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type HillStationResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	City             string    `json:"city"`
	District         string    `json:"district"`
	State            string    `json:"state"`
	Country          string    `json:"country"`
	Description      string    `json:"description"`
	BestTimeToVisit  string    `json:"best_time_to_visit"`
	TemperatureRange string    `json:"temperature_range"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	ImageURL         string    `json:"image_url"`
	CreatedAt        time.Time `json:"created_at"`
}

type LabeledValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type TouristPlaceResponse struct {
	ID            uint         `json:"id"`
	Name          string       `json:"name"`
	Location      string       `json:"location"`
	Description   string       `json:"description"`
	Interest      LabeledValue `json:"interest"`
	BudgetTier    LabeledValue `json:"budget_tier"`
	EstimatedCost int          `json:"estimated_cost"`
	ImageURL      string       `json:"image_url"`
}

type DayPreviewResponse struct {
	DayNumber int                     `json:"day_number"`
	Places    []*TouristPlaceResponse `json:"places"`
}

type TripBudgetResponse struct {
	HotelCost     float64 `json:"hotel_cost"`
	TransportCost float64 `json:"transport_cost"`
	FoodCost      float64 `json:"food_cost"`
	Total         float64 `json:"total"`
}

type GeneratedPlanResponse struct {
	Token        uuid.UUID             `json:"token"`
	Destination  string                `json:"destination"`
	NumDays      int                   `json:"num_days"`
	Budget       LabeledValue          `json:"budget"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	Interests    []LabeledValue        `json:"interests"`
	Days         []*DayPreviewResponse `json:"days"`
	TripBudget   *TripBudgetResponse   `json:"trip_budget"`
	UsedFallback bool                  `json:"used_fallback"`
	Warning      string                `json:"warning,omitempty"`
}

type DayItemResponse struct {
	ID    uuid.UUID             `json:"id"`
	Order int                   `json:"order"`
	Notes string                `json:"notes"`
	Place *TouristPlaceResponse `json:"place"`
}

type DayPlanResponse struct {
	DayNumber int                `json:"day_number"`
	Items     []*DayItemResponse `json:"items"`
}

type TravelPlanResponse struct {
	ID          uuid.UUID           `json:"id"`
	Destination string              `json:"destination"`
	NumDays     int                 `json:"num_days"`
	Budget      LabeledValue        `json:"budget"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Interests   []LabeledValue      `json:"interests"`
	Days        []*DayPlanResponse  `json:"days"`
	TripBudget  *TripBudgetResponse `json:"trip_budget"`
	TotalItems  int                 `json:"total_items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type PlanDetailResponse struct {
	*TravelPlanResponse

	Weather *entity.Weather `json:"weather"`
}

const fallbackWarning = "No places matched your interests and budget, showing all available places instead."

func toSearchResults(results []entity.SearchResult) []*SearchResultResponse {
	out := make([]*SearchResultResponse, 0, len(results))
	for _, result := range results {
		item := result.Item
		resp := &SearchResultResponse{
			ID:         item.ItemID(),
			Type:       string(item.ResultType()),
			Name:       item.DisplayName(),
			Category:   string(item.DisplayCategory()),
			Location:   item.LocationLabel(),
			DistanceKm: result.DistanceKm,
		}
		if point, ok := item.Coordinate(); ok {
			lat, lng := point.Lat(), point.Lon()
			resp.Latitude, resp.Longitude = &lat, &lng
		}
		out = append(out, resp)
	}

	return out
}

func toPlaceResponse(place *entity.Place) *PlaceResponse {
	return &PlaceResponse{
		ID:          place.ID,
		Name:        place.Name,
		Description: place.Description,
		Location:    place.Location,
		Category:    string(place.DisplayCategory()),
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		ImageURL:    place.ImageURL,
		CreatedAt:   place.CreatedAt,
	}
}

func toPlaceResponses(places []*entity.Place) []*PlaceResponse {
	out := make([]*PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, toPlaceResponse(place))
	}

	return out
}

func toHillStationResponse(station *entity.HillStation) *HillStationResponse {
	return &HillStationResponse{
		ID:               station.ID,
		Name:             station.Name,
		City:             station.City,
		District:         station.District,
		State:            station.State,
		Country:          station.Country,
		Description:      station.Description,
		BestTimeToVisit:  station.BestTimeToVisit,
		TemperatureRange: station.TemperatureRange,
		Latitude:         station.Latitude,
		Longitude:        station.Longitude,
		ImageURL:         station.ImageURL,
		CreatedAt:        station.CreatedAt,
	}
}

func toHillStationResponses(stations []*entity.HillStation) []*HillStationResponse {
	out := make([]*HillStationResponse, 0, len(stations))
	for _, station := range stations {
		out = append(out, toHillStationResponse(station))
	}

	return out
}

func toTouristPlaceResponse(place *entity.TouristPlace) *TouristPlaceResponse {
	if place == nil {
		return nil
	}

	return &TouristPlaceResponse{
		ID:            place.ID,
		Name:          place.Name,
		Location:      place.Location,
		Description:   place.Description,
		Interest:      LabeledValue{Value: string(place.Interest), Label: place.Interest.Label()},
		BudgetTier:    LabeledValue{Value: string(place.BudgetTier), Label: place.BudgetTier.Label()},
		EstimatedCost: place.EstimatedCost,
		ImageURL:      place.ImageURL,
	}
}

func toInterestValues(interests []entity.InterestCategory) []LabeledValue {
	out := make([]LabeledValue, 0, len(interests))
	for _, interest := range interests {
		out = append(out, LabeledValue{Value: string(interest), Label: interest.Label()})
	}

	return out
}

func toTripBudgetResponse(budget *entity.TripBudget) *TripBudgetResponse {
	if budget == nil {
		return nil
	}

	return &TripBudgetResponse{
		HotelCost:     budget.HotelCost,
		TransportCost: budget.TransportCost,
		FoodCost:      budget.FoodCost,
		Total:         budget.Total(),
	}
}

func toGeneratedPlanResponse(generated *usecase.GeneratedPlan) *GeneratedPlanResponse {
	draft := generated.Draft

	days := make([]*DayPreviewResponse, 0, len(draft.Days))
	for _, day := range draft.Days {
		places := make([]*TouristPlaceResponse, 0, len(day.Places))
		for _, place := range day.Places {
			places = append(places, toTouristPlaceResponse(place))
		}
		days = append(days, &DayPreviewResponse{DayNumber: day.DayNumber, Places: places})
	}

	resp := &GeneratedPlanResponse{
		Token:        draft.Token,
		Destination:  draft.Destination,
		NumDays:      draft.NumDays,
		Budget:       LabeledValue{Value: string(draft.Budget), Label: draft.Budget.Label()},
		StartDate:    draft.StartDate.Format(dateLayout),
		EndDate:      draft.EndDate.Format(dateLayout),
		Interests:    toInterestValues(draft.Interests),
		Days:         days,
		TripBudget:   toTripBudgetResponse(draft.Costs),
		UsedFallback: generated.UsedFallback,
	}
	if generated.UsedFallback {
		resp.Warning = fallbackWarning
	}

	return resp
}

func toTravelPlanResponse(plan *entity.TravelPlan) *TravelPlanResponse {
	days := make([]*DayPlanResponse, 0, len(plan.Days))
	for _, day := range plan.Days {
		items := make([]*DayItemResponse, 0, len(day.Items))
		for _, item := range day.Items {
			items = append(items, &DayItemResponse{
				ID:    item.ID,
				Order: item.Order,
				Notes: item.Notes,
				Place: toTouristPlaceResponse(item.Place),
			})
		}
		days = append(days, &DayPlanResponse{DayNumber: day.DayNumber, Items: items})
	}

	return &TravelPlanResponse{
		ID:          plan.ID,
		Destination: plan.Destination,
		NumDays:     plan.NumDays,
		Budget:      LabeledValue{Value: string(plan.Budget), Label: plan.Budget.Label()},
		StartDate:   plan.StartDate.Format(dateLayout),
		EndDate:     plan.EndDate.Format(dateLayout),
		Interests:   toInterestValues(plan.Interests),
		Days:        days,
		TripBudget:  toTripBudgetResponse(plan.TripBudget),
		TotalItems:  plan.TotalItems(),
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

func toTravelPlanResponses(plans []*entity.TravelPlan) []*TravelPlanResponse {
	out := make([]*TravelPlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, toTravelPlanResponse(plan))
	}

	return out
}
