package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"tourist/internal/domain/entity"
	domainerrors "tourist/internal/domain/errors"
	mockUsecase "tourist/internal/mocks/usecase"
	"tourist/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const planBody = `{"destination":" Goa ","num_days":2,"budget":"Moderate","start_date":"2026-12-20",
	"end_date":"2026-12-22","interests":["Beaches","food"],"hotel_cost":4000,"transport_cost":1500,"food_cost":1200}`

func newItineraryHandler(t *testing.T) (*ItineraryHandler, *mockUsecase.MockItineraryUsecase) {
	itineraryUC := mockUsecase.NewMockItineraryUsecase(t)

	return NewItineraryHandler(ItineraryHandlerParams{ItineraryUC: itineraryUC, Logger: newDiscardLogger()}), itineraryUC
}

func samplePlan(userID uuid.UUID) *entity.TravelPlan {
	beach := &entity.TouristPlace{ID: 11, Name: "Calangute Beach", Interest: entity.InterestBeaches, BudgetTier: entity.BudgetEconomy}

	return &entity.TravelPlan{
		ID:          uuid.New(),
		UserID:      userID,
		Destination: "Goa",
		NumDays:     2,
		Budget:      entity.BudgetModerate,
		StartDate:   time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 22, 0, 0, 0, 0, time.UTC),
		Interests:   []entity.InterestCategory{entity.InterestBeaches},
		Days: []*entity.DayPlan{
			{DayNumber: 1, Items: []*entity.DayPlaceItem{{ID: uuid.New(), PlaceID: 11, Place: beach, Order: 0}}},
			{DayNumber: 2, Items: []*entity.DayPlaceItem{}},
		},
		TripBudget: &entity.TripBudget{HotelCost: 4000, TransportCost: 1500, FoodCost: 1200},
	}
}

func TestItineraryHandler_GeneratePlan(t *testing.T) {
	h, itineraryUC := newItineraryHandler(t)
	userID := uuid.New()
	token := uuid.New()

	wantInput := &usecase.PlanInput{
		Destination:   "Goa",
		NumDays:       2,
		Budget:        entity.BudgetModerate,
		StartDate:     time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 12, 22, 0, 0, 0, 0, time.UTC),
		Interests:     []entity.InterestCategory{entity.InterestBeaches, entity.InterestFood},
		HotelCost:     4000,
		TransportCost: 1500,
		FoodCost:      1200,
	}

	itineraryUC.EXPECT().GeneratePlan(mock.Anything, userID, wantInput).Return(&usecase.GeneratedPlan{
		Draft: &entity.PlanDraft{
			Token:       token,
			UserID:      userID,
			Destination: "Goa",
			NumDays:     2,
			Budget:      entity.BudgetModerate,
			StartDate:   wantInput.StartDate,
			EndDate:     wantInput.EndDate,
			Interests:   wantInput.Interests,
			Days: []entity.DayBucket{
				{DayNumber: 1, Places: []*entity.TouristPlace{{ID: 3, Name: "Fort Aguada", Interest: entity.InterestHistorical, BudgetTier: entity.BudgetEconomy}}},
				{DayNumber: 2, Places: []*entity.TouristPlace{}},
			},
			Costs: &entity.TripBudget{HotelCost: 4000, TransportCost: 1500, FoodCost: 1200},
		},
		UsedFallback: true,
	}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/api/itineraries/generate", planBody, &userID)

	require.NoError(t, h.GeneratePlan(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GeneratedPlanResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
	assert.Equal(t, token, resp.Token)
	assert.True(t, resp.UsedFallback)
	assert.Equal(t, fallbackWarning, resp.Warning)
	assert.Equal(t, "2026-12-20", resp.StartDate)
	assert.Equal(t, LabeledValue{Value: "moderate", Label: "Moderate (₹500 – ₹2000/day)"}, resp.Budget)
	assert.Equal(t, []LabeledValue{{Value: "beaches", Label: "Beaches"}, {Value: "food", Label: "Food & Cuisine"}}, resp.Interests)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "Fort Aguada", resp.Days[0].Places[0].Name)
	assert.Equal(t, "Historical Places", resp.Days[0].Places[0].Interest.Label)
	assert.Empty(t, resp.Days[1].Places)
	assert.InDelta(t, 6700, resp.TripBudget.Total, 1e-9)
}

func TestItineraryHandler_GeneratePlan_Rejected(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		userID     *uuid.UUID
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no authenticated user",
			body:       planBody,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "malformed json",
			body:       `{"destination":`,
			userID:     &userID,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "unknown interest",
			body: `{"destination":"Goa","num_days":1,"budget":"economy","start_date":"2026-12-20",
				"end_date":"2026-12-20","interests":["casinos"]}`,
			userID:     &userID,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "bad date",
			body: `{"destination":"Goa","num_days":1,"budget":"economy","start_date":"20/12/2026",
				"end_date":"2026-12-20","interests":["food"]}`,
			userID:     &userID,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "negative cost",
			body: `{"destination":"Goa","num_days":1,"budget":"economy","start_date":"2026-12-20",
				"end_date":"2026-12-20","interests":["food"],"food_cost":-5}`,
			userID:     &userID,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newItineraryHandler(t)
			c, rec := newTestContext(http.MethodPost, "/api/itineraries/generate", tt.body, tt.userID)

			require.NoError(t, h.GeneratePlan(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestItineraryHandler_GeneratePlan_UsecaseValidation(t *testing.T) {
	h, itineraryUC := newItineraryHandler(t)
	userID := uuid.New()

	itineraryUC.EXPECT().GeneratePlan(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("Number of days exceeds the selected date range.")).Once()

	c, rec := newTestContext(http.MethodPost, "/api/itineraries/generate", planBody, &userID)

	require.NoError(t, h.GeneratePlan(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Number of days exceeds the selected date range.", decodeEnvelope(t, rec).Error.Details)
}

func TestItineraryHandler_SavePlan(t *testing.T) {
	userID := uuid.New()
	token := uuid.New()

	t.Run("created", func(t *testing.T) {
		h, itineraryUC := newItineraryHandler(t)
		plan := samplePlan(userID)
		itineraryUC.EXPECT().SavePlan(mock.Anything, userID, token).Return(plan, nil).Once()

		c, rec := newTestContext(http.MethodPost, "/api/itineraries/save", `{"token":"`+token.String()+`"}`, &userID)

		require.NoError(t, h.SavePlan(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp TravelPlanResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
		assert.Equal(t, plan.ID, resp.ID)
		assert.Equal(t, 1, resp.TotalItems)
		require.Len(t, resp.Days, 2)
		assert.Equal(t, "Calangute Beach", resp.Days[0].Items[0].Place.Name)
		assert.Empty(t, resp.Days[1].Items)
	})

	t.Run("token is not a uuid", func(t *testing.T) {
		h, _ := newItineraryHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/itineraries/save", `{"token":"abc"}`, &userID)

		require.NoError(t, h.SavePlan(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("token rejected without struct validation", func(t *testing.T) {
		h, _ := newItineraryHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/itineraries/save", `{"token":"abc"}`, &userID)
		c.Echo().Validator = acceptAllValidator{}

		require.NoError(t, h.SavePlan(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("draft expired", func(t *testing.T) {
		h, itineraryUC := newItineraryHandler(t)
		itineraryUC.EXPECT().SavePlan(mock.Anything, userID, token).Return(nil, domainerrors.ErrDraftNotFound).Once()

		c, rec := newTestContext(http.MethodPost, "/api/itineraries/save", `{"token":"`+token.String()+`"}`, &userID)

		require.NoError(t, h.SavePlan(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DRAFT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestItineraryHandler_ListPlans(t *testing.T) {
	h, itineraryUC := newItineraryHandler(t)
	userID := uuid.New()
	itineraryUC.EXPECT().ListPlans(mock.Anything, userID).Return([]*entity.TravelPlan{samplePlan(userID), samplePlan(userID)}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/itineraries", "", &userID)

	require.NoError(t, h.ListPlans(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var plans []TravelPlanResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &plans))
	assert.Len(t, plans, 2)
}

func TestItineraryHandler_GetPlan(t *testing.T) {
	userID := uuid.New()

	t.Run("with weather", func(t *testing.T) {
		h, itineraryUC := newItineraryHandler(t)
		plan := samplePlan(userID)
		itineraryUC.EXPECT().GetPlan(mock.Anything, userID, plan.ID).Return(&usecase.PlanDetail{
			Plan:    plan,
			Weather: &entity.Weather{Temp: 29.5, Condition: "Clouds", Description: "scattered clouds", Icon: "03d"},
		}, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/", "", &userID)
		c.SetParamNames("id")
		c.SetParamValues(plan.ID.String())

		require.NoError(t, h.GetPlan(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var detail PlanDetailResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &detail))
		assert.Equal(t, "Goa", detail.Destination)
		require.NotNil(t, detail.Weather)
		assert.Equal(t, "Clouds", detail.Weather.Condition)
		assert.InDelta(t, 6700, detail.TripBudget.Total, 1e-9)
	})

	t.Run("weather error marker", func(t *testing.T) {
		h, itineraryUC := newItineraryHandler(t)
		plan := samplePlan(userID)
		itineraryUC.EXPECT().GetPlan(mock.Anything, userID, plan.ID).Return(&usecase.PlanDetail{
			Plan:    plan,
			Weather: &entity.Weather{Error: "API Key missing"},
		}, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/", "", &userID)
		c.SetParamNames("id")
		c.SetParamValues(plan.ID.String())

		require.NoError(t, h.GetPlan(c))
		assert.Contains(t, rec.Body.String(), `"error":"API Key missing"`)
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newItineraryHandler(t)
		c, rec := newTestContext(http.MethodGet, "/", "", &userID)
		c.SetParamNames("id")
		c.SetParamValues("42")

		require.NoError(t, h.GetPlan(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("other user's plan", func(t *testing.T) {
		h, itineraryUC := newItineraryHandler(t)
		planID := uuid.New()
		itineraryUC.EXPECT().GetPlan(mock.Anything, userID, planID).Return(nil, domainerrors.ErrPlanNotFound).Once()

		c, rec := newTestContext(http.MethodGet, "/", "", &userID)
		c.SetParamNames("id")
		c.SetParamValues(planID.String())

		require.NoError(t, h.GetPlan(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PLAN_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestItineraryHandler_UpdatePlan(t *testing.T) {
	h, itineraryUC := newItineraryHandler(t)
	userID := uuid.New()
	plan := samplePlan(userID)

	itineraryUC.EXPECT().UpdatePlan(mock.Anything, userID, plan.ID, mock.MatchedBy(func(in *usecase.PlanInput) bool {
		return in.Destination == "Goa" && in.Budget == entity.BudgetModerate && len(in.Interests) == 2
	})).Return(plan, nil).Once()

	c, rec := newTestContext(http.MethodPut, "/", planBody, &userID)
	c.SetParamNames("id")
	c.SetParamValues(plan.ID.String())

	require.NoError(t, h.UpdatePlan(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TravelPlanResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
	assert.Equal(t, plan.ID, resp.ID)
}

func TestItineraryHandler_DeletePlan(t *testing.T) {
	h, itineraryUC := newItineraryHandler(t)
	userID := uuid.New()
	planID := uuid.New()
	itineraryUC.EXPECT().DeletePlan(mock.Anything, userID, planID).Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/", "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(planID.String())

	require.NoError(t, h.DeletePlan(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, "Travel plan deleted successfully", body["message"])
}

type acceptAllValidator struct{}

func (acceptAllValidator) Validate(any) error { return nil }
