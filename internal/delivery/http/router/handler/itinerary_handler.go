package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "tourist/internal/delivery/context"
	"tourist/internal/delivery/http/response"
	"tourist/internal/domain/entity"
	"tourist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItineraryHandlerParams holds dependencies for ItineraryHandler, injected by Fx.
type ItineraryHandlerParams struct {
	fx.In

	ItineraryUC usecase.ItineraryUsecase
	Logger      *slog.Logger
}

// ItineraryHandler serves the authenticated plan lifecycle.
type ItineraryHandler struct {
	itineraryUC usecase.ItineraryUsecase
	logger      *slog.Logger
}

func NewItineraryHandler(params ItineraryHandlerParams) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: params.ItineraryUC,
		logger:      params.Logger,
	}
}

// PlanRequest is the body of generate and update.
type PlanRequest struct {
	Destination   string   `json:"destination" validate:"required,max=200"`
	NumDays       int      `json:"num_days" validate:"min=1"`
	Budget        string   `json:"budget" validate:"required,budget_tier"`
	StartDate     string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	Interests     []string `json:"interests" validate:"required,min=1,dive,interest"`
	HotelCost     float64  `json:"hotel_cost" validate:"gte=0"`
	TransportCost float64  `json:"transport_cost" validate:"gte=0"`
	FoodCost      float64  `json:"food_cost" validate:"gte=0"`
}

type SavePlanRequest struct {
	Token string `json:"token" validate:"required,uuid"`
}

func (h *ItineraryHandler) GeneratePlan(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input, errResp := h.bindPlanInput(c)
	if input == nil {
		return errResp
	}

	generated, err := h.itineraryUC.GeneratePlan(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGeneratedPlanResponse(generated))
}

func (h *ItineraryHandler) SavePlan(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SavePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid save request")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	token, err := uuid.Parse(req.Token)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", "token must be a UUID")
	}

	plan, err := h.itineraryUC.SavePlan(c.Request().Context(), userID, token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toTravelPlanResponse(plan))
}

func (h *ItineraryHandler) ListPlans(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plans, err := h.itineraryUC.ListPlans(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTravelPlanResponses(plans))
}

func (h *ItineraryHandler) GetPlan(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	detail, err := h.itineraryUC.GetPlan(c.Request().Context(), userID, planID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PlanDetailResponse{
		TravelPlanResponse: toTravelPlanResponse(detail.Plan),
		Weather:            detail.Weather,
	})
}

func (h *ItineraryHandler) UpdatePlan(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	input, errResp := h.bindPlanInput(c)
	if input == nil {
		return errResp
	}

	plan, err := h.itineraryUC.UpdatePlan(c.Request().Context(), userID, planID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTravelPlanResponse(plan))
}

func (h *ItineraryHandler) DeletePlan(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	if err := h.itineraryUC.DeletePlan(c.Request().Context(), userID, planID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Travel plan deleted successfully"})
}

// bindPlanInput returns a nil input together with the already written error response.
func (h *ItineraryHandler) bindPlanInput(c echo.Context) (*usecase.PlanInput, error) {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid plan input")
	}

	req.Budget = strings.ToLower(strings.TrimSpace(req.Budget))
	for i, interest := range req.Interests {
		req.Interests[i] = strings.ToLower(strings.TrimSpace(interest))
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	interests := make([]entity.InterestCategory, 0, len(req.Interests))
	for _, interest := range req.Interests {
		interests = append(interests, entity.InterestCategory(interest))
	}

	return &usecase.PlanInput{
		Destination:   strings.TrimSpace(req.Destination),
		NumDays:       req.NumDays,
		Budget:        entity.BudgetTier(req.Budget),
		StartDate:     startDate,
		EndDate:       endDate,
		Interests:     interests,
		HotelCost:     req.HotelCost,
		TransportCost: req.TransportCost,
		FoodCost:      req.FoodCost,
	}, nil
}
