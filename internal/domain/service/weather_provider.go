package service

import (
	"context"

	"tourist/internal/domain/entity"
)

// WeatherProvider returns current conditions for a free-text location.
type WeatherProvider interface {
	Current(ctx context.Context, location string) (*entity.Weather, error)
}
