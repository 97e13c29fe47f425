package impl

import (
	"context"
	"testing"

	"tourist/internal/domain/entity"
	domainerrors "tourist/internal/domain/errors"
	"tourist/internal/domain/repository"
	mockRepo "tourist/internal/mocks/repository"
	mockUsecase "tourist/internal/mocks/usecase"
	"tourist/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	placeRepo       *mockRepo.MockPlaceRepository
	hillStationRepo *mockRepo.MockHillStationRepository
	search          *mockUsecase.MockSearchUsecase
}

func newCatalogServiceForTest(t *testing.T) (usecase.CatalogUsecase, *catalogMocks) {
	m := &catalogMocks{
		placeRepo:       mockRepo.NewMockPlaceRepository(t),
		hillStationRepo: mockRepo.NewMockHillStationRepository(t),
		search:          mockUsecase.NewMockSearchUsecase(t),
	}

	svc := NewCatalogService(CatalogServiceParams{
		PlaceRepo:       m.placeRepo,
		HillStationRepo: m.hillStationRepo,
		Search:          m.search,
		Logger:          newDiscardLogger(),
	})

	return svc, m
}

func TestCatalogService_ListPlaces(t *testing.T) {
	ctx := context.Background()

	t.Run("passes category and trimmed query", func(t *testing.T) {
		svc, m := newCatalogServiceForTest(t)
		places := []*entity.Place{placeAt(1, "Baga Beach", entity.CategoryBeach, 15.5553, 73.7517)}

		m.placeRepo.EXPECT().
			ListPlaces(ctx, repository.PlaceFilter{Category: entity.CategoryBeach, Keyword: "goa"}).
			Return(places, nil).
			Once()

		got, err := svc.ListPlaces(ctx, &usecase.ListPlacesInput{Category: entity.CategoryBeach, Query: "  goa "})

		require.NoError(t, err)
		assert.Equal(t, places, got)
	})

	t.Run("rejects search-only category", func(t *testing.T) {
		svc, _ := newCatalogServiceForTest(t)

		got, err := svc.ListPlaces(ctx, &usecase.ListPlacesInput{Category: entity.CategoryTemple})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_GetPlace(t *testing.T) {
	ctx := context.Background()

	t.Run("with nearby items", func(t *testing.T) {
		svc, m := newCatalogServiceForTest(t)
		place := placeAt(7, "Fort Aguada", entity.CategoryHistorical, 15.4920, 73.7737)
		distance := 6.42
		nearby := []entity.SearchResult{{
			Item:       placeAt(8, "Candolim Beach", entity.CategoryBeach, 15.5180, 73.7620),
			DistanceKm: &distance,
		}}

		m.placeRepo.EXPECT().FindPlaceByID(ctx, uint(7)).Return(place, nil).Once()
		m.search.EXPECT().NearbyItems(ctx, place).Return(nearby, nil).Once()

		detail, err := svc.GetPlace(ctx, 7)

		require.NoError(t, err)
		assert.Same(t, place, detail.Place)
		assert.Equal(t, nearby, detail.Nearby)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newCatalogServiceForTest(t)

		m.placeRepo.EXPECT().FindPlaceByID(ctx, uint(99)).Return(nil, repository.ErrPlaceNotFound).Once()

		detail, err := svc.GetPlace(ctx, 99)

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
	})
}

func TestCatalogService_ListHillStations(t *testing.T) {
	ctx := context.Background()

	t.Run("returns filtered stations with all filter choices", func(t *testing.T) {
		svc, m := newCatalogServiceForTest(t)
		stations := []*entity.HillStation{hillStationAt(1, "Ooty", 11.4102, 76.6950)}

		m.hillStationRepo.EXPECT().
			ListHillStations(ctx, repository.HillStationFilter{State: "tamil", City: ""}).
			Return(stations, nil).
			Once()
		m.hillStationRepo.EXPECT().
			ListLocations(ctx).
			Return([]string{"Himachal Pradesh", "Tamil Nadu"}, []string{"Ooty", "Shimla"}, nil).
			Once()

		listing, err := svc.ListHillStations(ctx, &usecase.ListHillStationsInput{State: "tamil "})

		require.NoError(t, err)
		assert.Equal(t, stations, listing.HillStations)
		assert.Equal(t, []string{"Himachal Pradesh", "Tamil Nadu"}, listing.States)
		assert.Equal(t, []string{"Ooty", "Shimla"}, listing.Cities)
	})

	t.Run("location listing failure", func(t *testing.T) {
		svc, m := newCatalogServiceForTest(t)

		m.hillStationRepo.EXPECT().ListHillStations(ctx, mock.Anything).Return(nil, nil).Once()
		m.hillStationRepo.EXPECT().ListLocations(ctx).Return(nil, nil, errors.New("boom")).Once()

		listing, err := svc.ListHillStations(ctx, &usecase.ListHillStationsInput{})

		assert.Nil(t, listing)
		assert.ErrorContains(t, err, "boom")
	})
}

func TestCatalogService_GetHillStation(t *testing.T) {
	ctx := context.Background()

	t.Run("with nearby items", func(t *testing.T) {
		svc, m := newCatalogServiceForTest(t)
		station := hillStationAt(3, "Shimla", 31.1048, 77.1734)

		m.hillStationRepo.EXPECT().FindHillStationByID(ctx, uint(3)).Return(station, nil).Once()
		m.search.EXPECT().NearbyItems(ctx, station).Return([]entity.SearchResult{}, nil).Once()

		detail, err := svc.GetHillStation(ctx, 3)

		require.NoError(t, err)
		assert.Same(t, station, detail.HillStation)
		assert.Empty(t, detail.Nearby)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newCatalogServiceForTest(t)

		m.hillStationRepo.EXPECT().
			FindHillStationByID(ctx, uint(4)).
			Return(nil, repository.ErrHillStationNotFound).
			Once()

		detail, err := svc.GetHillStation(ctx, 4)

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, domainerrors.ErrHillStationNotFound)
	})
}
