package seed

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"tourist/internal/domain/entity"
	mockRepo "tourist/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheets map[string][][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)

		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestLoadWorkbook(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		SheetTouristPlaces: {
			{"Name", "Location", "Interest", "Budget_Tier", "Estimated_Cost", "Is_Active"},
			{"Baga Beach", "Goa", "beaches", "economy", 0, ""},
			{"", "", "", "", "", ""},
			{"Taj Fort", "Goa", "Historical", "Luxury", 1500.0, "false"},
		},
		SheetPlaces: {
			{"name", "category", "latitude", "longitude", "location"},
			{"Charminar", "historical", 17.3616, 78.4747, "Hyderabad"},
			{"Unknown spot", "", "", "", ""},
		},
		SheetHillStations: {
			{"name", "city", "state", "latitude", "longitude", "best_time_to_visit"},
			{"Munnar", "Munnar", "Kerala", 10.0889, 77.0595, "September-March"},
		},
	})

	catalog, err := LoadWorkbook(buf)
	require.NoError(t, err)

	require.Len(t, catalog.TouristPlaces, 2)
	assert.Equal(t, &entity.TouristPlace{
		Name:       "Baga Beach",
		Location:   "Goa",
		Interest:   entity.InterestBeaches,
		BudgetTier: entity.BudgetEconomy,
		IsActive:   true,
	}, catalog.TouristPlaces[0])
	assert.Equal(t, entity.InterestHistorical, catalog.TouristPlaces[1].Interest)
	assert.Equal(t, entity.BudgetLuxury, catalog.TouristPlaces[1].BudgetTier)
	assert.Equal(t, 1500, catalog.TouristPlaces[1].EstimatedCost)
	assert.False(t, catalog.TouristPlaces[1].IsActive)

	require.Len(t, catalog.Places, 2)
	assert.Equal(t, entity.CategoryHistorical, catalog.Places[0].Category)
	require.NotNil(t, catalog.Places[0].Latitude)
	assert.InDelta(t, 17.3616, *catalog.Places[0].Latitude, 1e-9)
	assert.Equal(t, entity.CategoryOther, catalog.Places[1].Category)
	assert.Nil(t, catalog.Places[1].Latitude)
	assert.Nil(t, catalog.Places[1].Longitude)

	require.Len(t, catalog.HillStations, 1)
	assert.Equal(t, entity.DefaultCountry, catalog.HillStations[0].Country)
	assert.Equal(t, "September-March", catalog.HillStations[0].BestTimeToVisit)
	assert.InDelta(t, 77.0595, catalog.HillStations[0].Longitude, 1e-9)
}

func TestLoadWorkbook_MissingSheetsImportNothing(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		SheetPlaces: {{"name"}, {"Somewhere"}},
	})

	catalog, err := LoadWorkbook(buf)

	require.NoError(t, err)
	assert.Empty(t, catalog.TouristPlaces)
	assert.Len(t, catalog.Places, 1)
	assert.Empty(t, catalog.HillStations)
}

func TestLoadWorkbook_RowErrors(t *testing.T) {
	tests := []struct {
		name   string
		sheets map[string][][]any
		want   RowError
	}{
		{
			name: "unknown interest",
			sheets: map[string][][]any{SheetTouristPlaces: {
				{"name", "interest", "budget_tier"},
				{"Spa", "wellness", "economy"},
			}},
			want: RowError{Sheet: SheetTouristPlaces, Row: 2, Column: "interest", Reason: "unknown interest: wellness"},
		},
		{
			name: "search-only category",
			sheets: map[string][][]any{SheetPlaces: {
				{"name", "category"},
				{"Hotel X", "HOTEL"},
			}},
			want: RowError{Sheet: SheetPlaces, Row: 2, Column: "category", Reason: "unknown category: HOTEL"},
		},
		{
			name: "hill station without latitude",
			sheets: map[string][][]any{SheetHillStations: {
				{"name", "longitude"},
				{"Ooty", 76.6950},
			}},
			want: RowError{Sheet: SheetHillStations, Row: 2, Column: "latitude", Reason: "value is required"},
		},
		{
			name: "missing name header",
			sheets: map[string][][]any{SheetPlaces: {
				{"title"},
				{"Somewhere"},
			}},
			want: RowError{Sheet: SheetPlaces, Row: 1, Column: "name", Reason: "header is missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := LoadWorkbook(buildWorkbook(t, tt.sheets))

			assert.Nil(t, catalog)
			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tt.want, *rowErr)
		})
	}
}

func TestLoadWorkbook_NotAWorkbook(t *testing.T) {
	_, err := LoadWorkbook(bytes.NewBufferString("name,location\n"))

	assert.Error(t, err)
}

func TestSeeder_Seed(t *testing.T) {
	touristRepo := mockRepo.NewMockTouristPlaceRepository(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	hillRepo := mockRepo.NewMockHillStationRepository(t)

	seeder := NewSeeder(SeederParams{
		TouristPlaceRepo: touristRepo,
		PlaceRepo:        placeRepo,
		HillStationRepo:  hillRepo,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	catalog := &Catalog{
		TouristPlaces: []*entity.TouristPlace{{Name: "Baga Beach"}, {Name: "Fort Aguada"}},
		Places:        []*entity.Place{{Name: "Charminar"}},
		HillStations:  []*entity.HillStation{{Name: "Munnar"}},
	}

	touristRepo.EXPECT().UpsertTouristPlace(mock.Anything, mock.Anything).Return(nil).Twice()
	placeRepo.EXPECT().UpsertPlace(mock.Anything, catalog.Places[0]).Return(nil).Once()
	hillRepo.EXPECT().UpsertHillStation(mock.Anything, catalog.HillStations[0]).Return(nil).Once()

	summary, err := seeder.Seed(context.Background(), catalog)

	require.NoError(t, err)
	assert.Equal(t, Summary{TouristPlaces: 2, Places: 1, HillStations: 1}, summary)
}

func TestSeeder_Seed_StopsOnFailure(t *testing.T) {
	touristRepo := mockRepo.NewMockTouristPlaceRepository(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	hillRepo := mockRepo.NewMockHillStationRepository(t)

	seeder := NewSeeder(SeederParams{
		TouristPlaceRepo: touristRepo,
		PlaceRepo:        placeRepo,
		HillStationRepo:  hillRepo,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	dbErr := errors.New("connection reset")
	touristRepo.EXPECT().UpsertTouristPlace(mock.Anything, mock.Anything).Return(nil).Once()
	placeRepo.EXPECT().UpsertPlace(mock.Anything, mock.Anything).Return(dbErr).Once()

	summary, err := seeder.Seed(context.Background(), &Catalog{
		TouristPlaces: []*entity.TouristPlace{{Name: "Baga Beach"}},
		Places:        []*entity.Place{{Name: "Charminar"}},
		HillStations:  []*entity.HillStation{{Name: "Munnar"}},
	})

	assert.ErrorIs(t, err, dbErr)
	assert.EqualError(t, err, `seed place "Charminar": connection reset`)
	assert.Equal(t, Summary{TouristPlaces: 1}, summary)
}
