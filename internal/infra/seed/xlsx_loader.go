// Package seed imports the tourist place, place and hill station catalogs from an xlsx workbook.
package seed

import (
	"io"
	"strconv"
	"strings"

	"tourist/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Sheet names. A missing sheet imports nothing for that catalog.
const (
	SheetTouristPlaces = "tourist_places"
	SheetPlaces        = "places"
	SheetHillStations  = "hill_stations"
)

// Catalog is the parsed content of a seed workbook.
type Catalog struct {
	TouristPlaces []*entity.TouristPlace
	Places        []*entity.Place
	HillStations  []*entity.HillStation
}

// RowError locates a bad cell in the workbook. Row is 1-based as shown by spreadsheet tools.
type RowError struct {
	Sheet  string
	Row    int
	Column string
	Reason string
}

func (e *RowError) Error() string {
	return e.Sheet + " row " + strconv.Itoa(e.Row) + " column " + e.Column + ": " + e.Reason
}

// LoadWorkbook parses all three catalog sheets. Columns are matched by header name,
// case-insensitively; rows without a name are skipped.
func LoadWorkbook(r io.Reader) (*Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	catalog := &Catalog{}

	if err := eachRow(f, SheetTouristPlaces, func(row sheetRow) error {
		place, err := parseTouristPlace(row)
		if err == nil {
			catalog.TouristPlaces = append(catalog.TouristPlaces, place)
		}

		return err
	}); err != nil {
		return nil, err
	}

	if err := eachRow(f, SheetPlaces, func(row sheetRow) error {
		place, err := parsePlace(row)
		if err == nil {
			catalog.Places = append(catalog.Places, place)
		}

		return err
	}); err != nil {
		return nil, err
	}

	if err := eachRow(f, SheetHillStations, func(row sheetRow) error {
		station, err := parseHillStation(row)
		if err == nil {
			catalog.HillStations = append(catalog.HillStations, station)
		}

		return err
	}); err != nil {
		return nil, err
	}

	return catalog, nil
}

type sheetRow struct {
	sheet   string
	number  int
	columns map[string]int
	cells   []string
}

func (r sheetRow) get(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.cells) {
		return ""
	}

	return strings.TrimSpace(r.cells[idx])
}

func (r sheetRow) fail(column, reason string) error {
	return &RowError{Sheet: r.sheet, Row: r.number, Column: column, Reason: reason}
}

func (r sheetRow) optionalFloat(column string) (*float64, error) {
	raw := r.get(column)
	if raw == "" {
		return nil, nil //nolint:nilnil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, r.fail(column, "not a number: "+raw)
	}

	return &value, nil
}

func (r sheetRow) requiredFloat(column string) (float64, error) {
	value, err := r.optionalFloat(column)
	if err != nil {
		return 0, err
	}
	if value == nil {
		return 0, r.fail(column, "value is required")
	}

	return *value, nil
}

func eachRow(f *excelize.File, sheet string, fn func(sheetRow) error) error {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return errors.Wrapf(err, "read sheet %s", sheet)
	}
	if len(rows) == 0 {
		return nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	if _, ok := columns["name"]; !ok {
		return &RowError{Sheet: sheet, Row: 1, Column: "name", Reason: "header is missing"}
	}

	for i, cells := range rows[1:] {
		row := sheetRow{sheet: sheet, number: i + 2, columns: columns, cells: cells}
		if row.get("name") == "" {
			continue
		}
		if err := fn(row); err != nil {
			return err
		}
	}

	return nil
}

func parseTouristPlace(row sheetRow) (*entity.TouristPlace, error) {
	interest := entity.InterestCategory(strings.ToLower(row.get("interest")))
	if !interest.IsValid() {
		return nil, row.fail("interest", "unknown interest: "+row.get("interest"))
	}

	tier := entity.BudgetTier(strings.ToLower(row.get("budget_tier")))
	if !tier.IsValid() {
		return nil, row.fail("budget_tier", "unknown budget tier: "+row.get("budget_tier"))
	}

	cost := 0
	if raw := row.get("estimated_cost"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			return nil, row.fail("estimated_cost", "not a non-negative number: "+raw)
		}
		cost = int(parsed)
	}

	active := true
	if raw := row.get("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, row.fail("is_active", "not a boolean: "+raw)
		}
		active = parsed
	}

	return &entity.TouristPlace{
		Name:          row.get("name"),
		Location:      row.get("location"),
		Description:   row.get("description"),
		Interest:      interest,
		BudgetTier:    tier,
		EstimatedCost: cost,
		ImageURL:      row.get("image_url"),
		IsActive:      active,
	}, nil
}

func parsePlace(row sheetRow) (*entity.Place, error) {
	category := entity.PlaceCategory(strings.ToUpper(row.get("category")))
	if category == "" {
		category = entity.CategoryOther
	}
	if !category.IsStorable() {
		return nil, row.fail("category", "unknown category: "+row.get("category"))
	}

	lat, err := row.optionalFloat("latitude")
	if err != nil {
		return nil, err
	}
	lng, err := row.optionalFloat("longitude")
	if err != nil {
		return nil, err
	}

	return &entity.Place{
		Name:        row.get("name"),
		Description: row.get("description"),
		Location:    row.get("location"),
		Category:    category,
		Latitude:    lat,
		Longitude:   lng,
		ImageURL:    row.get("image_url"),
	}, nil
}

func parseHillStation(row sheetRow) (*entity.HillStation, error) {
	lat, err := row.requiredFloat("latitude")
	if err != nil {
		return nil, err
	}
	lng, err := row.requiredFloat("longitude")
	if err != nil {
		return nil, err
	}

	country := row.get("country")
	if country == "" {
		country = entity.DefaultCountry
	}

	return &entity.HillStation{
		Name:             row.get("name"),
		City:             row.get("city"),
		District:         row.get("district"),
		State:            row.get("state"),
		Country:          country,
		Description:      row.get("description"),
		BestTimeToVisit:  row.get("best_time_to_visit"),
		TemperatureRange: row.get("temperature_range"),
		Latitude:         lat,
		Longitude:        lng,
		ImageURL:         row.get("image_url"),
	}, nil
}
