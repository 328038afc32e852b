// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// LoadSurveys reads an independent regional assessment series. Survey
// compilations arrive either as a flat CSV or as a SQLite database with
// an indices table; the extension selects the reader.
func LoadSurveys(path string) ([]types.SurveyRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".db") {
		return loadSurveyDB(path)
	}
	return loadSurveyCSV(path)
}

var surveyColumns = []string{"year", "common_name", "region", "metric", "biomass"}

func loadSurveyCSV(path string) ([]types.SurveyRecord, error) {
	rows, err := readCSV(path, false)
	if err != nil {
		return nil, fmt.Errorf("reading survey table: %w", err)
	}

	idx := columnIndex(rows[0])
	for _, col := range surveyColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("survey table %s: missing column %q", path, col)
		}
	}

	records := make([]types.SurveyRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		year, err := strconv.Atoi(strings.TrimSpace(row[idx["year"]]))
		if err != nil {
			return nil, fmt.Errorf("survey table %s row %d: bad year %q", path, i+2, row[idx["year"]])
		}
		biomass, ok, err := parseCell(row[idx["biomass"]])
		if err != nil {
			return nil, fmt.Errorf("survey table %s row %d: biomass: %w", path, i+2, err)
		}
		if !ok {
			continue
		}
		records = append(records, types.SurveyRecord{
			Year:       year,
			CommonName: strings.TrimSpace(row[idx["common_name"]]),
			Region:     strings.TrimSpace(row[idx["region"]]),
			Metric:     strings.TrimSpace(row[idx["metric"]]),
			Biomass:    biomass,
		})
	}
	return records, nil
}

func loadSurveyDB(path string) ([]types.SurveyRecord, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening survey database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT year, common_name, region, metric, biomass FROM indices ORDER BY common_name, year`)
	if err != nil {
		return nil, fmt.Errorf("querying survey database %s: %w", path, err)
	}
	defer rows.Close()

	var records []types.SurveyRecord
	for rows.Next() {
		var r types.SurveyRecord
		var biomass sql.NullFloat64
		if err := rows.Scan(&r.Year, &r.CommonName, &r.Region, &r.Metric, &biomass); err != nil {
			return nil, fmt.Errorf("scanning survey row: %w", err)
		}
		if !biomass.Valid {
			continue
		}
		r.Biomass = biomass.Float64
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading survey database %s: %w", path, err)
	}
	return records, nil
}
