package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/airnet/core"
)

// ErrBadRecord indicates a CSV record that does not match the expected
// shape.
var ErrBadRecord = errors.New("ingest: malformed record")

// LoadAirlines reads the airline catalog from r.
func LoadAirlines(r io.Reader) (*core.AirlineSet, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	catalog := core.NewAirlineSet()
	for i, rec := range records {
		if len(rec) < 4 {
			return nil, fmt.Errorf("%w: airlines row %d has %d fields, want 4", ErrBadRecord, i+2, len(rec))
		}
		catalog.Insert(core.Airline{
			Code:     rec[0],
			Name:     rec[1],
			Callsign: rec[2],
			Country:  rec[3],
		})
	}
	return catalog, nil
}

// LoadAirports reads airports from r into g.
func LoadAirports(r io.Reader, g *core.Graph) error {
	records, err := readRecords(r)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if len(rec) < 6 {
			return fmt.Errorf("%w: airports row %d has %d fields, want 6", ErrBadRecord, i+2, len(rec))
		}
		lat, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return fmt.Errorf("%w: airports row %d latitude: %v", ErrBadRecord, i+2, err)
		}
		lon, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return fmt.Errorf("%w: airports row %d longitude: %v", ErrBadRecord, i+2, err)
		}
		a := core.Airport{
			Code:     rec[0],
			Name:     rec[1],
			City:     rec[2],
			Country:  rec[3],
			Location: core.Coordinates{Lat: lat, Lon: lon},
		}
		if err := g.AddAirport(a); err != nil {
			return fmt.Errorf("ingest: airports row %d: %w", i+2, err)
		}
	}
	return nil
}

// LoadFlights reads flight records from r into g. Each record adds one
// flight instance; routes are deduplicated and airlines accumulate on
// the existing edge. An airline code missing from the catalog degrades
// to a bare Airline carrying only the code.
func LoadFlights(r io.Reader, g *core.Graph, airlines *core.AirlineSet) error {
	records, err := readRecords(r)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if len(rec) < 3 {
			return fmt.Errorf("%w: flights row %d has %d fields, want 3", ErrBadRecord, i+2, len(rec))
		}
		code := strings.ToUpper(rec[2])
		airline, ok := airlines.ByCode(code)
		if !ok {
			airline = core.Airline{Code: code}
		}
		if err := g.AddFlight(rec[0], rec[1], airline); err != nil {
			return fmt.Errorf("ingest: flights row %d (%s->%s): %w", i+2, rec[0], rec[1], err)
		}
	}
	return nil
}

// LoadDataset loads the three CSV files, finalizes the degree counters
// and returns the ready-to-query graph and catalog.
func LoadDataset(airportsPath, airlinesPath, flightsPath string) (*core.Graph, *core.AirlineSet, error) {
	airlines, err := loadFile(airlinesPath, LoadAirlines)
	if err != nil {
		return nil, nil, err
	}

	g := core.NewGraph()
	if err := loadInto(airportsPath, func(r io.Reader) error { return LoadAirports(r, g) }); err != nil {
		return nil, nil, err
	}
	if err := loadInto(flightsPath, func(r io.Reader) error { return LoadFlights(r, g, airlines) }); err != nil {
		return nil, nil, err
	}
	g.ComputeDegrees()
	return g, airlines, nil
}

// readRecords parses r as CSV, skips the header row and trims every
// field.
func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	records = records[1:]
	for _, rec := range records {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
	}
	return records, nil
}

// loadFile opens path and applies load to it.
func loadFile[T any](path string, load func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()
	return load(f)
}

// loadInto opens path and applies load to it.
func loadInto(path string, load func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()
	return load(f)
}
