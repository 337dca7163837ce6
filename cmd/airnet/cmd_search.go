package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/query"
)

var (
	searchCode    string
	searchName    string
	searchCity    string
	searchCountry string
	searchNear    string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find airports by code, name, city, country or coordinates",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine()
		if err != nil {
			return err
		}

		switch {
		case searchCode != "":
			v := e.FindAirport(searchCode)
			if v == nil {
				fmt.Printf("no airport with code %q\n", searchCode)
				return nil
			}
			printAirport(v)
		case searchName != "":
			printAll(e.SearchAirports(searchName, query.AirportName))
		case searchCity != "":
			printAll(e.SearchAirports(searchCity, query.CityName))
		case searchCountry != "":
			printAll(e.SearchAirports(searchCountry, query.CountryName))
		case searchNear != "":
			coords, err := parseCoordinates(searchNear)
			if err != nil {
				return err
			}
			printAll(e.ClosestAirports(coords))
		default:
			return fmt.Errorf("one of --code, --name, --city, --country or --near is required")
		}
		return nil
	},
}

func printAll(vs []*core.Vertex) {
	if len(vs) == 0 {
		fmt.Println("no matches")
		return
	}
	for _, v := range vs {
		printAirport(v)
	}
}

// parseCoordinates parses "lat,lon" in degrees.
func parseCoordinates(s string) (core.Coordinates, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return core.Coordinates{}, fmt.Errorf("coordinates must be \"lat,lon\", got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return core.Coordinates{}, fmt.Errorf("bad latitude %q: %w", parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return core.Coordinates{}, fmt.Errorf("bad longitude %q: %w", parts[1], err)
	}
	return core.Coordinates{Lat: lat, Lon: lon}, nil
}

func init() {
	searchCmd.Flags().StringVar(&searchCode, "code", "", "exact airport code")
	searchCmd.Flags().StringVar(&searchName, "name", "", "substring of the airport name")
	searchCmd.Flags().StringVar(&searchCity, "city", "", "substring of the city name")
	searchCmd.Flags().StringVar(&searchCountry, "country", "", "substring of the country name")
	searchCmd.Flags().StringVar(&searchNear, "near", "", "coordinates \"lat,lon\" for nearest-airport search")
	rootCmd.AddCommand(searchCmd)
}
