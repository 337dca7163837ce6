package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/airnet/itinerary"
)

var (
	routeSameAirline bool
	routeVia         string
)

var routeCmd = &cobra.Command{
	Use:   "route SOURCES DESTINATIONS",
	Short: "Compose the best itineraries between airports",
	Long: `Compose the best itineraries between airports.

SOURCES and DESTINATIONS are comma-separated airport codes; every
(source, destination) pair competes and only the itineraries with the
fewest layovers overall survive.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := splitCodes(args[0])
		destinations := splitCodes(args[1])
		if len(sources) == 0 || len(destinations) == 0 {
			return fmt.Errorf("sources and destinations must not be empty")
		}

		e, err := loadEngine()
		if err != nil {
			return err
		}
		for _, code := range append(append([]string{}, sources...), destinations...) {
			if e.FindAirport(code) == nil {
				return fmt.Errorf("no airport with code %q", code)
			}
		}

		opts := []itinerary.Option{}
		if routeSameAirline {
			opts = append(opts, itinerary.WithMode(itinerary.SameAirline))
		}
		if routeVia != "" {
			via := splitCodes(routeVia)
			for _, code := range via {
				if e.FindAirport(code) == nil {
					return fmt.Errorf("no airport with code %q", code)
				}
			}
			opts = append(opts, itinerary.WithLayovers(via...))
		}

		trips := itinerary.Plan(e, sources, destinations, opts...)
		if len(trips) == 0 {
			fmt.Println("no itinerary found")
			return nil
		}
		itinerary.ByDistance(trips)

		fmt.Printf("%d itinerary(ies), %d lay-over(s)\n", len(trips), len(trips[0].Path)-2)
		for _, trip := range trips {
			fmt.Printf("  %s  %.1f km", strings.Join(trip.Path, " > "), trip.Distance)
			if routeSameAirline {
				fmt.Printf("  [%s]", strings.Join(trip.Airlines.Codes(), " "))
			}
			fmt.Println()
		}
		return nil
	},
}

// splitCodes splits a comma-separated code list, dropping blanks.
func splitCodes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if code := strings.TrimSpace(part); code != "" {
			out = append(out, code)
		}
	}
	return out
}

func init() {
	routeCmd.Flags().BoolVar(&routeSameAirline, "same-airline", false, "keep only itineraries one carrier can fly end to end")
	routeCmd.Flags().StringVar(&routeVia, "via", "", "comma-separated layover airports, in order")
	rootCmd.AddCommand(routeCmd)
}
