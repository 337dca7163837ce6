package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/airnet/query"
)

var (
	reachStops int
	reachBy    string
)

var reachableCmd = &cobra.Command{
	Use:   "reachable CODE",
	Short: "Count destinations reachable from an airport",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var projection query.Projection
		switch reachBy {
		case "airports":
			projection = query.Airports
		case "cities":
			projection = query.Cities
		case "countries":
			projection = query.Countries
		default:
			return fmt.Errorf("--by must be airports, cities or countries, got %q", reachBy)
		}

		e, err := loadEngine()
		if err != nil {
			return err
		}
		if e.FindAirport(args[0]) == nil {
			return fmt.Errorf("no airport with code %q", args[0])
		}

		if cmd.Flags().Changed("stops") {
			if reachStops < 0 {
				return fmt.Errorf("--stops must be non-negative, got %d", reachStops)
			}
			fmt.Printf("%d %s reachable from %s within %d stop(s)\n",
				e.ReachableWithinStops(args[0], reachStops, projection), reachBy, args[0], reachStops)
			return nil
		}
		fmt.Printf("%d %s reachable from %s\n", e.Reachable(args[0], projection), reachBy, args[0])
		return nil
	},
}

func init() {
	reachableCmd.Flags().IntVar(&reachStops, "stops", 0, "maximum number of layovers (omit for unbounded)")
	reachableCmd.Flags().StringVar(&reachBy, "by", "airports", "count airports, cities or countries")
	rootCmd.AddCommand(reachableCmd)
}
