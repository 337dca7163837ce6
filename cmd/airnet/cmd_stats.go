package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/airnet/core"
)

var (
	statsTop        int
	statsPerCity    bool
	statsPerAirline bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Global network statistics and traffic ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine()
		if err != nil {
			return err
		}

		fmt.Printf("Airports: %d\n", e.NumAirports())
		fmt.Printf("Flights:  %d\n", e.NumFlights())
		fmt.Printf("Routes:   %d\n", e.NumRoutes())

		if statsTop > 0 {
			fmt.Printf("\nTop %d airports by traffic:\n", statsTop)
			for _, entry := range e.TopTraffic(statsTop) {
				fmt.Printf("  %-4s %-40s %d flights\n", entry.Airport.Code, entry.Airport.Name, entry.Flights)
			}
		}

		if statsPerCity {
			perCity := e.FlightsPerCity()
			keys := make([]core.CityKey, 0, len(perCity))
			for k := range perCity {
				keys = append(keys, k)
			}
			sort.Slice(keys, func(i, j int) bool {
				if keys[i].Country != keys[j].Country {
					return keys[i].Country < keys[j].Country
				}
				return keys[i].City < keys[j].City
			})
			fmt.Println("\nOutbound flights per city:")
			for _, k := range keys {
				fmt.Printf("  %s, %s: %d\n", k.City, k.Country, perCity[k])
			}
		}

		if statsPerAirline {
			perAirline := e.FlightsPerAirline()
			airlines := make([]core.Airline, 0, len(perAirline))
			for a := range perAirline {
				airlines = append(airlines, a)
			}
			sort.Slice(airlines, func(i, j int) bool { return airlines[i].Code < airlines[j].Code })
			fmt.Println("\nRoutes per airline:")
			for _, a := range airlines {
				fmt.Printf("  %-4s %-40s %d\n", a.Code, a.Name, perAirline[a])
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 0, "also list the top K airports by traffic")
	statsCmd.Flags().BoolVar(&statsPerCity, "per-city", false, "also list outbound flights per city")
	statsCmd.Flags().BoolVar(&statsPerAirline, "per-airline", false, "also list routes per airline")
	rootCmd.AddCommand(statsCmd)
}
