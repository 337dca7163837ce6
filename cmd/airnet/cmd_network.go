package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var essentialCmd = &cobra.Command{
	Use:   "essential",
	Short: "List airports whose removal would fragment the network",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine()
		if err != nil {
			return err
		}
		set := e.EssentialAirports()
		codes := make([]string, 0, len(set))
		for code := range set {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		fmt.Printf("%d essential airport(s)\n", len(codes))
		for _, code := range codes {
			printAirport(e.FindAirport(code))
		}
		return nil
	},
}

var diameterCmd = &cobra.Command{
	Use:   "diameter",
	Short: "Network diameter in hops, with the longest shortest paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine()
		if err != nil {
			return err
		}
		diameter, paths := e.MaxTrip()
		fmt.Printf("Diameter: %d hop(s), %d path(s)\n", diameter, len(paths))
		for _, path := range paths {
			fmt.Printf("  %s\n", strings.Join(path, " > "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(essentialCmd)
	rootCmd.AddCommand(diameterCmd)
}
