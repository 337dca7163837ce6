// Command airnet answers airport-network queries over a CSV dataset:
// traffic statistics, airport search, reachability, essential airports,
// network diameter and best-flight routing.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/ingest"
	"github.com/katalvlaran/airnet/query"
)

// Config points at the CSV dataset.
type Config struct {
	Airports string `yaml:"airports"`
	Airlines string `yaml:"airlines"`
	Flights  string `yaml:"flights"`
}

var (
	config     Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "airnet",
	Short:         "Query a network of airports and flight routes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("airnet: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "airnet.yaml", "dataset configuration file")
	rootCmd.PersistentFlags().StringVar(&config.Airports, "airports", "", "airports CSV (overrides config)")
	rootCmd.PersistentFlags().StringVar(&config.Airlines, "airlines", "", "airlines CSV (overrides config)")
	rootCmd.PersistentFlags().StringVar(&config.Flights, "flights", "", "flights CSV (overrides config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		fileCfg := Config{}
		raw, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				return fmt.Errorf("parsing %s: %w", configPath, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// No config file; flags must carry the paths.
		default:
			return fmt.Errorf("reading %s: %w", configPath, err)
		}
		if config.Airports == "" {
			config.Airports = fileCfg.Airports
		}
		if config.Airlines == "" {
			config.Airlines = fileCfg.Airlines
		}
		if config.Flights == "" {
			config.Flights = fileCfg.Flights
		}
		if config.Airports == "" || config.Airlines == "" || config.Flights == "" {
			return fmt.Errorf("dataset incomplete: need airports, airlines and flights CSV paths (flags or %s)", configPath)
		}
		return nil
	}
}

// loadEngine builds the graph and catalog from the configured dataset.
func loadEngine() (*query.Engine, error) {
	g, airlines, err := ingest.LoadDataset(config.Airports, config.Airlines, config.Flights)
	if err != nil {
		return nil, err
	}
	return query.NewEngine(g, airlines), nil
}

// printAirport renders one airport line.
func printAirport(v *core.Vertex) {
	a := v.Airport
	fmt.Printf("%s  %s (%s, %s)  [%.4f, %.4f]\n", a.Code, a.Name, a.City, a.Country, a.Location.Lat, a.Location.Lon)
}
