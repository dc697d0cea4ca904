package main

import (
	"flag"
	"log"
	"os"

	"github.com/cognicore/convoscope/pkg/convoscope"
	"github.com/cognicore/convoscope/pkg/convoscope/config"
	"github.com/cognicore/convoscope/pkg/convoscope/query"
)

func main() {
	var (
		input       = flag.String("input", "", "Path to transcript CSV file (required)")
		output      = flag.String("output", "", "Output CSV path (default: stdout)")
		taxonomyCfg = flag.String("taxonomy", "", "Optional: taxonomy YAML file")
		filtersCfg  = flag.String("filters", "", "Optional: noise/greeting word list YAML file")
		category    = flag.String("category", query.All, "Category filter")
		subcategory = flag.String("subcategory", query.All, "Subcategory filter")
		minTurns    = flag.Int("min-turns", 1, "Minimum turns per conversation")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	loader := config.Loader{
		TaxonomyPath: *taxonomyCfg,
		FiltersPath:  *filtersCfg,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	payload, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	engine := convoscope.New(convoscope.Options{
		Taxonomy: components.Taxonomy,
		Filters:  components.Filters,
	})
	session, err := engine.Load(payload)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	records := session.Filter(query.FilterOptions{
		Category:    *category,
		Subcategory: *subcategory,
		MinTurns:    *minTurns,
	})
	filtered := session.Enriched.WithRecords(records)
	if filtered.Len() == 0 {
		log.Print("no rows matched the filters; writing header only")
	}

	w := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		w = f
	}

	if err := filtered.WriteCSV(w); err != nil {
		log.Fatalf("write csv: %v", err)
	}
}
