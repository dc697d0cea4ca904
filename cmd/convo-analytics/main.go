package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/convoscope/pkg/convoscope"
	"github.com/cognicore/convoscope/pkg/convoscope/config"
	"github.com/cognicore/convoscope/pkg/convoscope/internalerr"
	"github.com/cognicore/convoscope/pkg/convoscope/query"
)

type report struct {
	SessionID          string            `json:"session_id"`
	TotalConversations int               `json:"total_conversations"`
	TotalInteractions  int               `json:"total_interactions"`
	AvgTurns           float64           `json:"avg_turns"`
	MedianTurns        float64           `json:"median_turns"`
	LongConversations  int               `json:"long_conversations"`
	Escalations        int               `json:"escalations"`
	Endings            int               `json:"endings"`
	LengthDistribution []bucketJSON      `json:"length_distribution"`
	Categories         []categoryJSON    `json:"categories"`
	Subcategories      []subcategoryJSON `json:"subcategories"`
	TopQuestions       []questionJSON    `json:"top_questions"`
	FilteredRows       int               `json:"filtered_rows"`
}

type bucketJSON struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type categoryJSON struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type subcategoryJSON struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Count       int    `json:"count"`
}

type questionJSON struct {
	Question string `json:"question"`
	Count    int    `json:"count"`
}

func main() {
	var (
		input         = flag.String("input", "", "Path to transcript CSV file (required)")
		taxonomyCfg   = flag.String("taxonomy", "", "Optional: taxonomy YAML file")
		filtersCfg    = flag.String("filters", "", "Optional: noise/greeting word list YAML file")
		top           = flag.Int("top", query.DefaultTopQuestions, "Number of top questions to report")
		keepGreetings = flag.Bool("keep-greetings", false, "Keep greetings and general chatter in the top-question ranking")
		category      = flag.String("category", query.All, "Category filter")
		subcategory   = flag.String("subcategory", query.All, "Subcategory filter")
		minTurns      = flag.Int("min-turns", 1, "Minimum turns per conversation for the filtered view")
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
	if session.Empty() {
		log.Fatalf("analyze: %v", internalerr.ErrNoData)
	}

	m := session.Metrics()
	rep := report{
		SessionID:          session.ID,
		TotalConversations: m.TotalConversations,
		TotalInteractions:  m.TotalInteractions,
		AvgTurns:           m.AvgTurns,
		MedianTurns:        m.MedianTurns,
		LongConversations:  m.LongConversations,
		Escalations:        m.Escalations,
		Endings:            m.Endings,
	}

	for _, b := range m.LengthDistribution {
		rep.LengthDistribution = append(rep.LengthDistribution, bucketJSON{Label: b.Label, Count: b.Count})
	}
	for _, c := range session.CategoryCounts() {
		rep.Categories = append(rep.Categories, categoryJSON{Category: c.Category, Count: c.Count})
	}
	for _, sc := range session.SubcategoryCounts() {
		rep.Subcategories = append(rep.Subcategories, subcategoryJSON{
			Category:    sc.Category,
			Subcategory: sc.Subcategory,
			Count:       sc.Count,
		})
	}
	for _, q := range session.TopQuestions(*top, !*keepGreetings) {
		rep.TopQuestions = append(rep.TopQuestions, questionJSON{Question: q.Question, Count: q.Count})
	}
	rep.FilteredRows = len(session.Filter(query.FilterOptions{
		Category:    *category,
		Subcategory: *subcategory,
		MinTurns:    *minTurns,
	}))

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
