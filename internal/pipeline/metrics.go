package pipeline

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeMigrated = "migrated"
	outcomeFailed   = "failed"
	outcomeFatal    = "fatal"
)

// Registry collects the pipeline metrics. Runs are batch-shaped, so the
// counters are gathered into the final run summary rather than scraped.
var Registry = prometheus.NewRegistry()

var recordsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Name: "edumigrate_records_total",
		Help: "Records handled per job, labelled by outcome.",
	},
	[]string{"job", "outcome"},
)

// RecordCounts gathers the record counters, keyed "job/outcome".
func RecordCounts() (map[string]float64, error) {
	families, err := Registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather pipeline metrics: %w", err)
	}
	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "edumigrate_records_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			var job, outcome string
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "job":
					job = label.GetValue()
				case "outcome":
					outcome = label.GetValue()
				}
			}
			counts[job+"/"+outcome] = metric.GetCounter().GetValue()
		}
	}
	return counts, nil
}
