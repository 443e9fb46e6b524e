// Command edumigrate runs the record-level migration from the legacy
// education platform database into the reporting database. Each entity is a
// separate job; the -entities flag selects which ones run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"edumigrate/internal/archive"
	"edumigrate/internal/config"
	"edumigrate/internal/enrich"
	"edumigrate/internal/jobs"
	"edumigrate/internal/pipeline"
	"edumigrate/internal/report"
	"edumigrate/internal/source"
)

var exitFunc = os.Exit

func main() {
	entities := flag.String("entities", "all", "comma-separated entities to migrate (users,courses,assessments,attendance,cohorts) or all")
	envFile := flag.String("env-file", "", "optional .env file to load before reading configuration")
	flag.Parse()

	if err := run(context.Background(), *entities, *envFile); err != nil {
		logrus.WithError(err).Error("migration aborted")
		exitFunc(1)
	}
}

func run(ctx context.Context, entities, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	} else {
		// Best effort; a missing .env simply means the environment is
		// already populated.
		_ = godotenv.Load()
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	src, err := source.Open(ctx, cfg.Source)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := report.Open(ctx, cfg.Report)
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	if err := dst.EnsureSchema(ctx); err != nil {
		return err
	}

	arch, err := archive.Open(ctx, cfg.Archive)
	if err != nil {
		return err
	}

	deps := jobs.Deps{
		Source:  src,
		Report:  dst,
		API:     enrich.NewClient(cfg.API),
		Archive: arch,
		Fields:  cfg.Fields,
	}
	runners, order := jobs.Registry(deps)

	selected, err := selectEntities(entities, runners, order)
	if err != nil {
		return err
	}
	for _, name := range selected {
		stats, err := runners[name](ctx)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"job":       stats.Job,
			"extracted": stats.Extracted,
			"migrated":  stats.Migrated,
			"failed":    stats.Failed,
		}).Info("job finished")
	}

	counts, err := pipeline.RecordCounts()
	if err != nil {
		return err
	}
	fields := logrus.Fields{}
	for key, value := range counts {
		fields[key] = value
	}
	logrus.WithFields(fields).Info("record counters")
	return nil
}

// selectEntities resolves the -entities flag against the job registry,
// keeping the registry's run order.
func selectEntities(entities string, runners map[string]jobs.Runner, order []string) ([]string, error) {
	if entities == "" || entities == "all" {
		return order, nil
	}
	wanted := map[string]bool{}
	for _, name := range strings.Split(entities, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := runners[name]; !ok {
			return nil, fmt.Errorf("unknown entity %s", name)
		}
		wanted[name] = true
	}
	if len(wanted) == 0 {
		return nil, fmt.Errorf("no entities selected")
	}
	var selected []string
	for _, name := range order {
		if wanted[name] {
			selected = append(selected, name)
		}
	}
	return selected, nil
}
