package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thoughtforge-ai/thoughtforge-go/internal/config"
	"github.com/thoughtforge-ai/thoughtforge-go/internal/logger"
	"github.com/thoughtforge-ai/thoughtforge-go/internal/store"
	"github.com/thoughtforge-ai/thoughtforge-go/models"
	"github.com/thoughtforge-ai/thoughtforge-go/params"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	validateFile := flag.String("validate", "", "validate a .params specification file and print the resolved values")
	listRuns := flag.Bool("runs", false, "list recorded simulation runs")
	runStatus := flag.String("status", "", "with -runs: keep only runs with this status")
	runLimit := flag.Uint64("limit", 0, "with -runs: cap the number of listed runs")
	showLogs := flag.String("logs", "", "print the server log of the given run id")
	exportName := flag.String("export-snapshot", "", "export the named stored snapshot to a file")
	outFile := flag.String("o", "", "with -export-snapshot: output file path")
	importFile := flag.String("import-snapshot", "", "import a snapshot file into the local store")
	snapshotName := flag.String("name", "", "with -import-snapshot: name to store the snapshot under")
	// registers -a, -request-timeout, -store-path, -env-file and parses
	overrides := config.ParseFlags()

	printBuildInfo()

	log := logger.NewLogger("thoughtforge-cli")

	switch {
	case *validateFile != "":
		validateParams(log, *validateFile)
	case *listRuns:
		printRuns(log, overrides, *runStatus, *runLimit)
	case *showLogs != "":
		printRunLogs(log, overrides, *showLogs)
	case *exportName != "":
		exportSnapshot(log, overrides, *exportName, *outFile)
	case *importFile != "":
		importSnapshot(log, overrides, *importFile, *snapshotName)
	default:
		flag.Usage()
	}
}

func validateParams(log *logger.Logger, path string) {
	spec, err := params.Load(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("params file is invalid")
	}

	fmt.Printf("%s: valid (version %d)\n", path, spec.Version)
	fmt.Printf("  motors:  %d\n", len(spec.Motors))
	fmt.Printf("  sensors: %d\n", len(spec.Sensors))
	fmt.Printf("  internal_timescale:      %d\n", spec.InternalTimescale)
	fmt.Printf("  ticks_per_sensor_sample: %d\n", spec.TicksPerSensorSample)
	fmt.Printf("  center_block_size_extra: %d\n", spec.CenterBlockSizeExtra)
	fmt.Printf("  center_block_stride:     %d\n", spec.CenterBlockStride)
	fmt.Printf("  random_seed:             %d\n", spec.RandomSeed)
}

func printRuns(log *logger.Logger, overrides *config.StructuredConfig, status string, limit uint64) {
	runStore := openStore(log, overrides)
	defer runStore.Close()

	runs, err := runStore.ListRuns(context.Background(), store.RunFilter{Status: status, Limit: limit})
	if err != nil {
		log.Fatal().Err(err).Msg("error listing runs")
	}

	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return
	}

	for _, run := range runs {
		finished := "-"
		if run.FinishedAt != nil {
			finished = run.FinishedAt.Format(time.RFC3339)
		}
		fmt.Printf("%s  %-9s  steps=%-8d  started=%s  finished=%s  %s\n",
			run.ID, run.Status, run.Steps, run.StartedAt.Format(time.RFC3339), finished, run.ParamsFile)
	}
}

func printRunLogs(log *logger.Logger, overrides *config.StructuredConfig, runID string) {
	runStore := openStore(log, overrides)
	defer runStore.Close()

	messages, err := runStore.GetRunLogs(context.Background(), runID)
	if err != nil {
		log.Fatal().Err(err).Str("run_id", runID).Msg("error getting run logs")
	}

	for _, message := range messages {
		fmt.Println(message)
	}
}

func exportSnapshot(log *logger.Logger, overrides *config.StructuredConfig, name, outFile string) {
	if outFile == "" {
		log.Fatal().Msg("-export-snapshot requires -o <file>")
	}

	runStore := openStore(log, overrides)
	defer runStore.Close()

	record, err := runStore.GetSnapshot(context.Background(), name)
	if err != nil {
		log.Fatal().Err(err).Str("snapshot", name).Msg("error getting snapshot")
	}

	if err = models.SaveSnapshot(outFile, record.Snapshot); err != nil {
		log.Fatal().Err(err).Str("file", outFile).Msg("error writing snapshot file")
	}

	fmt.Printf("snapshot %q exported to %s\n", name, outFile)
}

func importSnapshot(log *logger.Logger, overrides *config.StructuredConfig, file, name string) {
	if name == "" {
		log.Fatal().Msg("-import-snapshot requires -name <name>")
	}

	snapshot, err := models.LoadSnapshot(file)
	if err != nil {
		log.Fatal().Err(err).Str("file", file).Msg("error reading snapshot file")
	}

	runStore := openStore(log, overrides)
	defer runStore.Close()

	record := models.SnapshotRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Snapshot:  snapshot,
		CreatedAt: time.Now().UTC(),
	}
	if err = runStore.SaveSnapshot(context.Background(), record); err != nil {
		log.Fatal().Err(err).Str("snapshot", name).Msg("error saving snapshot")
	}

	fmt.Printf("snapshot %s imported as %q\n", file, name)
}

func openStore(log *logger.Logger, overrides *config.StructuredConfig) store.RunStore {
	cfg, err := config.GetClientConfigWithFlags(overrides)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	runStore, err := store.NewRunStore(cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening run store (set THOUGHTFORGE_STORE_PATH or -store-path)")
	}

	return runStore
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
