// Package main provides the ECGNN command line tool.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/LoftinTitus/ECGNN/internal/config"
	"github.com/LoftinTitus/ECGNN/internal/runner"
	"github.com/LoftinTitus/ECGNN/internal/storage"
	"github.com/dustin/go-humanize"
)

const version = "v0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "train":
		return runTrain(ctx, args[1:], stdout)
	case "eval":
		return runEval(ctx, args[1:], stdout)
	case "runs":
		return runRuns(ctx, args[1:], stdout)
	case "version":
		fmt.Fprintf(stdout, "ecgnn %s\n", version)
		return nil
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

// configFlags registers the flags shared by train and eval.
type configFlags struct {
	path      *string
	overrides config.Overrides
}

func addConfigFlags(fs *flag.FlagSet) *configFlags {
	cf := &configFlags{path: fs.String("config", "", "path to YAML config (defaults are used when empty)")}
	o := &cf.overrides
	fs.StringVar(&o.DataDir, "data-dir", "", "directory of CSV recordings")
	fs.IntVar(&o.SegmentLength, "segment-length", 0, "samples per segment")
	fs.IntVar(&o.HiddenUnits, "hidden", 0, "hidden units")
	fs.IntVar(&o.Epochs, "epochs", 0, "training epochs")
	fs.Float64Var(&o.LearningRate, "lr", 0, "learning rate")
	fs.Float64Var(&o.TrainFraction, "train-fraction", 0, "fraction of segments used for training")
	fs.IntVar(&o.EvalEvery, "eval-every", 0, "measure train accuracy every N epochs")
	fs.StringVar(&o.Init, "init", "", "initializer: constant|xavier")
	fs.StringVar(&o.Labels, "labels", "", "labelling: heuristic|periodic")
	fs.Int64Var(&o.Seed, "seed", 0, "PRNG seed for xavier init")
	fs.IntVar(&o.Workers, "workers", 0, "worker goroutines (0 = all cores)")
	fs.StringVar(&o.CheckpointPath, "checkpoint", "", "write the trained model to this .ecgn file")
	fs.StringVar(&o.Store, "store", "", "run history backend: memory|sqlite")
	fs.StringVar(&o.StorePath, "db-path", "", "sqlite database path")
	fs.BoolVar(&o.NoSynthetic, "no-synthetic", false, "fail instead of falling back to synthetic data")
	return cf
}

func (cf *configFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if *cf.path != "" {
		loaded, err := config.Load(*cf.path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyOverrides(cf.overrides)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func openStore(ctx context.Context, kind, path string) (storage.Store, error) {
	store, err := storage.NewStore(kind, path)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, fmt.Errorf("init store: %w", err)
	}
	return store, nil
}

func runTrain(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	cf := addConfigFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := cf.load()
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg.Store, cfg.StorePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	start := time.Now()
	result, err := runner.Run(ctx, cfg, store)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("run %s interrupted after %d epochs", result.RunID, result.Epochs)
		}
		return fmt.Errorf("training failed: %w", err)
	}

	fmt.Fprintf(stdout, "run:           %s\n", result.RunID)
	fmt.Fprintf(stdout, "epochs:        %d\n", result.Epochs)
	fmt.Fprintf(stdout, "train loss:    %.4f\n", result.FinalLoss)
	fmt.Fprintf(stdout, "test loss:     %.4f\n", result.TestLoss)
	fmt.Fprintf(stdout, "test accuracy: %.2f%%\n", result.TestAccuracy*100)
	fmt.Fprintf(stdout, "elapsed:       %s\n", time.Since(start).Round(time.Millisecond))
	if result.Checkpoint != "" {
		fmt.Fprintf(stdout, "checkpoint:    %s\n", result.Checkpoint)
	}
	return nil
}

func runEval(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	cf := addConfigFlags(fs)
	model := fs.String("model", "", "checkpoint to evaluate (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *model == "" {
		return errors.New("eval: -model is required")
	}
	cfg, err := cf.load()
	if err != nil {
		return err
	}

	eval, err := runner.Evaluate(ctx, cfg, *model)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	fmt.Fprintf(stdout, "run=%s epoch=%d examples=%d loss=%.4f accuracy=%.2f%%\n",
		eval.RunID, eval.Epoch, eval.Examples, eval.Loss, eval.Accuracy*100)
	return nil
}

func runRuns(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config; its store settings are used by default")
	storeKind := fs.String("store", "", "store backend: memory|sqlite (defaults to the config's store)")
	dbPath := fs.String("db-path", "", "sqlite database path (defaults to the config's store_path)")
	runID := fs.String("run", "", "show the epochs of one run")
	limit := fs.Int("limit", 20, "max runs to list")
	jsonOut := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyOverrides(config.Overrides{Store: *storeKind, StorePath: *dbPath})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	store, err := openStore(ctx, cfg.Store, cfg.StorePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if *runID != "" {
		return printEpochs(ctx, store, *runID, *jsonOut, stdout)
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(stdout, "no runs found")
		return nil
	}
	// Newest first.
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
	if len(runs) > *limit {
		runs = runs[:*limit]
	}
	if *jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTATUS\tSTARTED\tEPOCHS\tHIDDEN\tTRAIN\tTEST LOSS\tTEST ACC")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%.4f\t%.2f%%\n",
			r.ID, r.Status, humanize.Time(r.StartedAt), r.Epochs, r.Hidden,
			humanize.Comma(int64(r.TrainSize)), r.TestLoss, r.TestAccuracy*100)
	}
	return tw.Flush()
}

func printEpochs(ctx context.Context, store storage.Store, runID string, jsonOut bool, stdout io.Writer) error {
	epochs, ok, err := store.GetEpochs(ctx, runID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no epochs recorded for run %s", runID)
	}
	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(epochs)
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EPOCH\tLOSS\tTRAIN ACC\tDURATION")
	for _, e := range epochs {
		acc := "-"
		if e.TrainAccuracy != nil {
			acc = fmt.Sprintf("%.2f%%", *e.TrainAccuracy*100)
		}
		fmt.Fprintf(tw, "%d\t%.4f\t%s\t%s\n", e.Epoch, e.Loss, acc, e.Duration.Round(time.Microsecond))
	}
	return tw.Flush()
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: ecgnn <train|eval|runs|version> [flags]\n"+
		"run history persists only with -store sqlite, which needs a build with -tags sqlite", msg)
}
