// spheregen generates UV sphere meshes and reports their topology.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/uvsphere/internal/config"
	"github.com/Faultbox/uvsphere/internal/logger"
)

func main() {
	config.ParseFlags()

	command := "generate"
	if args := config.Args(); len(args) > 0 {
		command = args[0]
	}
	if command == "help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	var reports []report
	switch command {
	case "generate", "gen":
		reports, err = cmdGenerate(cfg)
	case "batch":
		reports, err = cmdBatch(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("generation failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}

	if err := writeReports(os.Stdout, cfg.Output.Format, reports); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`spheregen - UV sphere mesh generator

Usage:
  spheregen [flags] <command>

Commands:
  generate   Generate one sphere (default)
  batch      Generate every sphere listed under batch.spheres concurrently
  help       Show this message

Flags:
  --config <path>    Config file (default ./spheregen.yaml)
  --slices <n>       Longitude divisions (>= 3)
  --stacks <n>       Latitude divisions (>= 2)
  --textured         Generate texture coordinates
  --format <fmt>     Report format: text or yaml
  --workers <n>      Batch worker limit (0 = unlimited)
  --debug            Enable debug logging

Examples:
  spheregen --slices 32 --stacks 16
  spheregen --format yaml --textured generate
  spheregen --workers 2 batch`)
}

func cmdGenerate(cfg *config.Config) ([]report, error) {
	sc := cfg.Sphere
	logger.Info("generating sphere",
		zap.Int("slices", sc.Slices),
		zap.Int("stacks", sc.Stacks),
		zap.Bool("textured", sc.Textured))

	r, err := build(sc)
	if err != nil {
		return nil, err
	}
	logger.Info("sphere generated",
		zap.Int("positions", r.Positions),
		zap.Int("faces", r.Faces),
		zap.Duration("elapsed", r.Elapsed))
	return []report{r}, nil
}

// cmdBatch generates each configured sphere in its own goroutine. Generation
// shares no state, so the only coordination is collecting results by index.
func cmdBatch(cfg *config.Config) ([]report, error) {
	spheres := cfg.Batch.Spheres
	reports := make([]report, len(spheres))

	var g errgroup.Group
	if cfg.Batch.Workers > 0 {
		g.SetLimit(cfg.Batch.Workers)
	}

	logger.Info("starting batch", zap.Int("spheres", len(spheres)), zap.Int("workers", cfg.Batch.Workers))
	for i, sc := range spheres {
		g.Go(func() error {
			r, err := build(sc)
			if err != nil {
				return err
			}
			logger.Debug("batch sphere done",
				zap.Int("index", i),
				zap.Int("slices", sc.Slices),
				zap.Int("stacks", sc.Stacks),
				zap.Duration("elapsed", r.Elapsed))
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("batch complete", zap.Int("spheres", len(reports)))
	return reports, nil
}
