// Command traitgen generates a collection of layered artworks from a
// directory of trait images.
//
// Usage:
//
//	traitgen [flags]
//
// Every sub-directory of --layers is a layer and every image inside it an
// element; "Gold#1.png" is five times rarer than "Silver#5.png". Images
// and metadata are written to --out as images/<n>.png, json/<n>.json and
// json/_metadata.json.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/term"

	"github.com/gogpu/traitgen"
	"github.com/gogpu/traitgen/internal/project"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	config      string
	layers      string
	out         string
	editions    int
	width       int
	height      int
	name        string
	description string
	seed        uint64
	workers     int
	background  string
	logLevel    string
	noProgress  bool
	preview     bool
}

func run(args []string) error {
	var f flags
	flagSet := pflag.NewFlagSet("traitgen", pflag.ContinueOnError)
	flagSet.StringVarP(&f.config, "config", "c", "", "project file (.yaml, .json, .jsonc or .hcl)")
	flagSet.StringVarP(&f.layers, "layers", "l", "layers", "layers directory")
	flagSet.StringVarP(&f.out, "out", "o", "build", "output directory")
	flagSet.IntVarP(&f.editions, "editions", "n", 0, "number of editions (overrides the project file)")
	flagSet.IntVar(&f.width, "width", 0, "image width in pixels")
	flagSet.IntVar(&f.height, "height", 0, "image height in pixels")
	flagSet.StringVar(&f.name, "name", "", "collection name prefix")
	flagSet.StringVar(&f.description, "description", "", "collection description")
	flagSet.Uint64Var(&f.seed, "seed", 0, "random seed for reproducible collections")
	flagSet.IntVarP(&f.workers, "workers", "j", 0, "editions rendered in parallel")
	flagSet.StringVar(&f.background, "background", "", `background: "off", "random" or a color such as "#1e1e1e"`)
	flagSet.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flagSet.BoolVar(&f.noProgress, "no-progress", false, "disable the progress bar")
	flagSet.BoolVar(&f.preview, "preview", false, "render a single preview.png without generating the collection")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	logger, err := newLogger(f.logLevel)
	if err != nil {
		return err
	}
	traitgen.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, layers, opts, err := setup(flagSet, &f)
	if err != nil {
		return err
	}

	showProgress := !f.noProgress && !f.preview && term.IsTerminal(int(os.Stdout.Fd()))
	var bar *progressLine
	if showProgress {
		bar = newProgressLine(os.Stdout)
		opts = append(opts, traitgen.WithProgress(bar.Update))
	}

	g, err := traitgen.New(cfg, layers, opts...)
	if err != nil {
		return err
	}

	if f.preview {
		return writePreview(ctx, g, f.out)
	}

	out, err := newSink(f.out)
	if err != nil {
		return err
	}
	summary, runErr := g.Run(ctx, out.Write)
	if bar != nil {
		bar.Done()
	}
	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("collection written",
		"dir", f.out, "state", summary.State, "editions", summary.Produced,
		"retries", summary.Retries, "elapsed", summary.Elapsed)
	return nil
}

// setup merges defaults, the project file and command-line flags.
func setup(flagSet *pflag.FlagSet, f *flags) (traitgen.Config, []*traitgen.Layer, []traitgen.Option, error) {
	cfg := traitgen.DefaultConfig()
	file := &project.File{}
	if f.config != "" {
		var err error
		if file, err = project.Load(f.config); err != nil {
			return cfg, nil, nil, err
		}
		cfg = file.Config(cfg)
	}

	dir := f.layers
	if !flagSet.Changed("layers") && file.LayersDir != "" {
		dir = file.LayersDir
	}
	scanned, err := traitgen.LoadLayers(dir)
	if err != nil {
		return cfg, nil, nil, err
	}
	layers, err := file.ApplyLayers(scanned)
	if err != nil {
		return cfg, nil, nil, err
	}

	if flagSet.Changed("editions") {
		cfg.EditionSize = f.editions
	}
	if flagSet.Changed("width") {
		cfg.Width = f.width
	}
	if flagSet.Changed("height") {
		cfg.Height = f.height
	}
	if flagSet.Changed("name") {
		cfg.NamePrefix = f.name
	}
	if flagSet.Changed("description") {
		cfg.Description = f.description
	}
	if flagSet.Changed("background") {
		cfg.Background = parseBackground(f.background, cfg.Background)
	}

	opts := file.Options()
	if flagSet.Changed("seed") {
		opts = append(opts, traitgen.WithSeed(f.seed))
	}
	if flagSet.Changed("workers") {
		opts = append(opts, traitgen.WithWorkers(f.workers))
	}
	return cfg, layers, opts, nil
}

// parseBackground maps the --background flag onto bg.
func parseBackground(v string, bg traitgen.Background) traitgen.Background {
	switch v {
	case "off", "none", "false":
		bg.Generate = false
	case "random", "":
		bg.Generate = true
		bg.Static = false
	default:
		bg.Generate = true
		bg.Static = true
		bg.Color = v
	}
	return bg
}

// newLogger writes text records to a terminal and JSON records otherwise.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	options := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler), nil
}
