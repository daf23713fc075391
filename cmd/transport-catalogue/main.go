package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"

	transportcatalogue "github.com/theoremus-urban-solutions/transport-catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/gtfs"
	"github.com/theoremus-urban-solutions/transport-catalogue/input"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
	"github.com/theoremus-urban-solutions/transport-catalogue/legacy"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	mode := flag.String("mode", "json", "json|text|gtfs")
	inputPath := flag.String("input", "-", "request file, - for stdin")
	format := flag.String("format", "json", "json|xml")
	gtfsPath := flag.String("gtfs", "", "GTFS zip path or URL (overrides config)")
	from := flag.String("from", "", "journey origin stop (gtfs mode)")
	to := flag.String("to", "", "journey destination stop (gtfs mode)")
	bus := flag.String("bus", "", "bus to report stats for (gtfs mode)")
	flag.Parse()

	cfg, err := config.LoadAppConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		// defaults plus environment overrides
		cfg, err = config.Parse(nil)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := internal.InitLogging(os.Stderr, cfg.LogLevel).With("run_id", uuid.NewString())

	if *gtfsPath != "" {
		cfg.GTFS.Path = *gtfsPath
	}

	switch *mode {
	case "json":
		err = runJSON(cfg, *inputPath, *format, logger)
	case "text":
		err = runText(*inputPath, logger)
	case "gtfs":
		err = runGTFS(cfg, *format, *bus, *from, *to, logger)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		logger.Error("run failed", "mode", *mode, "error", err)
		os.Exit(1)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func defaultSettings(cfg *config.AppConfig) router.Settings {
	return router.Settings{
		BusWaitTime: cfg.Routing.BusWaitTime,
		BusVelocity: cfg.Routing.BusVelocity,
	}
}

func runJSON(cfg *config.AppConfig, inputPath, format string, logger *slog.Logger) error {
	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	return input.ProcessRequests(in, os.Stdout, input.Options{
		Defaults:  defaultSettings(cfg),
		CacheSize: cfg.Router.CacheSize,
		Format:    format,
		Logger:    logger,
	})
}

func runText(inputPath string, logger *slog.Logger) error {
	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	return legacy.Process(in, os.Stdout, transportcatalogue.NewRequestHandler(logger))
}

func runGTFS(cfg *config.AppConfig, format, bus, from, to string, logger *slog.Logger) error {
	if cfg.GTFS.Path == "" && cfg.GTFS.CachePath == "" {
		return errors.New("gtfs mode needs gtfs.path or gtfs.cache_path")
	}
	index, err := loadIndex(cfg.GTFS, logger)
	if err != nil {
		return err
	}

	h := transportcatalogue.NewRequestHandler(logger)
	gtfs.ImportIndex(index, h, gtfs.Options{DistanceUnit: cfg.GTFS.DistanceUnit, Logger: logger})
	if err := h.BuildRouter(defaultSettings(cfg), router.WithCacheSize(cfg.Router.CacheSize)); err != nil {
		return err
	}

	var responses []formatter.Response
	if bus != "" {
		if info, ok := h.BusStat(bus); ok {
			responses = append(responses, formatter.NewBusResponse(1, info))
		} else {
			responses = append(responses, formatter.NewErrorResponse(1, formatter.MsgNotFound))
		}
	}
	if from != "" || to != "" {
		route, err := h.PlanRoute(from, to)
		switch {
		case err == nil:
			responses = append(responses, formatter.NewRouteResponse(2, route))
		case errors.Is(err, router.ErrStopNotFound), errors.Is(err, router.ErrUnreachable):
			logger.Info("no journey", "from", from, "to", to, "reason", err)
			responses = append(responses, formatter.NewErrorResponse(2, formatter.MsgNotFound))
		default:
			return err
		}
	}
	return input.WriteResponses(os.Stdout, responses, format)
}

// loadIndex prefers the gob cache and refreshes it from the feed on a miss.
func loadIndex(cfg config.GTFSConfig, logger *slog.Logger) (*gtfs.Index, error) {
	if cfg.CachePath != "" {
		index, err := gtfs.LoadIndexFile(cfg.CachePath)
		if err == nil {
			logger.Debug("gtfs index loaded from cache", "path", cfg.CachePath)
			return index, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("ignoring unreadable gtfs cache", "path", cfg.CachePath, "error", err)
		}
		if cfg.Path == "" {
			return nil, err
		}
	}

	data, err := newFeedFetcher().fetch(cfg.Path)
	if err != nil {
		return nil, err
	}
	index, err := gtfs.LoadIndex(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	if cfg.CachePath != "" {
		if err := gtfs.SaveIndexFile(index, cfg.CachePath); err != nil {
			logger.Warn("failed to write gtfs cache", "path", cfg.CachePath, "error", err)
		}
	}
	return index, nil
}
