// Package treepressfx provides an fx module for a configured archiver.
package treepressfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/treepress/treepress"
	"github.com/treepress/treepress/internal/stats"
	"github.com/treepress/treepress/internal/stats/logger"
)

// Config holds configuration for the archiver.
type Config struct {
	// Algorithm selects the compression algorithm.
	// Default is gzip.
	Algorithm treepress.Algorithm

	// Suffix is the marker suffix for compressed files.
	// Default is treepress.DefaultSuffix.
	Suffix string
}

// Module provides a configured *treepress.Archiver.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("treepress",
	fx.Provide(
		newStatsCollector,
		newArchiver,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("treepress.stats"))
}

// Params holds dependencies for creating the archiver.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided archiver.
type Result struct {
	fx.Out

	Archiver *treepress.Archiver
}

func newArchiver(p Params) (Result, error) {
	algorithm := p.Config.Algorithm
	if algorithm == "" {
		algorithm = treepress.Gzip
	}
	suffix := p.Config.Suffix
	if suffix == "" {
		suffix = treepress.DefaultSuffix
	}

	arch, err := treepress.New(
		treepress.WithAlgorithm(algorithm),
		treepress.WithSuffix(suffix),
		treepress.WithStats(p.Collector),
		treepress.WithLogger(p.Logger.Named("treepress")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return arch.Close()
		},
	})

	return Result{Archiver: arch}, nil
}
