package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
)

const defaultBatchSize = 500

// Pipeline defines the interface for import pipelines
type Pipeline interface {
	Run(ctx context.Context, articles []domain.Article) (Stats, error)
}

type Stats struct {
	Saved    int
	Batches  int
	Replaced bool
	Duration time.Duration
}

type PipelineConfig struct {
	Name      string
	BatchSize int
	Replace   bool
}

// ImportPipeline writes normalized catalog articles to a storer in ordered
// batches.
type ImportPipeline struct {
	storer storage.Storer
	config *PipelineConfig
}

type PipelineOption func(pipeline *ImportPipeline)

// WithBulk sets the batch size. Non-positive sizes keep the default.
func WithBulk(size int) PipelineOption {
	return func(pipeline *ImportPipeline) {
		if size > 0 {
			pipeline.config.BatchSize = size
		}
	}
}

// WithReplace clears the storer before the first batch.
func WithReplace(replace bool) PipelineOption {
	return func(pipeline *ImportPipeline) {
		pipeline.config.Replace = replace
	}
}

func WithName(name string) PipelineOption {
	return func(pipeline *ImportPipeline) {
		pipeline.config.Name = name
	}
}

func NewPipeline(storer storage.Storer, opts ...PipelineOption) *ImportPipeline {
	p := &ImportPipeline{
		storer: storer,
		config: &PipelineConfig{
			Name:      "catalog-import",
			BatchSize: defaultBatchSize,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *ImportPipeline) Run(ctx context.Context, articles []domain.Article) (Stats, error) {
	start := time.Now()
	stats := Stats{Replaced: p.config.Replace}

	slog.Info("Starting pipeline run",
		"pipeline", p.config.Name,
		"articles", len(articles),
		"batch_size", p.config.BatchSize,
		"replace", p.config.Replace,
	)

	if p.config.Replace {
		if err := p.storer.Clear(ctx); err != nil {
			return stats, fmt.Errorf("failed to clear storage: %w", err)
		}
	}

	for from := 0; from < len(articles); from += p.config.BatchSize {
		if err := ctx.Err(); err != nil {
			slog.Info("Pipeline context cancelled, stopping import",
				"pipeline", p.config.Name,
				"saved", stats.Saved,
			)
			return stats, err
		}

		to := min(from+p.config.BatchSize, len(articles))
		batch := articles[from:to]
		if err := p.storer.SaveBulk(ctx, batch); err != nil {
			slog.Error("Error saving batch",
				"error", err,
				"pipeline", p.config.Name,
				"batch", stats.Batches,
				"count", len(batch),
			)
			return stats, fmt.Errorf("failed to save batch %d: %w", stats.Batches, err)
		}

		stats.Saved += len(batch)
		stats.Batches++
		slog.Debug("Batch saved", "pipeline", p.config.Name, "batch", stats.Batches, "count", len(batch))
	}

	stats.Duration = time.Since(start)
	slog.Info("Pipeline run completed",
		"pipeline", p.config.Name,
		"saved", stats.Saved,
		"batches", stats.Batches,
		"duration", stats.Duration,
	)
	return stats, nil
}
