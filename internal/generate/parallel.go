package generate

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// ParallelConfig holds configuration for parallel batch generation.
type ParallelConfig struct {
	MaxWorkers       int                      // Number of parallel workers (0 = runtime.NumCPU())
	ProgressCallback ProgressCallback         // Optional progress reporting
	ErrorHandler     func(int, string, error) // Optional per-value error handler
}

// DefaultParallelConfig returns sensible defaults for parallel generation.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		MaxWorkers:       runtime.NumCPU(),
		ProgressCallback: nil,
		ErrorHandler:     nil,
	}
}

// valueJob represents a single value to generate.
type valueJob struct {
	index int
	value string
}

// valueResult represents the outcome of generating one value.
type valueResult struct {
	index  int
	result *Result
	err    error
}

// GenerateBatch generates barcodes for multiple values using a worker
// pool. Results are returned in input order; failed entries are nil and
// the first error is returned alongside the partial results.
func (g *Generator) GenerateBatch(values []string) ([]*Result, error) {
	return g.GenerateBatchContext(context.Background(), values)
}

// GenerateBatchContext generates barcodes in parallel with context
// cancellation support.
func (g *Generator) GenerateBatchContext(ctx context.Context, values []string) ([]*Result, error) {
	if len(values) == 0 {
		return nil, errors.New("no values provided")
	}

	config := g.cfg.Parallel
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = runtime.NumCPU()
	}

	// Each generation is independent and cheap, so a single value or a
	// single worker degenerates to the sequential path.
	if len(values) == 1 || config.MaxWorkers == 1 {
		return g.generateSequential(ctx, values, config)
	}

	if config.ProgressCallback != nil {
		config.ProgressCallback.OnStart(len(values))
		defer config.ProgressCallback.OnComplete()
	}

	jobs := make(chan valueJob, len(values))
	results := make(chan valueResult, len(values))

	var wg sync.WaitGroup
	for range config.MaxWorkers {
		wg.Add(1)
		go g.worker(ctx, jobs, results, &wg)
	}

	go func() {
		defer close(jobs)
		for i, value := range values {
			select {
			case jobs <- valueJob{index: i, value: value}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	resultMap := make(map[int]*Result)
	errorMap := make(map[int]error)
	processed := 0

	for result := range results {
		resultMap[result.index] = result.result
		errorMap[result.index] = result.err
		processed++

		if config.ProgressCallback != nil {
			config.ProgressCallback.OnProgress(processed, len(values))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ordered := make([]*Result, len(values))
	var firstError error

	for i := range values {
		if err := errorMap[i]; err != nil {
			if firstError == nil {
				firstError = fmt.Errorf("value %d: %w", i, err)
			}
			if config.ErrorHandler != nil {
				config.ErrorHandler(i, values[i], err)
			}
		} else {
			ordered[i] = resultMap[i]
		}
	}

	return ordered, firstError
}

// generateSequential handles the single-worker path without channel
// overhead.
func (g *Generator) generateSequential(ctx context.Context, values []string, config ParallelConfig) ([]*Result, error) {
	if config.ProgressCallback != nil {
		config.ProgressCallback.OnStart(len(values))
		defer config.ProgressCallback.OnComplete()
	}

	ordered := make([]*Result, len(values))
	var firstError error

	for i, value := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := g.Generate(value)
		if err != nil {
			if firstError == nil {
				firstError = fmt.Errorf("value %d: %w", i, err)
			}
			if config.ErrorHandler != nil {
				config.ErrorHandler(i, value, err)
			}
		} else {
			ordered[i] = result
		}

		if config.ProgressCallback != nil {
			config.ProgressCallback.OnProgress(i+1, len(values))
		}
	}

	return ordered, firstError
}

// worker generates barcodes from the jobs channel.
func (g *Generator) worker(
	ctx context.Context,
	jobs <-chan valueJob,
	results chan<- valueResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for {
		select {
		case job, ok := <-jobs:
			if !ok {
				return
			}

			result, err := g.Generate(job.value)

			select {
			case results <- valueResult{index: job.index, result: result, err: err}:
			case <-ctx.Done():
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// BatchStats holds statistics about a batch generation run.
type BatchStats struct {
	TotalValues      int           `json:"total_values"`
	GeneratedValues  int           `json:"generated_values"`
	FailedValues     int           `json:"failed_values"`
	WorkerCount      int           `json:"worker_count"`
	TotalDuration    time.Duration `json:"total_duration_ns"`
	AveragePerValue  time.Duration `json:"average_per_value_ns"`
	ThroughputPerSec float64       `json:"throughput_per_sec"`
}

// CalculateBatchStats summarizes a batch run from its ordered results.
func CalculateBatchStats(values []string, results []*Result, duration time.Duration, workerCount int) BatchStats {
	generated := 0
	failed := 0

	for _, result := range results {
		if result != nil {
			generated++
		} else {
			failed++
		}
	}

	var avgPerValue time.Duration
	var throughput float64

	if generated > 0 {
		avgPerValue = duration / time.Duration(generated)
		throughput = float64(generated) / duration.Seconds()
	}

	return BatchStats{
		TotalValues:      len(values),
		GeneratedValues:  generated,
		FailedValues:     failed,
		WorkerCount:      workerCount,
		TotalDuration:    duration,
		AveragePerValue:  avgPerValue,
		ThroughputPerSec: throughput,
	}
}
