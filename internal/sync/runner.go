package sync

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/palettehq/marketplace-sync/internal/adapter"
	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/logger"
	"github.com/palettehq/marketplace-sync/internal/store"
)

// NetworkJobs describes the sync jobs configured for one network: where each
// listener starts and which marketplace sale contracts get their own cursor
type NetworkJobs struct {
	Network               domain.Network
	CreatedContractsStart uint64
	CreatedTokensStart    uint64
	BurnedTokensStart     uint64
	TransferTokensStart   uint64
	// SaleContracts maps each sale contract address to its deploy block
	SaleContracts map[string]uint64
}

// RunnerConfig holds the runner's schedule and per-network jobs
type RunnerConfig struct {
	// Interval is the pause between sync cycles
	Interval time.Duration
	Networks []NetworkJobs
}

// Runner drives the reconciliation engine: it seeds job cursors once, then
// loops every interval running each configured job one cursor step forward
type Runner struct {
	config    RunnerConfig
	engine    *Engine
	cursors   store.CursorStore
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRunner creates a runner for the given jobs
func NewRunner(config RunnerConfig, engine *Engine, cursors store.CursorStore, clock adapter.Clock) *Runner {
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}

	return &Runner{
		config:    config,
		engine:    engine,
		cursors:   cursors,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// EnsureJobCursors seeds a cursor for every configured job at its start
// block. Cursors that already exist keep their position, so restarts never
// rewind a job. A zero start block means the deploy block was left out of the
// configuration and aborts startup.
func (r *Runner) EnsureJobCursors(ctx context.Context) error {
	for _, network := range r.config.Networks {
		if !domain.IsValidNetwork(network.Network) {
			return fmt.Errorf("unknown network %q", network.Network)
		}

		starts := map[domain.JobType]uint64{
			domain.JobCreatedContractListener: network.CreatedContractsStart,
			domain.JobCreatedTokenListener:    network.CreatedTokensStart,
			domain.JobBurnedTokenListener:     network.BurnedTokensStart,
			domain.JobTransferTokenListener:   network.TransferTokensStart,
		}
		for jobType, start := range starts {
			if start == 0 {
				return fmt.Errorf("%w: network=%s job=%s", domain.ErrBlockNumberMissing, network.Network, jobType)
			}
			if err := r.cursors.CreateJobCursor(ctx, network.Network, jobType, "", start); err != nil {
				return err
			}
		}

		for contract, start := range network.SaleContracts {
			if start == 0 {
				return fmt.Errorf("%w: network=%s job=%s contract=%s",
					domain.ErrBlockNumberMissing, network.Network, domain.JobSaleListener, contract)
			}
			if err := r.cursors.CreateJobCursor(ctx, network.Network, domain.JobSaleListener, contract, start); err != nil {
				return err
			}
		}
	}

	return nil
}

// Start begins the runner's main loop. It blocks until the context is
// canceled, Stop is called, or a job hits a configuration error.
func (r *Runner) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("runner already running")
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh)
	}()

	logger.InfoCtx(ctx, "starting sync runner",
		zap.Duration("interval", r.config.Interval),
		zap.Int("networks", len(r.config.Networks)))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "sync runner stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-r.stopChan:
			logger.InfoCtx(ctx, "sync runner stop requested")
			return nil
		default:
			if err := r.runCycle(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

			if !r.sleep(ctx, r.config.Interval) {
				return nil
			}
		}
	}
}

// Stop gracefully stops the runner with timeout support
func (r *Runner) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "stopping sync runner")
	close(r.stopChan)

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "sync runner stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "sync runner stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runCycle advances every configured job one cursor step. Transient job
// errors are logged and the job retries the same block next cycle; a missing
// cursor or start block is a configuration error and aborts the runner.
func (r *Runner) runCycle(ctx context.Context) error {
	for _, network := range r.config.Networks {
		jobs := []struct {
			jobType  domain.JobType
			contract string
			run      func(context.Context) error
		}{
			{domain.JobCreatedContractListener, "", func(ctx context.Context) error {
				return r.engine.SyncCreatedContracts(ctx, network.Network)
			}},
			{domain.JobCreatedTokenListener, "", func(ctx context.Context) error {
				return r.engine.SyncCreatedTokens(ctx, network.Network)
			}},
			{domain.JobBurnedTokenListener, "", func(ctx context.Context) error {
				return r.engine.SyncBurnedTokens(ctx, network.Network)
			}},
			{domain.JobTransferTokenListener, "", func(ctx context.Context) error {
				return r.engine.SyncTransferTokens(ctx, network.Network)
			}},
		}
		for contract := range network.SaleContracts {
			contract := contract
			jobs = append(jobs, struct {
				jobType  domain.JobType
				contract string
				run      func(context.Context) error
			}{domain.JobSaleListener, contract, func(ctx context.Context) error {
				return r.engine.SyncSales(ctx, network.Network, contract)
			}})
		}

		for _, job := range jobs {
			if err := job.run(ctx); err != nil {
				if errors.Is(err, domain.ErrJobNotFound) || errors.Is(err, domain.ErrBlockNumberMissing) {
					return fmt.Errorf("job %s/%s misconfigured: %w", network.Network, job.jobType, err)
				}
				if errors.Is(err, context.Canceled) {
					return err
				}
				logger.ErrorCtx(ctx, fmt.Errorf("sync job failed, will retry: %w", err),
					zap.String("network", string(network.Network)),
					zap.String("job_type", string(job.jobType)),
					zap.String("contract", job.contract))
			}
		}
	}

	return nil
}

// sleep pauses between cycles but can be interrupted by context cancellation
// or a stop request
func (r *Runner) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-r.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-r.stopChan:
		return false
	}
}
