package sync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/sync"
)

func testNetworkJobs() sync.NetworkJobs {
	return sync.NetworkJobs{
		Network:               domain.NetworkEthereum,
		CreatedContractsStart: 100,
		CreatedTokensStart:    200,
		BurnedTokensStart:     300,
		TransferTokensStart:   400,
		SaleContracts: map[string]uint64{
			"0xmarket0000000000000000000000000000000001": 500,
		},
	}
}

func newTestRunner(m *testEngineMocks, networks ...sync.NetworkJobs) *sync.Runner {
	return sync.NewRunner(
		sync.RunnerConfig{Interval: time.Second, Networks: networks},
		m.engine,
		m.store,
		m.clock,
	)
}

func TestEnsureJobCursors(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds every listener at its configured start block", func(t *testing.T) {
		m := setupTestEngine(t)
		defer tearDownTestEngine(m)

		jobs := testNetworkJobs()
		runner := newTestRunner(m, jobs)

		m.store.EXPECT().
			CreateJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedContractListener, "", uint64(100)).
			Return(nil)
		m.store.EXPECT().
			CreateJobCursor(ctx, domain.NetworkEthereum, domain.JobCreatedTokenListener, "", uint64(200)).
			Return(nil)
		m.store.EXPECT().
			CreateJobCursor(ctx, domain.NetworkEthereum, domain.JobBurnedTokenListener, "", uint64(300)).
			Return(nil)
		m.store.EXPECT().
			CreateJobCursor(ctx, domain.NetworkEthereum, domain.JobTransferTokenListener, "", uint64(400)).
			Return(nil)
		m.store.EXPECT().
			CreateJobCursor(ctx, domain.NetworkEthereum, domain.JobSaleListener,
				"0xmarket0000000000000000000000000000000001", uint64(500)).
			Return(nil)

		require.NoError(t, runner.EnsureJobCursors(ctx))
	})

	t.Run("missing start block aborts seeding", func(t *testing.T) {
		m := setupTestEngine(t)
		defer tearDownTestEngine(m)

		jobs := testNetworkJobs()
		jobs.CreatedTokensStart = 0
		runner := newTestRunner(m, jobs)

		m.store.EXPECT().
			CreateJobCursor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := runner.EnsureJobCursors(ctx)
		assert.ErrorIs(t, err, domain.ErrBlockNumberMissing)
	})

	t.Run("unknown network aborts seeding", func(t *testing.T) {
		m := setupTestEngine(t)
		defer tearDownTestEngine(m)

		jobs := testNetworkJobs()
		jobs.Network = domain.Network("solana")
		runner := newTestRunner(m, jobs)

		err := runner.EnsureJobCursors(ctx)
		assert.Error(t, err)
	})
}

func TestRunnerStart(t *testing.T) {
	t.Run("missing cursor is a configuration error and aborts the runner", func(t *testing.T) {
		m := setupTestEngine(t)
		defer tearDownTestEngine(m)

		runner := newTestRunner(m, testNetworkJobs())

		// The first job of the cycle hits the missing cursor
		m.store.EXPECT().
			GetJobCursor(gomock.Any(), domain.NetworkEthereum, domain.JobCreatedContractListener, "").
			Return(nil, domain.ErrJobNotFound)

		err := runner.Start(context.Background())
		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})

	t.Run("transient job errors retry instead of stopping the runner", func(t *testing.T) {
		m := setupTestEngine(t)
		defer tearDownTestEngine(m)

		runner := newTestRunner(m, testNetworkJobs())

		// Every job fails with an infrastructure error; the cycle completes
		// and the runner goes to sleep
		m.store.EXPECT().
			GetJobCursor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).
			AnyTimes()

		sleeping := make(chan struct{}, 10)
		m.clock.EXPECT().
			After(gomock.Any()).
			DoAndReturn(func(time.Duration) <-chan time.Time {
				sleeping <- struct{}{}
				return make(chan time.Time)
			}).
			AnyTimes()

		done := make(chan error, 1)
		go func() {
			done <- runner.Start(context.Background())
		}()

		select {
		case <-sleeping:
		case <-time.After(5 * time.Second):
			t.Fatal("runner never completed its first cycle")
		}

		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, runner.Stop(stopCtx))

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("runner did not stop")
		}
	})

	t.Run("context cancellation stops the runner cleanly", func(t *testing.T) {
		m := setupTestEngine(t)
		defer tearDownTestEngine(m)

		runner := newTestRunner(m, testNetworkJobs())

		m.store.EXPECT().
			GetJobCursor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).
			AnyTimes()

		sleeping := make(chan struct{}, 10)
		m.clock.EXPECT().
			After(gomock.Any()).
			DoAndReturn(func(time.Duration) <-chan time.Time {
				sleeping <- struct{}{}
				return make(chan time.Time)
			}).
			AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- runner.Start(ctx)
		}()

		select {
		case <-sleeping:
		case <-time.After(5 * time.Second):
			t.Fatal("runner never completed its first cycle")
		}
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("runner did not stop")
		}
	})
}
