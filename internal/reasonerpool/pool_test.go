package reasonerpool

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/nal-go/pkg/nal"
)

func TestPoolRunsIndependentReasonersConcurrently(t *testing.T) {
	pool := New(2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		i := i
		err := pool.Submit(ctx, Job{
			Name:   fmt.Sprintf("job-%d", i),
			Config: nal.DefaultConfig(),
			Run: func(m *nal.Memory) JobResult {
				for c := 0; c < 3; c++ {
					m.Cycle()
				}
				return JobResult{Cycles: 3}
			},
		})
		require.NoError(t, err)
	}

	results := pool.Shutdown()
	require.Len(t, results, 5)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.Equal(t, 3, r.Cycles)
	}
}

func TestPoolRecoversFromJobPanic(t *testing.T) {
	pool := New(1)
	ctx := context.Background()

	err := pool.Submit(ctx, Job{
		Name:   "panics",
		Config: nal.DefaultConfig(),
		Run: func(m *nal.Memory) JobResult {
			panic("boom")
		},
	})
	require.NoError(t, err)

	results := pool.Shutdown()
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestSubmitAfterShutdownFails(t *testing.T) {
	pool := New(1)
	pool.Shutdown()

	err := pool.Submit(context.Background(), Job{Name: "late", Config: nal.DefaultConfig(), Run: func(m *nal.Memory) JobResult { return JobResult{} }})
	assert.ErrorIs(t, err, ErrPoolShutdown)
}
