package reconcile

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/madmikeross/graphengine/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOut_RunsEveryTask(t *testing.T) {
	var ran int32
	err := fanOut(context.Background(), []int64{1, 2, 3, 4, 5}, 0, func(ctx context.Context, id int64) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, ran)
}

func TestFanOut_FirstErrorWins(t *testing.T) {
	sentinel := errors.New("boom")
	err := fanOut(context.Background(), []int64{1, 2, 3}, 0, func(ctx context.Context, id int64) error {
		if id == 2 {
			return sentinel
		}
		return nil
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestFanOut_PanicBecomesProcessError(t *testing.T) {
	err := fanOut(context.Background(), []int64{1}, 0, func(ctx context.Context, id int64) error {
		panic("unexpected")
	})
	require.Error(t, err)
	var processErr *errs.ProcessError
	assert.ErrorAs(t, err, &processErr)
}

func TestFanOut_RespectsConcurrencyLimit(t *testing.T) {
	var inFlight, maxInFlight int32
	ids := make([]int64, 20)
	for i := range ids {
		ids[i] = int64(i)
	}

	err := fanOut(context.Background(), ids, 3, func(ctx context.Context, id int64) error {
		current := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			observed := atomic.LoadInt32(&maxInFlight)
			if current <= observed || atomic.CompareAndSwapInt32(&maxInFlight, observed, current) {
				break
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, maxInFlight, int32(3))
}
