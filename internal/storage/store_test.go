package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun(id string, started time.Time) Run {
	return Run{
		VersionedRecord: CurrentVersion(),
		ID:              id,
		Status:          StatusCompleted,
		StartedAt:       started,
		FinishedAt:      started.Add(3 * time.Second),
		Features:        500,
		Hidden:          64,
		Epochs:          50,
		LearningRate:    0.01,
		Init:            "constant",
		DataSource:      "synthetic",
		TrainSize:       16,
		TestSize:        4,
		FinalLoss:       0.61,
		TestLoss:        0.64,
		TestAccuracy:    0.75,
	}
}

// exerciseStore runs the behavior every Store implementation must share.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)

	_, ok, err := store.GetRun(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	later := sampleRun("b-run", base.Add(time.Minute))
	earlier := sampleRun("a-run", base)
	require.NoError(t, store.SaveRun(ctx, later))
	require.NoError(t, store.SaveRun(ctx, earlier))

	got, ok, err := store.GetRun(ctx, "a-run")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.75, got.TestAccuracy)
	assert.True(t, base.Equal(got.StartedAt))

	later.Status = StatusCanceled
	require.NoError(t, store.SaveRun(ctx, later))

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "a-run", runs[0].ID)
	assert.Equal(t, "b-run", runs[1].ID)
	assert.Equal(t, StatusCanceled, runs[1].Status)

	acc := 0.5
	for _, epoch := range []int{2, 1, 3} {
		record := EpochRecord{VersionedRecord: CurrentVersion(), RunID: "a-run", Epoch: epoch, Loss: 1 / float64(epoch), Duration: time.Millisecond}
		if epoch == 2 {
			record.TrainAccuracy = &acc
		}
		require.NoError(t, store.AppendEpoch(ctx, record))
	}
	require.NoError(t, store.AppendEpoch(ctx, EpochRecord{VersionedRecord: CurrentVersion(), RunID: "a-run", Epoch: 3, Loss: 0.25}))

	epochs, ok, err := store.GetEpochs(ctx, "a-run")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, epochs, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{epochs[0].Epoch, epochs[1].Epoch, epochs[2].Epoch})
	require.NotNil(t, epochs[1].TrainAccuracy)
	assert.Equal(t, 0.5, *epochs[1].TrainAccuracy)
	assert.Nil(t, epochs[0].TrainAccuracy)
	assert.Equal(t, 0.25, epochs[2].Loss)

	_, ok, err = store.GetEpochs(ctx, "b-run")
	require.NoError(t, err)
	assert.False(t, ok)
}
