package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCodec(t *testing.T) {
	run := sampleRun("r1", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	payload, err := EncodeRun(run)
	require.NoError(t, err)

	decoded, err := DecodeRun(payload)
	require.NoError(t, err)
	assert.Equal(t, run.ID, decoded.ID)
	assert.Equal(t, run.TestAccuracy, decoded.TestAccuracy)
	assert.True(t, run.FinishedAt.Equal(decoded.FinishedAt))
}

func TestDecodeRejectsOtherVersions(t *testing.T) {
	run := sampleRun("r1", time.Now())
	run.SchemaVersion = CurrentSchemaVersion + 1
	payload, err := EncodeRun(run)
	require.NoError(t, err)
	_, err = DecodeRun(payload)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	payload, err = EncodeEpoch(EpochRecord{RunID: "r1", Epoch: 1})
	require.NoError(t, err)
	_, err = DecodeEpoch(payload)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	_, err = DecodeEpoch([]byte("{"))
	assert.Error(t, err)
}
