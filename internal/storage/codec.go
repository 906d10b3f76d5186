package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Versions stamped on every persisted record.
const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

// ErrVersionMismatch is returned when a stored record was written by an
// incompatible schema or codec version.
var ErrVersionMismatch = errors.New("record version mismatch")

// CurrentVersion is the VersionedRecord new payloads are written with.
func CurrentVersion() VersionedRecord {
	return VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion}
}

// EncodeRun serializes a run to JSON.
func EncodeRun(r Run) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRun parses a run and rejects payloads with a foreign version.
func DecodeRun(data []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return Run{}, err
	}
	return run, nil
}

// EncodeEpoch serializes an epoch record to JSON.
func EncodeEpoch(e EpochRecord) ([]byte, error) {
	return json.Marshal(e)
}

// DecodeEpoch parses an epoch record and rejects payloads with a foreign version.
func DecodeEpoch(data []byte) (EpochRecord, error) {
	var record EpochRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return EpochRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return EpochRecord{}, err
	}
	return record, nil
}

func checkVersion(v VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return fmt.Errorf("%w: schema=%d codec=%d", ErrVersionMismatch, v.SchemaVersion, v.CodecVersion)
	}
	return nil
}
