package queries

import (
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func kernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func kernelNullID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := kernelID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// decodeKeys reads a JSON array of storage keys. NULL reads as no keys.
func decodeKeys(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	keys := make([]string, 0)
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("decode photo keys: %w", err)
	}
	return keys, nil
}
