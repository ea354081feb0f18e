package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/noah-isme/school-portal-api/pkg/kvstore"
)

// getJSON decodes the value at key into dest, reporting presence.
func getJSON(ctx context.Context, kv kvstore.Store, key string, dest interface{}) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// setJSON encodes value and stores it under key.
func setJSON(ctx context.Context, kv kvstore.Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(raw))
}
