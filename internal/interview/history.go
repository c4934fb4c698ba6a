package interview

import (
	"context"
	"encoding/json"

	"github.com/codeprep-ai/codeprep/internal/store"
)

// LoadSessions returns the persisted session records, most recent
// first. Missing key yields an empty slice.
func LoadSessions(ctx context.Context, kv store.KV) ([]SessionRecord, error) {
	raw, ok, err := kv.Get(ctx, store.KeySessions)
	if err != nil || !ok {
		return nil, err
	}
	var sessions []SessionRecord
	if err := json.Unmarshal(raw, &sessions); err != nil {
		// Corrupt blob reads as absent.
		return nil, nil
	}
	return sessions, nil
}

// AppendSession prepends a completed session to the persisted list.
func AppendSession(ctx context.Context, kv store.KV, rec SessionRecord) error {
	sessions, err := LoadSessions(ctx, kv)
	if err != nil {
		return err
	}

	updated := make([]SessionRecord, 0, len(sessions)+1)
	updated = append(updated, rec)
	updated = append(updated, sessions...)

	raw, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return kv.Set(ctx, store.KeySessions, raw)
}
