package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codeprep-ai/codeprep/ent"
	"github.com/codeprep-ai/codeprep/ent/blob"
)

// blobRepo implements KV using the ent client.
type blobRepo struct {
	client *ent.Client
}

func (r *blobRepo) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	b, err := r.client.Blob.Query().
		Where(blob.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query blob %q: %w", key, err)
	}
	return json.RawMessage(b.Data), true, nil
}

func (r *blobRepo) Set(ctx context.Context, key string, value json.RawMessage) error {
	// Single-process app, so read-then-write is safe without an upsert.
	existing, err := r.client.Blob.Query().
		Where(blob.KeyEQ(key)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetData(value).Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.Blob.Create().SetKey(key).SetData(value).Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("set blob %q: %w", key, err)
	}
	return nil
}

func (r *blobRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Blob.Delete().
		Where(blob.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}
