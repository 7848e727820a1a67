package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Adapter is the persistence boundary between typed records and the flat
// key-value map. Collections are stored as JSON arrays under their name;
// reserved keys hold a single JSON record or a raw string.
//
// Reads fail soft: a missing key or a value that no longer decodes yields the
// empty collection instead of an error, so a corrupt entry degrades to
// "start from scratch" rather than taking the console down.
type Adapter struct {
	kv       KV
	notifier *Notifier
	logger   *zap.Logger
}

// NewAdapter wires the adapter over a backend. notifier and logger may be nil.
func NewAdapter(kv KV, notifier *Notifier, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{kv: kv, notifier: notifier, logger: logger}
}

// Collection decodes the JSON array stored under name into dest, which must
// be a pointer to a slice. Absent or malformed data leaves dest as the empty
// collection.
func (a *Adapter) Collection(ctx context.Context, name string, dest interface{}) error {
	raw, ok, err := a.kv.GetItem(ctx, name)
	if err != nil {
		return fmt.Errorf("load collection %s: %w", name, err)
	}
	if !ok || raw == "" {
		raw = "[]"
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		a.logger.Warn("collection decode failed, substituting empty",
			zap.String("collection", name),
			zap.Error(err))
		return json.Unmarshal([]byte("[]"), dest)
	}
	return nil
}

// SetCollection encodes value and fully overwrites the collection, then
// announces the change.
func (a *Adapter) SetCollection(ctx context.Context, name string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	if err := a.kv.SetItem(ctx, name, string(payload)); err != nil {
		return fmt.Errorf("store collection %s: %w", name, err)
	}
	a.publish(name)
	return nil
}

// Record decodes the single JSON record stored under key into dest. A missing
// or malformed entry reports absent.
func (a *Adapter) Record(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok, err := a.kv.GetItem(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load record %s: %w", key, err)
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		a.logger.Warn("record decode failed, treating as absent",
			zap.String("key", key),
			zap.Error(err))
		return false, nil
	}
	return true, nil
}

// SetRecord encodes value and stores it under the reserved key.
func (a *Adapter) SetRecord(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	if err := a.kv.SetItem(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("store record %s: %w", key, err)
	}
	a.publish(key)
	return nil
}

// RemoveRecord clears a reserved key.
func (a *Adapter) RemoveRecord(ctx context.Context, key string) error {
	if err := a.kv.RemoveItem(ctx, key); err != nil {
		return fmt.Errorf("remove record %s: %w", key, err)
	}
	a.publish(key)
	return nil
}

// String reads a raw string preference such as theme or language.
func (a *Adapter) String(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := a.kv.GetItem(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("load value %s: %w", key, err)
	}
	return raw, ok, nil
}

// SetString stores a raw string preference.
func (a *Adapter) SetString(ctx context.Context, key, value string) error {
	if err := a.kv.SetItem(ctx, key, value); err != nil {
		return fmt.Errorf("store value %s: %w", key, err)
	}
	a.publish(key)
	return nil
}

func (a *Adapter) publish(key string) {
	if a.notifier != nil {
		a.notifier.Publish(key)
	}
}
