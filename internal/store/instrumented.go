package store

import (
	"context"
	"time"
)

// Observer receives read and write timings from an instrumented backend.
type Observer interface {
	ObserveStoreRead(duration time.Duration)
	ObserveStoreWrite(duration time.Duration)
}

// InstrumentedKV decorates a backend with operation metrics. Removals count
// as writes.
type InstrumentedKV struct {
	kv  KV
	obs Observer
}

// NewInstrumentedKV wraps kv so every operation reports to obs.
func NewInstrumentedKV(kv KV, obs Observer) *InstrumentedKV {
	return &InstrumentedKV{kv: kv, obs: obs}
}

func (i *InstrumentedKV) GetItem(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	value, ok, err := i.kv.GetItem(ctx, key)
	i.obs.ObserveStoreRead(time.Since(start))
	return value, ok, err
}

func (i *InstrumentedKV) SetItem(ctx context.Context, key, value string) error {
	start := time.Now()
	err := i.kv.SetItem(ctx, key, value)
	i.obs.ObserveStoreWrite(time.Since(start))
	return err
}

func (i *InstrumentedKV) RemoveItem(ctx context.Context, key string) error {
	start := time.Now()
	err := i.kv.RemoveItem(ctx, key)
	i.obs.ObserveStoreWrite(time.Since(start))
	return err
}
