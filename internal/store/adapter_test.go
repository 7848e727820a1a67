package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestAdapterCollectionRoundTrip(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV(), nil, nil)
	ctx := context.Background()

	in := []testRecord{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, adapter.SetCollection(ctx, "records", in))

	var out []testRecord
	require.NoError(t, adapter.Collection(ctx, "records", &out))
	assert.Equal(t, in, out)
}

func TestAdapterCollectionMissingYieldsEmpty(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV(), nil, nil)

	var out []testRecord
	require.NoError(t, adapter.Collection(context.Background(), "never-written", &out))
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestAdapterCollectionMalformedYieldsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.SetItem(context.Background(), "records", "{not json"))

	adapter := NewAdapter(kv, nil, nil)
	out := []testRecord{{ID: "stale"}}
	require.NoError(t, adapter.Collection(context.Background(), "records", &out))
	assert.Empty(t, out)
}

func TestAdapterRecordAbsentAndMalformed(t *testing.T) {
	kv := NewMemoryKV()
	adapter := NewAdapter(kv, nil, nil)
	ctx := context.Background()

	var rec testRecord
	found, err := adapter.Record(ctx, "currentUser", &rec)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.SetItem(ctx, "currentUser", "not-a-record"))
	found, err = adapter.Record(ctx, "currentUser", &rec)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, adapter.SetRecord(ctx, "currentUser", testRecord{ID: "9", Name: "admin"}))
	found, err = adapter.Record(ctx, "currentUser", &rec)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "9", rec.ID)

	require.NoError(t, adapter.RemoveRecord(ctx, "currentUser"))
	found, err = adapter.Record(ctx, "currentUser", &rec)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdapterPublishesChanges(t *testing.T) {
	notifier := NewNotifier()
	adapter := NewAdapter(NewMemoryKV(), notifier, nil)

	ch, cancel := notifier.Subscribe(4)
	defer cancel()

	require.NoError(t, adapter.SetCollection(context.Background(), "grades", []testRecord{}))

	change := <-ch
	assert.Equal(t, "grades", change.Key)
}

func TestAdapterStringPreferences(t *testing.T) {
	adapter := NewAdapter(NewMemoryKV(), nil, nil)
	ctx := context.Background()

	_, found, err := adapter.String(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, adapter.SetString(ctx, "theme", "dark"))
	value, found, err := adapter.String(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}
