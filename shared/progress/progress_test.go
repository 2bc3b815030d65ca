package progress

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	data, ok := m.items[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestLoadWithoutSaveIsEmpty(t *testing.T) {
	b := New(newMemStore(), quietLogger())
	require.NoError(t, b.Load())

	p := b.Progress()
	assert.Zero(t, p.Coins)
	assert.Empty(t, p.Cleared)
	assert.Empty(t, p.BestTimes)
}

func TestRecordClearKeepsBestTime(t *testing.T) {
	store := newMemStore()
	b := New(store, quietLogger())

	best, err := b.RecordClear("level1", 3, 40)
	require.NoError(t, err)
	assert.True(t, best)

	best, err = b.RecordClear("level1", 2, 55)
	require.NoError(t, err)
	assert.False(t, best)

	best, err = b.RecordClear("level1", 0, 31.5)
	require.NoError(t, err)
	assert.True(t, best)

	p := b.Progress()
	assert.Equal(t, 5, p.Coins)
	assert.Equal(t, 3, p.Cleared["level1"])
	got, ok := b.BestTime("level1")
	require.True(t, ok)
	assert.Equal(t, 31.5, got)
}

func TestProgressSurvivesReload(t *testing.T) {
	store := newMemStore()
	b := New(store, quietLogger())
	_, err := b.RecordClear("level2", 7, 80)
	require.NoError(t, err)
	require.NoError(t, b.RecordDeath("level1", 2))

	reloaded := New(store, quietLogger())
	require.NoError(t, reloaded.Load())
	p := reloaded.Progress()
	assert.Equal(t, 9, p.Coins)
	assert.Equal(t, 1, p.Deaths)
	assert.Equal(t, 1, p.Cleared["level2"])
	assert.Equal(t, 80.0, p.BestTimes["level2"])
}

func TestCorruptSaveIsReported(t *testing.T) {
	store := newMemStore()
	store.items[itemKey] = []byte("{not json")

	b := New(store, quietLogger())
	assert.Error(t, b.Load())
}

func TestSaveErrorsAreReturned(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")

	b := New(store, quietLogger())
	_, err := b.RecordClear("level1", 1, 10)
	assert.ErrorIs(t, err, store.saveErr)
}

func TestProgressReturnsCopy(t *testing.T) {
	b := New(newMemStore(), quietLogger())
	_, err := b.RecordClear("level1", 1, 10)
	require.NoError(t, err)

	p := b.Progress()
	p.Cleared["level1"] = 99
	assert.Equal(t, 1, b.Progress().Cleared["level1"])
}

func TestReset(t *testing.T) {
	store := newMemStore()
	b := New(store, quietLogger())
	_, err := b.RecordClear("level1", 4, 10)
	require.NoError(t, err)

	require.NoError(t, b.Reset())
	reloaded := New(store, quietLogger())
	require.NoError(t, reloaded.Load())
	assert.Zero(t, reloaded.Progress().Coins)
}
