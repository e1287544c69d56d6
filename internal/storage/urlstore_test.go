package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тест сохранения и получения из памяти
func TestURLStore_SaveAndGet(t *testing.T) {
	store, err := NewURLStore("")
	require.NoError(t, err)

	require.NoError(t, store.Save("AB12CD", "http://QWERTYUIOP"))

	got, ok := store.Get("AB12CD")
	assert.True(t, ok)
	assert.Equal(t, "http://QWERTYUIOP", got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
}

// Тест повторной загрузки из файла
func TestURLStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewURLStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("S1", "http://ONE"))
	require.NoError(t, store.Save("S2", "http://TWO"))
	require.NoError(t, store.Save("S1", "http://UNO"))

	reloaded, err := NewURLStore(path)
	require.NoError(t, err)

	got, ok := reloaded.Get("S1")
	assert.True(t, ok)
	assert.Equal(t, "http://UNO", got)
	assert.Equal(t, 2, reloaded.Len())
}

func TestURLStore_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	content := `{"short_url":"s123","original_url":"http://MAILRU0000"}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store, err := NewURLStore(path)
	require.NoError(t, err)

	got, ok := store.Get("s123")
	assert.True(t, ok)
	assert.Equal(t, "http://MAILRU0000", got)
}

func TestURLStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewURLStore(path)
	assert.Error(t, err)
}

func TestURLStore_Concurrent(t *testing.T) {
	store, err := NewURLStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				short := string(rune('A'+i)) + string(rune('A'+j))
				assert.NoError(t, store.Save(short, "http://X"))
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 100, store.Len())
}

func TestURLStore_FailedPersistKeepsMemoryUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "urls.json")
	store, err := NewURLStore(path)
	require.NoError(t, err)

	require.Error(t, store.Save("AB12CD", "http://QWERTYUIOP"))

	_, ok := store.Get("AB12CD")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}
