package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("server.addr", ":9090"))
	require.NoError(t, store.Set("server.addr", ":9091"))

	val, ok := store.Get("server.addr")
	assert.True(t, ok)
	assert.Equal(t, ":9091", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "text")
	_ = store.Set("i", 7)
	_ = store.Set("i64", int64(8))
	_ = store.Set("f", 9.9)
	_ = store.Set("b", true)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("s"), "text"},
		{"string wrong type", store.GetString("i"), ""},
		{"string missing", store.GetString("missing"), ""},
		{"int", store.GetInt("i"), 7},
		{"int from int64", store.GetInt("i64"), 8},
		{"int from float64", store.GetInt("f"), 9},
		{"int wrong type", store.GetInt("s"), 0},
		{"bool", store.GetBool("b"), true},
		{"bool wrong type", store.GetBool("s"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_Delete(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("log.format", "json")

	require.NoError(t, store.Delete("log.format"))
	require.NoError(t, store.Delete("log.format"))

	_, ok := store.Get("log.format")
	assert.False(t, ok)
}

func TestConfigStore_All_ReturnsCopy(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("mcp.port", 7000)

	all := store.All()
	assert.Equal(t, map[string]any{"mcp.port": 7000}, all)

	all["mcp.port"] = 1
	assert.Equal(t, 7000, store.GetInt("mcp.port"))
}

func TestConfigStore_SaveLoad_NoOp(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("k", "v")

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "v", store.GetString("k"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := "key" + string(rune('a'+n))
			_ = store.Set(key, n)
			_ = store.GetInt(key)
			_ = store.All()
			_ = store.Delete(key)
		}(i)
	}
	wg.Wait()

	assert.Empty(t, store.All())
}
