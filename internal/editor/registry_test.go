package editor

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOpenGetClose(t *testing.T) {
	r := NewRegistry()
	id := r.Open([]string{"hello"})

	s, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, []string{"hello"}, s.Lines())
	assert.Equal(t, 1, r.Len())

	r.Close(id)
	_, ok = r.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryOpenEmpty(t *testing.T) {
	r := NewRegistry()
	id := r.Open(nil)

	s, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, []string{""}, s.Lines())
}

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()
	id := r.Open([]string{"hello world"})

	s, ok := r.Dispatch(id, DeleteWordForward{})
	require.True(t, ok)
	assert.Equal(t, []string{"world"}, s.Lines())

	// The stored state advanced too.
	s, _ = r.Get(id)
	assert.Equal(t, []string{"world"}, s.Lines())
}

func TestRegistryDispatchUnknownID(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Dispatch(uuid.New(), MoveRight{})
	assert.False(t, ok)
}

func TestRegistryBuffersAreIndependent(t *testing.T) {
	r := NewRegistry()
	a := r.Open([]string{"aaa"})
	b := r.Open([]string{"bbb"})

	_, ok := r.Dispatch(a, DeleteChar{Count: 3})
	require.True(t, ok)

	sb, _ := r.Get(b)
	assert.Equal(t, []string{"bbb"}, sb.Lines())
}

func TestRegistryConcurrentDispatch(t *testing.T) {
	r := NewRegistry()
	id := r.Open([]string{"0123456789"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Dispatch(id, DeleteChar{})
		}()
	}
	wg.Wait()

	s, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, []string{"89"}, s.Lines())
}
