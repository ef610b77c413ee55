package naming

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

// TestDefault_DerivesSuffixedNames derives stats, janitor and manager names from the cache name.
func TestDefault_DerivesSuffixedNames(t *testing.T) {
	d := Default()

	require.Equal(t, "users_stats", d.StatsName("users").String())
	require.Equal(t, "users_janitor", d.JanitorName("users").String())
	require.Equal(t, "users_manager", d.ManagerName("users").String())
}

// TestDefault_IsDeterministic returns equal identifiers for equal cache names.
func TestDefault_IsDeterministic(t *testing.T) {
	d := Default()

	require.Equal(t, d.JanitorName("users"), d.JanitorName("users"))
	require.NotEqual(t, d.JanitorName("users"), d.JanitorName("orders"))
}

// TestNew_KeyIsXXH3OfName keys identifiers by the xxh3 digest of their name.
func TestNew_KeyIsXXH3OfName(t *testing.T) {
	id := New("users_stats")

	require.Equal(t, xxh3.HashString("users_stats"), id.Key())
	require.False(t, id.IsZero())
	require.True(t, Identifier{}.IsZero())
}

// TestRegistry_RegisterLookupUnregister covers the full registry lifecycle.
func TestRegistry_RegisterLookupUnregister(t *testing.T) {
	r := NewRegistry()
	id := Default().ManagerName("users")

	require.NoError(t, r.Register(id, "handle"))
	require.ErrorIs(t, r.Register(id, "other"), ErrAlreadyRegistered)

	ref, ok := r.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "handle", ref)
	require.Equal(t, 1, r.Len())

	require.True(t, r.Unregister(id))
	require.False(t, r.Unregister(id))

	_, ok = r.Lookup(id)
	require.False(t, ok)
	require.Equal(t, 0, r.Len())
}

// TestRegistry_RejectsZeroIdentifier refuses to register an unnamed identifier.
func TestRegistry_RejectsZeroIdentifier(t *testing.T) {
	r := NewRegistry()
	require.ErrorIs(t, r.Register(Identifier{}, 1), ErrEmptyIdentifier)
}

// TestRegistry_CollidingKeysStayDistinct keeps entries apart when two names share a key.
func TestRegistry_CollidingKeysStayDistinct(t *testing.T) {
	r := NewRegistry()
	a := Identifier{name: "a", key: 42}
	b := Identifier{name: "b", key: 42}

	require.NoError(t, r.Register(a, 1))
	require.NoError(t, r.Register(b, 2))

	ref, ok := r.Lookup(b)
	require.True(t, ok)
	require.Equal(t, 2, ref)

	require.True(t, r.Unregister(a))
	ref, ok = r.Lookup(b)
	require.True(t, ok)
	require.Equal(t, 2, ref)
}

// TestRegistry_Concurrent verifies thread-safety.
func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	d := Default()

	const numGoroutines = 16

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			require.NoError(t, r.Register(d.StatsName(name), i))
			_, ok := r.Lookup(d.StatsName(name))
			require.True(t, ok)
		}()
	}
	wg.Wait()

	require.Equal(t, numGoroutines, r.Len())
}
