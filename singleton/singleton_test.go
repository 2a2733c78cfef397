package singleton_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/creational/singleton"
	"github.com/stretchr/testify/require"
)

func TestInstance_SameIdentity(t *testing.T) {
	s1 := singleton.Instance()
	s2 := singleton.Instance()

	require.NotNil(t, s1)
	require.Same(t, s1, s2)
	require.Equal(t, s1.ID(), s2.ID())

	_, err := uuid.Parse(s1.ID())
	require.NoError(t, err, "id is a UUID")
}

// TestInstance_Concurrent ensures concurrent accesses all observe one instance.
// Other tests may have created it already; TestInstance_FirstAccessRace
// covers the uninitialized case.
func TestInstance_Concurrent(t *testing.T) {
	const readers = 64
	got := make([]*singleton.Singleton, readers)

	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(i int) {
			defer wg.Done()
			got[i] = singleton.Instance()
		}(i)
	}
	wg.Wait()

	for i := range got {
		require.Same(t, got[0], got[i])
	}
	require.Same(t, singleton.Instance(), got[0])
}

func TestClientCode(t *testing.T) {
	line := singleton.ClientCode()
	require.Equal(t, "Both instances have the same id: "+singleton.Instance().ID(), line)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, singleton.Demo(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, lines[0], lines[1], "every run sees the same instance")
}
