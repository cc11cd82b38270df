package lock

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockName(t *testing.T) string {
	name := fmt.Sprintf("obenseuer-installer-test-%d", os.Getpid())
	t.Cleanup(func() { _ = os.Remove(Path(name)) })
	return name
}

func TestAcquireIsExclusive(t *testing.T) {
	name := lockName(t)

	first, err := Acquire(name)
	require.NoError(t, err)

	_, err = Acquire(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())

	again, err := Acquire(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}
