package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/fsmgen/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_Contention(t *testing.T) {
	l := memory.NewLocker()
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "p", time.Second)
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = l.Lock(short, "p", time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	other, err := l.Lock(ctx, "q", time.Second)
	require.NoError(t, err, "different keys do not contend")
	require.NoError(t, other(ctx))

	require.NoError(t, unlock(ctx))
	require.NoError(t, unlock(ctx), "double unlock is harmless")

	again, err := l.Lock(ctx, "p", time.Second)
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}
