package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoResolvesWithValue(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (string, error) {
		return "preset", nil
	})

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "preset", v)
}

func TestGoResolvesWithError(t *testing.T) {
	boom := errors.New("connection reset")
	f := Go(context.Background(), func(context.Context) (int, error) {
		return 42, boom
	})

	v, err := f.Await(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, v)
}

func TestGoRecoversPanic(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (int, error) {
		panic("list parser exploded")
	})

	_, err := f.Await(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list parser exploded")
}

func TestFirstResolutionWins(t *testing.T) {
	f := New[string]()
	boom := errors.New("boom")

	assert.True(t, f.Reject(boom))
	assert.False(t, f.Resolve("late"))
	assert.False(t, f.Reject(errors.New("later")))

	v, err := f.Await(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, v)
}

func TestRejectNilStillCarriesError(t *testing.T) {
	f := New[int]()
	f.Reject(nil)

	_, err := f.Await(context.Background())
	assert.Error(t, err)
}

func TestAwaitHonoursContext(t *testing.T) {
	f := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The future itself is still pending and can resolve later.
	assert.True(t, f.Resolve(3))
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestDoneClosesOnResolve(t *testing.T) {
	f := New[struct{}]()
	select {
	case <-f.Done():
		t.Fatal("done before resolve")
	default:
	}
	f.Resolve(struct{}{})
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("done not closed")
	}
}
