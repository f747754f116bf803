package infra_memory_lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/AdAndRoll/movie-search-server/internal/model"
)

type MemoryLockSuite struct {
	suite.Suite
}

func (s *MemoryLockSuite) TestTryLock(t provider.T) {
	ctx := context.Background()

	t.Run("second holder is refused until unlock", func(t provider.T) {
		l := New()

		token, ok, err := l.TryLock(ctx, "r1")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NotEmpty(t, token)

		_, ok, err = l.TryLock(ctx, "r1")
		assert.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, l.Unlock(ctx, "r1", token))

		_, ok, _ = l.TryLock(ctx, "r1")
		assert.True(t, ok)
	})

	t.Run("rooms are independent", func(t provider.T) {
		l := New()

		_, ok1, _ := l.TryLock(ctx, "r1")
		_, ok2, _ := l.TryLock(ctx, "r2")

		assert.True(t, ok1)
		assert.True(t, ok2)
	})

	t.Run("foreign token does not release", func(t provider.T) {
		l := New()

		_, ok, _ := l.TryLock(ctx, "r1")
		assert.True(t, ok)

		assert.NoError(t, l.Unlock(ctx, "r1", "someone-else"))

		_, ok, _ = l.TryLock(ctx, "r1")
		assert.False(t, ok)
	})

	t.Run("one winner among concurrent callers", func(t provider.T) {
		l := New()
		var winners atomic.Int32
		var wg sync.WaitGroup

		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok, _ := l.TryLock(ctx, model.RoomID("r1")); ok {
					winners.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), winners.Load())
	})
}

func TestMemoryLockSuite(t *testing.T) {
	suite.RunSuite(t, new(MemoryLockSuite))
}
