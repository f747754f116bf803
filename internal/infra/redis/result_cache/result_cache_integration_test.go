//go:build integration

package infra_redis_result_cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/AdAndRoll/movie-search-server/internal/config"
	"github.com/AdAndRoll/movie-search-server/internal/model"
	infra_redis_init "github.com/AdAndRoll/movie-search-server/internal/infra/redis/init"
)

type ResultCacheIntegrationSuite struct {
	suite.Suite
	driver *Driver
}

func (s *ResultCacheIntegrationSuite) BeforeAll(t provider.T) {
	client := infra_redis_init.MustEstablishConn(config.FromEnv().Redis)
	s.driver = New(client, "test_result_cache", time.Minute)
}

func (s *ResultCacheIntegrationSuite) TestMarkReady(t provider.T) {
	ctx := context.Background()
	roomID := model.RoomID(uuid.NewString())

	ready, err := s.driver.IsReady(ctx, roomID)
	assert.NoError(t, err)
	assert.False(t, ready)

	assert.NoError(t, s.driver.MarkReady(ctx, roomID))

	ready, err = s.driver.IsReady(ctx, roomID)
	assert.NoError(t, err)
	assert.True(t, ready)
}

func (s *ResultCacheIntegrationSuite) TestForget(t provider.T) {
	ctx := context.Background()
	roomID := model.RoomID(uuid.NewString())

	assert.NoError(t, s.driver.MarkReady(ctx, roomID))
	assert.NoError(t, s.driver.Forget(ctx, roomID))

	ready, err := s.driver.IsReady(ctx, roomID)
	assert.NoError(t, err)
	assert.False(t, ready)

	assert.NoError(t, s.driver.Forget(ctx, roomID), "forgetting an unknown room is a no-op")
}

func TestResultCacheIntegrationSuite(t *testing.T) {
	suite.RunSuite(t, new(ResultCacheIntegrationSuite))
}
