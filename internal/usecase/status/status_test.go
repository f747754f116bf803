package usecase_status

import (
	"context"
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	mocks_cache "github.com/AdAndRoll/movie-search-server/internal/usecase/status/mocks/status/cache"
	mocks_repository "github.com/AdAndRoll/movie-search-server/internal/usecase/status/mocks/status/repository"
)

type UsecaseStatusUnitSuite struct {
	suite.Suite

	usecase *Usecase

	results     *mocks_repository.ResultRepository
	preferences *mocks_repository.PreferenceRepository
	cache       *mocks_cache.ReadyCache

	ctx context.Context
}

const testRoom model.RoomID = "r1"

func (s *UsecaseStatusUnitSuite) setup(t provider.T, withCache bool) {
	s.results = mocks_repository.NewResultRepository(t)
	s.preferences = mocks_repository.NewPreferenceRepository(t)
	s.ctx = context.Background()

	if withCache {
		s.cache = mocks_cache.NewReadyCache(t)
		s.usecase = New(s.results, s.preferences, s.cache)
		return
	}
	s.usecase = New(s.results, s.preferences, nil)
}

func (s *UsecaseStatusUnitSuite) TestCheck(t provider.T) {
	t.Run("room nobody submitted to is not found", func(t provider.T) {
		s.setup(t, false)

		s.results.On("Exists", s.ctx, testRoom).Return(false, nil).Once()
		s.preferences.On("CountByRoom", s.ctx, testRoom).Return(0, nil).Once()

		_, err := s.usecase.Check(s.ctx, testRoom)

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("one preference is waiting", func(t provider.T) {
		s.setup(t, false)

		s.results.On("Exists", s.ctx, testRoom).Return(false, nil).Once()
		s.preferences.On("CountByRoom", s.ctx, testRoom).Return(1, nil).Once()

		status, err := s.usecase.Check(s.ctx, testRoom)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusWaiting, status)
	})

	t.Run("result means ready regardless of preferences", func(t provider.T) {
		s.setup(t, false)

		s.results.On("Exists", s.ctx, testRoom).Return(true, nil).Once()

		status, err := s.usecase.Check(s.ctx, testRoom)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusReady, status)
		s.preferences.AssertNotCalled(t, "CountByRoom", mock.Anything, mock.Anything)
	})

	t.Run("room id is trimmed", func(t provider.T) {
		s.setup(t, false)

		s.results.On("Exists", s.ctx, testRoom).Return(true, nil).Once()

		status, err := s.usecase.Check(s.ctx, " r1 ")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusReady, status)
	})

	t.Run("blank room id", func(t provider.T) {
		s.setup(t, false)

		_, err := s.usecase.Check(s.ctx, "   ")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("result lookup failure", func(t provider.T) {
		s.setup(t, false)

		s.results.On("Exists", s.ctx, testRoom).Return(false, errors.New("timeout")).Once()

		_, err := s.usecase.Check(s.ctx, testRoom)

		assert.ErrorIs(t, err, ErrStore)
	})

	t.Run("preference count failure", func(t provider.T) {
		s.setup(t, false)

		s.results.On("Exists", s.ctx, testRoom).Return(false, nil).Once()
		s.preferences.On("CountByRoom", s.ctx, testRoom).Return(0, errors.New("timeout")).Once()

		_, err := s.usecase.Check(s.ctx, testRoom)

		assert.ErrorIs(t, err, ErrStore)
	})
}

func (s *UsecaseStatusUnitSuite) TestCheckWithReadyCache(t provider.T) {
	t.Run("cache hit", func(t provider.T) {
		s.setup(t, true)

		s.cache.On("IsReady", s.ctx, testRoom).Return(true, nil).Once()

		status, err := s.usecase.Check(s.ctx, testRoom)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusReady, status)
		s.results.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("store hit is cached", func(t provider.T) {
		s.setup(t, true)

		s.cache.On("IsReady", s.ctx, testRoom).Return(false, nil).Once()
		s.results.On("Exists", s.ctx, testRoom).Return(true, nil).Once()
		s.cache.On("MarkReady", s.ctx, testRoom).Return(nil).Once()

		status, err := s.usecase.Check(s.ctx, testRoom)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusReady, status)
	})

	t.Run("cache failure is not fatal", func(t provider.T) {
		s.setup(t, true)

		s.cache.On("IsReady", s.ctx, testRoom).Return(false, errors.New("redis down")).Once()
		s.results.On("Exists", s.ctx, testRoom).Return(false, nil).Once()
		s.preferences.On("CountByRoom", s.ctx, testRoom).Return(2, nil).Once()

		status, err := s.usecase.Check(s.ctx, testRoom)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusWaiting, status)
	})
}

func (s *UsecaseStatusUnitSuite) TestResults(t provider.T) {
	t.Run("stored result", func(t provider.T) {
		s.setup(t, false)
		expected := model.RoomResult{RoomID: testRoom, Movies: []model.Movie{model.NewMovie([]byte(`{"id":42,"name":"Сталкер"}`))}}

		s.results.On("Load", s.ctx, testRoom).Return(expected, nil).Once()

		result, err := s.usecase.Results(s.ctx, testRoom)

		assert.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("no result yet", func(t provider.T) {
		s.setup(t, false)

		s.results.On("Load", s.ctx, testRoom).Return(model.RoomResult{}, ErrResourceNotFound).Once()

		_, err := s.usecase.Results(s.ctx, testRoom)

		assert.ErrorIs(t, err, ErrResourceNotFound)
		assert.NotErrorIs(t, err, ErrStore)
	})

	t.Run("missing result drops a stale ready mark", func(t provider.T) {
		s.setup(t, true)

		s.results.On("Load", s.ctx, testRoom).Return(model.RoomResult{}, ErrResourceNotFound).Once()
		s.cache.On("Forget", s.ctx, testRoom).Return(nil).Once()

		_, err := s.usecase.Results(s.ctx, testRoom)

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("reused room id answers from the store after the mark is dropped", func(t provider.T) {
		s.setup(t, true)

		s.results.On("Load", s.ctx, testRoom).Return(model.RoomResult{}, ErrResourceNotFound).Once()
		s.cache.On("Forget", s.ctx, testRoom).Return(nil).Once()
		s.cache.On("IsReady", s.ctx, testRoom).Return(false, nil).Once()
		s.results.On("Exists", s.ctx, testRoom).Return(false, nil).Once()
		s.preferences.On("CountByRoom", s.ctx, testRoom).Return(1, nil).Once()

		_, err := s.usecase.Results(s.ctx, testRoom)
		assert.ErrorIs(t, err, ErrResourceNotFound)

		status, err := s.usecase.Check(s.ctx, testRoom)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusWaiting, status)
	})

	t.Run("failing to drop the mark keeps the not found answer", func(t provider.T) {
		s.setup(t, true)

		s.results.On("Load", s.ctx, testRoom).Return(model.RoomResult{}, ErrResourceNotFound).Once()
		s.cache.On("Forget", s.ctx, testRoom).Return(errors.New("redis down")).Once()

		_, err := s.usecase.Results(s.ctx, testRoom)

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("store failure", func(t provider.T) {
		s.setup(t, false)

		s.results.On("Load", s.ctx, testRoom).Return(model.RoomResult{}, errors.New("bad jsonb")).Once()

		_, err := s.usecase.Results(s.ctx, testRoom)

		assert.ErrorIs(t, err, ErrStore)
	})

	t.Run("blank room id", func(t provider.T) {
		s.setup(t, false)

		_, err := s.usecase.Results(s.ctx, "")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUsecaseStatusUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseStatusUnitSuite))
}
