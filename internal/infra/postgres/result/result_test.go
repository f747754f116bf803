package infra_postgres_result

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	usecase_aggregation "github.com/AdAndRoll/movie-search-server/internal/usecase/aggregation"
	usecase_status "github.com/AdAndRoll/movie-search-server/internal/usecase/status"
)

type ResultInfraUnitSuite struct {
	suite.Suite
}

func initDriver(t provider.T) (*Driver, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return New(sqlx.NewDb(db, "sqlmock")), mock
}

func (s *ResultInfraUnitSuite) TestCreate(t provider.T) {
	heat := `{"name":"Heat","id":1,"rating":{"kp":7.9,"await":null},"ageRating":null,"votes":{"kp":"12 345"}}`
	result := model.RoomResult{
		RoomID: "r1",
		Movies: []model.Movie{model.NewMovie([]byte(heat)), model.NewMovie([]byte(`{"id":2}`))},
	}

	t.Run("catalog documents are stored byte for byte", func(t provider.T) {
		driver, mock := initDriver(t)

		mock.ExpectExec("INSERT INTO room_results .* ON CONFLICT \\(room_id\\) DO NOTHING").
			WithArgs("r1", `[`+heat+`,{"id":2}]`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := driver.Create(context.Background(), result)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty list is stored as an empty array", func(t provider.T) {
		driver, mock := initDriver(t)

		mock.ExpectExec("INSERT INTO room_results").
			WithArgs("r1", `[]`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := driver.Create(context.Background(), model.RoomResult{RoomID: "r1", Movies: []model.Movie{}})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("broken document is not written", func(t provider.T) {
		driver, mock := initDriver(t)

		err := driver.Create(context.Background(), model.RoomResult{
			RoomID: "r1",
			Movies: []model.Movie{model.NewMovie([]byte(`{"id":`))},
		})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second result for the room is rejected", func(t provider.T) {
		driver, mock := initDriver(t)

		mock.ExpectExec("INSERT INTO room_results").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := driver.Create(context.Background(), result)

		assert.ErrorIs(t, err, usecase_aggregation.ErrResultExists)
	})

	t.Run("driver error", func(t provider.T) {
		driver, mock := initDriver(t)
		dbErr := errors.New("connection reset")

		mock.ExpectExec("INSERT INTO room_results").WillReturnError(dbErr)

		err := driver.Create(context.Background(), result)

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, usecase_aggregation.ErrResultExists)
	})
}

func (s *ResultInfraUnitSuite) TestExists(t provider.T) {
	for _, exists := range []bool{true, false} {
		driver, mock := initDriver(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))

		got, err := driver.Exists(context.Background(), "r1")

		assert.NoError(t, err)
		assert.Equal(t, exists, got)
	}
}

func (s *ResultInfraUnitSuite) TestLoad(t provider.T) {
	t.Run("stored movies are decoded", func(t provider.T) {
		driver, mock := initDriver(t)

		mock.ExpectQuery("SELECT room_id, movies FROM room_results").
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows([]string{"room_id", "movies"}).
				AddRow("r1", []byte(`[{"id":7,"name":"Сталкер","year":1979,"rating":{"kp":8.1,"await":null}}]`)))

		result, err := driver.Load(context.Background(), "r1")

		assert.NoError(t, err)
		assert.Equal(t, model.RoomResult{
			RoomID: "r1",
			Movies: []model.Movie{model.NewMovie([]byte(`{"id":7,"name":"Сталкер","year":1979,"rating":{"kp":8.1,"await":null}}`))},
		}, result)
	})

	t.Run("missing room", func(t provider.T) {
		driver, mock := initDriver(t)

		mock.ExpectQuery("SELECT room_id, movies FROM room_results").
			WithArgs("r1").
			WillReturnError(sql.ErrNoRows)

		_, err := driver.Load(context.Background(), "r1")

		assert.ErrorIs(t, err, usecase_status.ErrResourceNotFound)
	})

	t.Run("corrupt payload", func(t provider.T) {
		driver, mock := initDriver(t)

		mock.ExpectQuery("SELECT room_id, movies FROM room_results").
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows([]string{"room_id", "movies"}).AddRow("r1", []byte(`{`)))

		_, err := driver.Load(context.Background(), "r1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, usecase_status.ErrResourceNotFound)
	})
}

func TestResultInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ResultInfraUnitSuite))
}
