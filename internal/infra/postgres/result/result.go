package infra_postgres_result

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	usecase_aggregation "github.com/AdAndRoll/movie-search-server/internal/usecase/aggregation"
	usecase_status "github.com/AdAndRoll/movie-search-server/internal/usecase/status"
	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type resultDTO struct {
	RoomID string `db:"room_id"`
	Movies []byte `db:"movies"`
}

// Create relies on room_results.room_id being the primary key: a second
// insert for the same room is dropped and reported as ErrResultExists.
func (d *Driver) Create(ctx context.Context, result model.RoomResult) error {
	movies, err := encodeMovies(result.Movies)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO room_results (room_id, movies)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (room_id) DO NOTHING
	`

	res, err := d.db.ExecContext(ctx, query, string(result.RoomID), string(movies))
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_aggregation.ErrResultExists
	}

	return nil
}

// encodeMovies joins the catalog documents into a JSON array without
// re-encoding them.
func encodeMovies(movies []model.Movie) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, m := range movies {
		if !json.Valid(m.Raw()) {
			return nil, fmt.Errorf("failed to encode movies: document %d is not valid json", i)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(m.Raw())
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (d *Driver) Exists(ctx context.Context, roomID model.RoomID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM room_results WHERE room_id = $1)`

	var exists bool
	if err := d.db.QueryRowContext(ctx, query, string(roomID)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (d *Driver) Load(ctx context.Context, roomID model.RoomID) (model.RoomResult, error) {
	query := `SELECT room_id, movies FROM room_results WHERE room_id = $1`

	var row resultDTO
	if err := d.db.GetContext(ctx, &row, query, string(roomID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoomResult{}, usecase_status.ErrResourceNotFound
		}
		return model.RoomResult{}, err
	}

	var movies []model.Movie
	if err := json.Unmarshal(row.Movies, &movies); err != nil {
		return model.RoomResult{}, fmt.Errorf("failed to decode movies of room %s: %w", roomID, err)
	}

	return model.RoomResult{
		RoomID: model.RoomID(row.RoomID),
		Movies: movies,
	}, nil
}
