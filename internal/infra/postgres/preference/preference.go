package infra_postgres_preference

import (
	"context"
	"fmt"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type preferenceDTO struct {
	UserID string         `db:"user_id"`
	RoomID string         `db:"room_id"`
	Genres pq.StringArray `db:"genres"`
	Years  pq.Int64Array  `db:"years"`
}

func fromDomain(p model.Preference) preferenceDTO {
	return preferenceDTO{
		UserID: string(p.UserID),
		RoomID: string(p.RoomID),
		Genres: pq.StringArray(p.Genres),
		Years:  pq.Int64Array{int64(p.Years.Start), int64(p.Years.End)},
	}
}

func (d preferenceDTO) toDomain() (model.Preference, error) {
	if len(d.Years) != 2 {
		return model.Preference{}, fmt.Errorf("preference of %s in %s: want 2 years, got %d", d.UserID, d.RoomID, len(d.Years))
	}
	return model.Preference{
		UserID: model.UserID(d.UserID),
		RoomID: model.RoomID(d.RoomID),
		Genres: []string(d.Genres),
		Years: model.YearRange{
			Start: int(d.Years[0]),
			End:   int(d.Years[1]),
		},
	}, nil
}

func (d *Driver) Upsert(ctx context.Context, p model.Preference) error {
	query := `
		INSERT INTO user_preferences (user_id, room_id, genres, years)
		VALUES (:user_id, :room_id, :genres, :years)
		ON CONFLICT (user_id, room_id)
		DO UPDATE SET genres = EXCLUDED.genres, years = EXCLUDED.years
	`

	if _, err := d.db.NamedExecContext(ctx, query, fromDomain(p)); err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}
	return nil
}

func (d *Driver) ListByRoom(ctx context.Context, roomID model.RoomID) ([]model.Preference, error) {
	query := `
		SELECT user_id, room_id, genres, years
		FROM user_preferences
		WHERE room_id = $1
		ORDER BY user_id
	`

	var rows []preferenceDTO
	if err := d.db.SelectContext(ctx, &rows, query, string(roomID)); err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	prefs := make([]model.Preference, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, nil
}

func (d *Driver) CountByRoom(ctx context.Context, roomID model.RoomID) (int, error) {
	query := `SELECT COUNT(*) FROM user_preferences WHERE room_id = $1`

	var count int
	if err := d.db.GetContext(ctx, &count, query, string(roomID)); err != nil {
		return 0, fmt.Errorf("failed to count preferences: %w", err)
	}
	return count, nil
}
