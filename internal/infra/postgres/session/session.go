package infra_postgres_session

import (
	"context"
	"fmt"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	"github.com/jmoiron/sqlx"
)

// Driver reads sessions written by the session manager.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type sessionDTO struct {
	UserID   string `db:"user_id"`
	RoomID   string `db:"room_id"`
	IsOnline bool   `db:"is_online"`
}

func (d *Driver) ListOnline(ctx context.Context, roomID model.RoomID) ([]model.Session, error) {
	query := `
		SELECT user_id, room_id, is_online
		FROM user_sessions
		WHERE room_id = $1 AND is_online = true
	`

	var rows []sessionDTO
	if err := d.db.SelectContext(ctx, &rows, query, string(roomID)); err != nil {
		return nil, fmt.Errorf("failed to load online sessions: %w", err)
	}

	sessions := make([]model.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, model.Session{
			UserID:   model.UserID(row.UserID),
			RoomID:   model.RoomID(row.RoomID),
			IsOnline: row.IsOnline,
		})
	}
	return sessions, nil
}
