package usecase_status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AdAndRoll/movie-search-server/internal/model"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrStore            = errors.New("store failure")
	ErrResourceNotFound = errors.New("no such resource")
)

//go:generate mockery --name=ResultRepository --output=./mocks/status/repository --filename=result.go
type ResultRepository interface {
	Exists(ctx context.Context, roomID model.RoomID) (bool, error)
	Load(ctx context.Context, roomID model.RoomID) (model.RoomResult, error)
}

//go:generate mockery --name=PreferenceRepository --output=./mocks/status/repository --filename=preference.go
type PreferenceRepository interface {
	CountByRoom(ctx context.Context, roomID model.RoomID) (int, error)
}

//go:generate mockery --name=ReadyCache --output=./mocks/status/cache --filename=cache.go
type ReadyCache interface {
	IsReady(ctx context.Context, roomID model.RoomID) (bool, error)
	MarkReady(ctx context.Context, roomID model.RoomID) error
	Forget(ctx context.Context, roomID model.RoomID) error
}

type Usecase struct {
	results     ResultRepository
	preferences PreferenceRepository
	cache       ReadyCache

	logger *slog.Logger
}

// cache may be nil.
func New(
	results ResultRepository,
	preferences PreferenceRepository,
	cache ReadyCache,
) *Usecase {
	return &Usecase{
		results:     results,
		preferences: preferences,
		cache:       cache,
		logger:      slog.Default(),
	}
}

// Check answers ready once a result exists, waiting while only preferences do,
// and ErrResourceNotFound for a room nobody has submitted to.
func (u *Usecase) Check(ctx context.Context, roomID model.RoomID) (model.Status, error) {
	roomID = model.RoomID(strings.TrimSpace(string(roomID)))
	if roomID == model.EmptyRoomID {
		return "", fmt.Errorf("%w: room_id is required", ErrInvalidInput)
	}

	if u.cache != nil {
		ready, err := u.cache.IsReady(ctx, roomID)
		if err != nil {
			u.logger.Warn("ready cache lookup failed",
				slog.String("room_id", string(roomID)),
				slog.String("error", err.Error()),
			)
		} else if ready {
			return model.StatusReady, nil
		}
	}

	exists, err := u.results.Exists(ctx, roomID)
	if err != nil {
		return "", errors.Join(ErrStore, err)
	}
	if exists {
		if u.cache != nil {
			if err := u.cache.MarkReady(ctx, roomID); err != nil {
				u.logger.Warn("failed to cache ready room",
					slog.String("room_id", string(roomID)),
					slog.String("error", err.Error()),
				)
			}
		}
		return model.StatusReady, nil
	}

	count, err := u.preferences.CountByRoom(ctx, roomID)
	if err != nil {
		return "", errors.Join(ErrStore, err)
	}
	if count == 0 {
		return "", ErrResourceNotFound
	}

	return model.StatusWaiting, nil
}

// Results returns the stored recommendation list of a ready room.
func (u *Usecase) Results(ctx context.Context, roomID model.RoomID) (model.RoomResult, error) {
	roomID = model.RoomID(strings.TrimSpace(string(roomID)))
	if roomID == model.EmptyRoomID {
		return model.RoomResult{}, fmt.Errorf("%w: room_id is required", ErrInvalidInput)
	}

	result, err := u.results.Load(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			u.forget(ctx, roomID)
			return model.RoomResult{}, ErrResourceNotFound
		}
		return model.RoomResult{}, errors.Join(ErrStore, err)
	}
	return result, nil
}

// forget clears a ready mark left behind by a room that no longer has a result.
func (u *Usecase) forget(ctx context.Context, roomID model.RoomID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Forget(ctx, roomID); err != nil {
		u.logger.Warn("failed to drop stale ready mark",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
	}
}
