package usecase_preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	usecase_aggregation "github.com/AdAndRoll/movie-search-server/internal/usecase/aggregation"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrStore            = errors.New("store failure")
	ErrResourceNotFound = errors.New("no such resource")
)

//go:generate mockery --name=PreferenceRepository --output=./mocks/preference/repository --filename=preference.go
type PreferenceRepository interface {
	// Upsert replaces an earlier submission of the same user in the same room.
	Upsert(ctx context.Context, p model.Preference) error
	ListByRoom(ctx context.Context, roomID model.RoomID) ([]model.Preference, error)
}

//go:generate mockery --name=SessionRepository --output=./mocks/preference/repository --filename=session.go
type SessionRepository interface {
	ListOnline(ctx context.Context, roomID model.RoomID) ([]model.Session, error)
}

//go:generate mockery --name=ResultRepository --output=./mocks/preference/repository --filename=result.go
type ResultRepository interface {
	Exists(ctx context.Context, roomID model.RoomID) (bool, error)
}

//go:generate mockery --name=Aggregator --output=./mocks/preference/aggregator --filename=aggregator.go
type Aggregator interface {
	Aggregate(ctx context.Context, roomID model.RoomID, prefs []model.Preference) (model.RoomResult, error)
}

//go:generate mockery --name=Locker --output=./mocks/preference/locker --filename=locker.go
type Locker interface {
	// TryLock never blocks. ok is false when someone else holds the room.
	TryLock(ctx context.Context, roomID model.RoomID) (token string, ok bool, err error)
	Unlock(ctx context.Context, roomID model.RoomID, token string) error
}

//go:generate mockery --name=ReadyCache --output=./mocks/preference/cache --filename=cache.go
type ReadyCache interface {
	IsReady(ctx context.Context, roomID model.RoomID) (bool, error)
	MarkReady(ctx context.Context, roomID model.RoomID) error
}

type Usecase struct {
	preferences PreferenceRepository
	sessions    SessionRepository
	results     ResultRepository
	aggregator  Aggregator
	locker      Locker
	cache       ReadyCache

	logger *slog.Logger
}

type Option func(*Usecase)

func WithReadyCache(cache ReadyCache) Option {
	return func(u *Usecase) {
		u.cache = cache
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	preferences PreferenceRepository,
	sessions SessionRepository,
	results ResultRepository,
	aggregator Aggregator,
	locker Locker,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		preferences: preferences,
		sessions:    sessions,
		results:     results,
		aggregator:  aggregator,
		locker:      locker,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// IsQuorum reports whether every online user of a non-empty room has submitted.
func IsQuorum(preferences, online int) bool {
	return preferences > 0 && preferences == online
}

// Submit records one user's criteria and aggregates the room once everybody is in.
// A stored preference stays stored even if the readiness check after it fails.
func (u *Usecase) Submit(ctx context.Context, p model.Preference) (model.Status, error) {
	p, err := normalize(p)
	if err != nil {
		return "", err
	}

	if err := u.preferences.Upsert(ctx, p); err != nil {
		u.logError("failed to save preferences", p.RoomID, err)
		return "", errors.Join(ErrStore, err)
	}

	return u.evaluate(ctx, p.RoomID)
}

// Retry runs the readiness check again without a new submission.
// It is the way out for a room whose aggregation failed earlier.
func (u *Usecase) Retry(ctx context.Context, roomID model.RoomID) (model.Status, error) {
	roomID = model.RoomID(strings.TrimSpace(string(roomID)))
	if roomID == model.EmptyRoomID {
		return "", fmt.Errorf("%w: room_id is required", ErrInvalidInput)
	}

	ready, err := u.isReady(ctx, roomID)
	if err != nil {
		return "", err
	}
	if ready {
		return model.StatusReady, nil
	}

	quorum, prefs, err := u.quorum(ctx, roomID)
	if err != nil {
		return "", err
	}
	if len(prefs) == 0 {
		return "", ErrResourceNotFound
	}
	if !quorum {
		return model.StatusWaiting, nil
	}

	return u.aggregateOnce(ctx, roomID)
}

func (u *Usecase) evaluate(ctx context.Context, roomID model.RoomID) (model.Status, error) {
	quorum, _, err := u.quorum(ctx, roomID)
	if err != nil {
		return "", err
	}
	if !quorum {
		return model.StatusWaiting, nil
	}

	return u.aggregateOnce(ctx, roomID)
}

func (u *Usecase) quorum(ctx context.Context, roomID model.RoomID) (bool, []model.Preference, error) {
	prefs, err := u.preferences.ListByRoom(ctx, roomID)
	if err != nil {
		u.logError("failed to fetch preferences", roomID, err)
		return false, nil, errors.Join(ErrStore, err)
	}

	online, err := u.sessions.ListOnline(ctx, roomID)
	if err != nil {
		u.logError("failed to fetch online users", roomID, err)
		return false, nil, errors.Join(ErrStore, err)
	}

	return IsQuorum(len(prefs), len(online)), prefs, nil
}

// aggregateOnce holds the room lock across check-and-aggregate. Losers of the
// lock answer waiting; the winner's result shows up through check-status.
func (u *Usecase) aggregateOnce(ctx context.Context, roomID model.RoomID) (model.Status, error) {
	ready, err := u.isReady(ctx, roomID)
	if err != nil {
		return "", err
	}
	if ready {
		return model.StatusReady, nil
	}

	token, ok, err := u.locker.TryLock(ctx, roomID)
	if err != nil {
		u.logError("failed to lock room", roomID, err)
		return "", errors.Join(ErrStore, err)
	}
	if !ok {
		u.logger.Info("aggregation already in progress", slog.String("room_id", string(roomID)))
		return model.StatusWaiting, nil
	}
	defer func() {
		if err := u.locker.Unlock(context.WithoutCancel(ctx), roomID, token); err != nil {
			u.logError("failed to unlock room", roomID, err)
		}
	}()

	// State may have moved while the lock was contended.
	ready, err = u.isReady(ctx, roomID)
	if err != nil {
		return "", err
	}
	if ready {
		return model.StatusReady, nil
	}

	quorum, prefs, err := u.quorum(ctx, roomID)
	if err != nil {
		return "", err
	}
	if !quorum {
		return model.StatusWaiting, nil
	}

	if _, err := u.aggregator.Aggregate(ctx, roomID, prefs); err != nil {
		if !errors.Is(err, usecase_aggregation.ErrResultExists) {
			u.logError("failed to aggregate room", roomID, err)
			return "", err
		}
		u.logger.Info("room already aggregated", slog.String("room_id", string(roomID)))
	}

	u.markReady(ctx, roomID)
	return model.StatusReady, nil
}

func (u *Usecase) isReady(ctx context.Context, roomID model.RoomID) (bool, error) {
	if u.cache != nil {
		ready, err := u.cache.IsReady(ctx, roomID)
		if err != nil {
			u.logError("ready cache lookup failed", roomID, err)
		} else if ready {
			return true, nil
		}
	}

	exists, err := u.results.Exists(ctx, roomID)
	if err != nil {
		u.logError("failed to check room result", roomID, err)
		return false, errors.Join(ErrStore, err)
	}
	if exists {
		u.markReady(ctx, roomID)
	}
	return exists, nil
}

func (u *Usecase) markReady(ctx context.Context, roomID model.RoomID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.MarkReady(ctx, roomID); err != nil {
		u.logError("failed to cache ready room", roomID, err)
	}
}

func (u *Usecase) logError(msg string, roomID model.RoomID, err error) {
	u.logger.Error(msg,
		slog.String("room_id", string(roomID)),
		slog.String("error", err.Error()),
	)
}
