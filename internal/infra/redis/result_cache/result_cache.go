package infra_redis_result_cache

import (
	"context"
	"time"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	"github.com/go-redis/redis"
)

const readyValue = "ready"

// Driver remembers rooms that already have a result. A miss falls through
// to the store. Marks expire after ttl, which must stay below the interval
// of the inactive room cleanup.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) MarkReady(ctx context.Context, roomID model.RoomID) error {
	return d.client.WithContext(ctx).Set(d.getFullKey(roomID), readyValue, d.ttl).Err()
}

func (d *Driver) IsReady(ctx context.Context, roomID model.RoomID) (bool, error) {
	val, err := d.client.WithContext(ctx).Get(d.getFullKey(roomID)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}

	return val == readyValue, nil
}

// Forget drops the mark of a room whose result is gone, e.g. after the
// room was cleaned up and its id reused.
func (d *Driver) Forget(ctx context.Context, roomID model.RoomID) error {
	return d.client.WithContext(ctx).Del(d.getFullKey(roomID)).Err()
}

func (d *Driver) getFullKey(roomID model.RoomID) string {
	if d.key != "" {
		return d.key + ":" + string(roomID)
	}
	return string(roomID)
}
