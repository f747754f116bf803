package infra_redis_lock

import (
	"context"
	"time"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	"github.com/go-redis/redis"
	"github.com/google/uuid"
)

// Only the holder of the token may delete the key.
const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// Driver is a per-room lock with an expiry, so a crashed holder cannot keep a room forever.
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

func (d *Driver) TryLock(ctx context.Context, roomID model.RoomID) (string, bool, error) {
	token := uuid.New().String()

	ok, err := d.client.WithContext(ctx).SetNX(d.getFullKey(roomID), token, d.ttl).Result()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (d *Driver) Unlock(ctx context.Context, roomID model.RoomID, token string) error {
	err := d.client.WithContext(ctx).Eval(unlockScript, []string{d.getFullKey(roomID)}, token).Err()
	if err == redis.Nil {
		return nil
	}
	return err
}

func (d *Driver) getFullKey(roomID model.RoomID) string {
	if d.key != "" {
		return d.key + ":" + string(roomID)
	}
	return string(roomID)
}
