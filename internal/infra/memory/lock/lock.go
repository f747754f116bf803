package infra_memory_lock

import (
	"context"
	"sync"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	"github.com/google/uuid"
)

// Driver serializes aggregation per room inside one process.
// It is only correct when a single instance serves all requests.
type Driver struct {
	mu     sync.Mutex
	owners map[model.RoomID]string
}

func New() *Driver {
	return &Driver{
		owners: make(map[model.RoomID]string),
	}
}

func (d *Driver) TryLock(ctx context.Context, roomID model.RoomID) (string, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, held := d.owners[roomID]; held {
		return "", false, nil
	}
	token := uuid.New().String()
	d.owners[roomID] = token
	return token, true, nil
}

func (d *Driver) Unlock(ctx context.Context, roomID model.RoomID, token string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.owners[roomID] == token {
		delete(d.owners, roomID)
	}
	return nil
}
