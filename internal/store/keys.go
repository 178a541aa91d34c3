package store

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sandeepkv93/snaplist/internal/model"
)

const (
	KeySchemeCounter = "counter"
	KeySchemeULID    = "ulid"
	KeySchemeUUID    = "uuid"
)

// KeyGenerator hands out task keys that are unique for the lifetime of the
// store using it.
type KeyGenerator interface {
	Next() model.Key
}

// CounterKeys yields task-1, task-2, ... and is the default for its
// determinism.
type CounterKeys struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewCounterKeys() *CounterKeys {
	return &CounterKeys{prefix: "task", next: 1}
}

func (c *CounterKeys) Next() model.Key {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := model.Key(fmt.Sprintf("%s-%d", c.prefix, c.next))
	c.next++
	return k
}

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

type ULIDKeys struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

func NewULIDKeys() *ULIDKeys {
	return &ULIDKeys{
		entropy: ulid.Monotonic(randReader{}, 0),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *ULIDKeys) Next() model.Key {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := ulid.MustNew(ulid.Timestamp(u.now()), u.entropy)
	return model.Key(id.String())
}

type UUIDKeys struct{}

func (UUIDKeys) Next() model.Key {
	return model.Key(uuid.NewString())
}

// KeyGeneratorFor maps a configured scheme name to a generator. Unknown names
// fall back to the counter.
func KeyGeneratorFor(scheme string) (KeyGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", KeySchemeCounter:
		return NewCounterKeys(), nil
	case KeySchemeULID:
		return NewULIDKeys(), nil
	case KeySchemeUUID:
		return UUIDKeys{}, nil
	default:
		return NewCounterKeys(), fmt.Errorf("store: unknown key scheme %q", scheme)
	}
}
