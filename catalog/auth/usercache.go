package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/andrebq/courseshelf/catalog"
)

type (
	// UserCache is a read-through cache in front of a UserSource.
	// Registered users are immutable, so short-lived caching cannot
	// serve a stale password hash.
	UserCache interface {
		Get(ctx context.Context, email string) (catalog.User, bool)
		Put(ctx context.Context, u catalog.User)
	}

	memCache struct {
		cache *bigcache.BigCache
	}

	// User.Password is hidden from JSON on purpose, the cache entry
	// needs its own shape to keep the hash around for verification.
	cachedUser struct {
		ID        int64  `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
)

func InMemoryUserCache() UserCache {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(time.Minute))
	return &memCache{cache: cache}
}

func (m *memCache) Get(ctx context.Context, email string) (catalog.User, bool) {
	buf, err := m.cache.Get(email)
	if err != nil {
		return catalog.User{}, false
	}
	var cu cachedUser
	if json.Unmarshal(buf, &cu) != nil {
		return catalog.User{}, false
	}
	return catalog.User{
		ID:        cu.ID,
		FirstName: cu.FirstName,
		LastName:  cu.LastName,
		Email:     cu.Email,
		Password:  cu.Password,
	}, true
}

func (m *memCache) Put(ctx context.Context, u catalog.User) {
	buf, err := json.Marshal(cachedUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
	})
	if err != nil {
		return
	}
	m.cache.Set(u.Email, buf)
}
