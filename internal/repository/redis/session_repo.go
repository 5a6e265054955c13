package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/clients"
	"github.com/my-shop/go-backend/pkg/e"
	r "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionRepo keeps browser sessions in Redis, keyed by the cookie token.
// Entries expire with the session TTL; a sliding touch happens on every Save.
type SessionRepo struct {
	client *clients.RedisClient
	ttl    time.Duration
}

func NewSessionRepo(client *clients.RedisClient, ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		client: client,
		ttl:    ttl,
	}
}

// Get returns (nil, nil) when the token has no session, expired included.
func (s *SessionRepo) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &session, nil
}

func (s *SessionRepo) Save(ctx context.Context, token string, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, sessionKeyPrefix+token, data, s.ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SessionRepo) Delete(ctx context.Context, token string) error {
	if err := s.client.Client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
