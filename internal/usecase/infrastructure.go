package usecase

import (
	"context"

	"github.com/my-shop/go-backend/internal/domain"
)

type SessionStore interface {
	// Get returns (nil, nil) when the token has no session.
	Get(ctx context.Context, token string) (*domain.Session, error)
	Save(ctx context.Context, token string, session *domain.Session) error
	Delete(ctx context.Context, token string) error
}

type ImageStore interface {
	// Save persists an uploaded image and returns its public URL path.
	Save(ctx context.Context, filename string, data []byte) (string, error)
	List(ctx context.Context) ([]string, error)
}

type SettingsStore interface {
	// Load never fails; unreadable documents degrade to the default.
	Load() domain.SiteSettings
	Save(settings domain.SiteSettings) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
