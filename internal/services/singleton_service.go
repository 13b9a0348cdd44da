package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/melroseheights/portfolio-backend/internal/cache"
	mongorepo "github.com/melroseheights/portfolio-backend/internal/repositories/mongo"
)

const singletonTTL = 5 * time.Minute

// SingletonService fronts a singleton repository with a read cache. Updates
// write the store first and then invalidate, so a process never serves its
// own stale write.
type SingletonService[T any] interface {
	Get(ctx context.Context) (*T, error)
	Update(ctx context.Context, set bson.M) (*T, error)
}

type singletonService[T any] struct {
	repo  mongorepo.SingletonRepository[T]
	cache cache.Cache
	key   string
}

func NewSingletonService[T any](repo mongorepo.SingletonRepository[T], c cache.Cache, key string) SingletonService[T] {
	return &singletonService[T]{repo: repo, cache: c, key: key}
}

func (s *singletonService[T]) Get(ctx context.Context) (*T, error) {
	var cached T
	if hit, err := s.cache.GetJSON(ctx, s.key, &cached); err == nil && hit {
		return &cached, nil
	}

	doc, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, s.key, doc, singletonTTL)
	return doc, nil
}

func (s *singletonService[T]) Update(ctx context.Context, set bson.M) (*T, error) {
	doc, err := s.repo.Update(ctx, set)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, s.key)
	return doc, nil
}
