package store

import (
	"log"
	"time"

	"task-calendar/backend/internal/cache"
	"task-calendar/backend/internal/models"
)

const (
	allTasksKey    = "tasks:all"
	dateKeyPrefix  = "tasks:date:"
	allTasksTTL    = 10 * time.Minute
	dateListTTL    = 15 * time.Minute
	dateKeyPattern = dateKeyPrefix + "*"
)

// CachedStore layers a Redis read-through cache over another TaskStore.
// Reads serve from the cache when warm; every mutation invalidates the
// cached lists. Cache failures are logged and treated as misses, so a
// Redis outage degrades to the inner store rather than failing requests.
type CachedStore struct {
	inner TaskStore
	cache *cache.RedisCache
}

func NewCachedStore(inner TaskStore, cacheInstance *cache.RedisCache) *CachedStore {
	return &CachedStore{inner: inner, cache: cacheInstance}
}

func (s *CachedStore) ListAll() ([]models.Task, error) {
	var cached []models.Task
	if err := s.cache.Get(allTasksKey, &cached); err == nil {
		return cached, nil
	}

	tasks, err := s.inner.ListAll()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(allTasksKey, tasks, allTasksTTL); err != nil {
		log.Printf("cache set %s: %v", allTasksKey, err)
	}
	return tasks, nil
}

func (s *CachedStore) ListByDate(date string) ([]models.Task, error) {
	key := dateKeyPrefix + date

	var cached []models.Task
	if err := s.cache.Get(key, &cached); err == nil {
		return cached, nil
	}

	tasks, err := s.inner.ListByDate(date)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(key, tasks, dateListTTL); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
	return tasks, nil
}

func (s *CachedStore) Create(task models.Task) (models.Task, error) {
	created, err := s.inner.Create(task)
	if err != nil {
		return models.Task{}, err
	}
	s.invalidateLists()
	return created, nil
}

func (s *CachedStore) Update(id string, updates models.TaskUpdate) (models.Task, error) {
	updated, err := s.inner.Update(id, updates)
	if err != nil {
		return models.Task{}, err
	}
	s.invalidateLists()
	return updated, nil
}

func (s *CachedStore) Delete(id string) error {
	if err := s.inner.Delete(id); err != nil {
		return err
	}
	s.invalidateLists()
	return nil
}

func (s *CachedStore) Close() error {
	if err := s.cache.Close(); err != nil {
		log.Printf("close cache: %v", err)
	}
	return s.inner.Close()
}

func (s *CachedStore) invalidateLists() {
	if err := s.cache.Delete(allTasksKey); err != nil {
		log.Printf("cache invalidate %s: %v", allTasksKey, err)
	}
	if err := s.cache.DeletePattern(dateKeyPattern); err != nil {
		log.Printf("cache invalidate %s: %v", dateKeyPattern, err)
	}
}
