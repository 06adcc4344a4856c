package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-project-keeper/internal/config"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/utils"
	"github.com/MKhiriev/go-project-keeper/models"
)

const (
	projectKeyPrefix = "projects:item:" // record JSON: projects:item:{id}
	projectIndexKey  = "projects:index" // sorted set of ids scored by creation time
)

// redisRemoteCollection keeps the shared collection directly in Redis.
// Records are JSON strings; ordering lives in a sorted set.
type redisRemoteCollection struct {
	client *redis.Client
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewRedisRemoteCollection connects to the Redis collection described by cfg.
// The connection is lazy; an unreachable server surfaces on the first call.
func NewRedisRemoteCollection(cfg config.ClientAdapter, logger *logger.Logger) (RemoteCollection, *redis.Client) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddress,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.RequestTimeout,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		MaxRetries:   -1,
	})

	return newRedisRemoteCollection(client, logger), client
}

func newRedisRemoteCollection(client *redis.Client, logger *logger.Logger) *redisRemoteCollection {
	return &redisRemoteCollection{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

func (r *redisRemoteCollection) GetByID(ctx context.Context, id string) (models.Project, error) {
	data, err := r.client.Get(ctx, projectKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return models.Project{}, fmt.Errorf("%w: project %s", ErrNotFound, id)
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: get project: %w", ErrRemoteUnavailable, err)
	}

	return decodeProject(data)
}

func (r *redisRemoteCollection) List(ctx context.Context) ([]models.Project, error) {
	ids, err := r.client.ZRevRange(ctx, projectIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: list projects: %w", ErrRemoteUnavailable, err)
	}

	projects := make([]models.Project, 0, len(ids))
	if len(ids) == 0 {
		return projects, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: list projects: %w", ErrRemoteUnavailable, err)
	}

	for i, v := range values {
		data, ok := v.(string)
		if !ok {
			// index entry without a record: skip it
			r.logger.Debug().Str("project_id", ids[i]).Msg("dangling project index entry")
			continue
		}

		p, decodeErr := decodeProject(data)
		if decodeErr != nil {
			return nil, decodeErr
		}
		projects = append(projects, p)
	}

	return projects, nil
}

func (r *redisRemoteCollection) Create(ctx context.Context, payload models.Project) (models.Project, error) {
	created := payload.Clone()
	created.ID = r.ids.Generate()
	created.LegacyImage = nil
	if created.Public == nil {
		created.Public = models.Bool(true)
	}

	data, err := json.Marshal(created)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to marshal project: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.SetNX(ctx, projectKey(created.ID), data, 0)
	pipe.ZAdd(ctx, projectIndexKey, redis.Z{Score: r.score(created.CreatedAt), Member: created.ID})

	if _, err = pipe.Exec(ctx); err != nil {
		return models.Project{}, fmt.Errorf("%w: create project: %w", ErrRemoteUnavailable, err)
	}

	return created, nil
}

func (r *redisRemoteCollection) Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	updated := update.ApplyTo(existing)

	data, err := json.Marshal(updated)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to marshal project: %w", err)
	}

	// XX: never resurrect a record deleted in between
	ok, err := r.client.SetXX(ctx, projectKey(id), data, 0).Result()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: update project: %w", ErrRemoteUnavailable, err)
	}
	if !ok {
		return models.Project{}, fmt.Errorf("%w: project %s", ErrNotFound, id)
	}

	return updated, nil
}

func (r *redisRemoteCollection) Delete(ctx context.Context, id string) error {
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, projectKey(id))
	pipe.ZRem(ctx, projectIndexKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: delete project: %w", ErrRemoteUnavailable, err)
	}

	if del.Val() == 0 {
		return fmt.Errorf("%w: project %s", ErrNotFound, id)
	}

	return nil
}

// score orders records by creation time; unparsable timestamps sort as now.
func (r *redisRemoteCollection) score(createdAt string) float64 {
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		t = r.now()
	}
	return float64(t.UnixMilli())
}

func projectKey(id string) string {
	return projectKeyPrefix + id
}

func decodeProject(data string) (models.Project, error) {
	var p models.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return p, nil
}
