package repository

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"medical-directory/config"
	"medical-directory/internal/model"
	"medical-directory/internal/util"
)

const (
	doctorsKeyPrefix = "doctors:"
	specialtiesKey   = doctorsKeyPrefix + "specialties"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetDoctors(ctx context.Context, filter model.DoctorFilter, doctors []model.Doctor) error {
	return r.set(ctx, r.listKey(filter), doctors)
}

// GetDoctors : nil, nil on a cache miss
func (r *CacheRepository) GetDoctors(ctx context.Context, filter model.DoctorFilter) ([]model.Doctor, error) {
	var doctors []model.Doctor
	found, err := r.get(ctx, r.listKey(filter), &doctors)
	if err != nil || !found {
		return nil, err
	}
	return doctors, nil
}

func (r *CacheRepository) SetSpecialties(ctx context.Context, specialties []string) error {
	return r.set(ctx, specialtiesKey, specialties)
}

func (r *CacheRepository) GetSpecialties(ctx context.Context) ([]string, error) {
	var specialties []string
	found, err := r.get(ctx, specialtiesKey, &specialties)
	if err != nil || !found {
		return nil, err
	}
	return specialties, nil
}

// InvalidateDoctors : drops every cached listing and the specialty list
func (r *CacheRepository) InvalidateDoctors(ctx context.Context) error {
	iter := r.client.Client.Scan(ctx, 0, doctorsKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return util.LogError("[CacheRepo] scanning keys failed", err)
	}
	if len(keys) == 0 {
		return nil
	}

	pipe := r.client.Client.Pipeline()
	pipe.Del(ctx, keys...)
	if _, err := pipe.Exec(ctx); err != nil {
		return util.LogError("[CacheRepo] deleting keys failed", err)
	}
	return nil
}

func (r *CacheRepository) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return util.LogError("[CacheRepo] serialization failed", err)
	}

	cmd := r.client.Client.Set(ctx, key, data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("[CacheRepo] redis set failed", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("unexpected redis reply: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.client.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, util.LogError("[CacheRepo] redis get failed", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, util.LogError("[CacheRepo] cached value is corrupt", err)
	}
	return true, nil
}

// listKey : filter parts are hex encoded so a ':' inside a value cannot shift the separator
func (r *CacheRepository) listKey(filter model.DoctorFilter) string {
	return fmt.Sprintf("%slist:%s:%s", doctorsKeyPrefix,
		hex.EncodeToString([]byte(filter.Specialty)),
		hex.EncodeToString([]byte(strings.ToLower(filter.Search))))
}
