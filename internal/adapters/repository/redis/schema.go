// Package redis keeps schema documents in Redis.
//
// Each schema is a JSON value under <prefix>:schema:<id>. The sorted set
// <prefix>:schemas indexes the IDs with a zero score so that listing
// returns them in lexical order.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"constraintsvc/internal/core/domain/schema"
)

type Repository struct {
	client goredis.UniversalClient
	prefix string
}

func NewRepository(client goredis.UniversalClient, prefix string) *Repository {
	return &Repository{client: client, prefix: prefix}
}

func (r *Repository) key(id string) string {
	return r.prefix + ":schema:" + id
}

func (r *Repository) indexKey() string {
	return r.prefix + ":schemas"
}

func (r *Repository) Save(ctx context.Context, s *schema.Schema) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}

	var created *goredis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		created = pipe.SetNX(ctx, r.key(s.ID), payload, 0)
		pipe.ZAdd(ctx, r.indexKey(), goredis.Z{Member: s.ID})
		return nil
	})
	if err != nil {
		return err
	}
	if !created.Val() {
		return &schema.AlreadyExistsError{ID: s.ID}
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*schema.Schema, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, schema.ErrSchemaNotFound
		}
		return nil, err
	}
	return decode(raw)
}

// List skips index entries whose value has gone missing.
func (r *Repository) List(ctx context.Context) ([]*schema.Schema, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	schemas := make([]*schema.Schema, 0, len(ids))
	if len(ids) == 0 {
		return schemas, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		s, err := decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	var deleted *goredis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		deleted = pipe.Del(ctx, r.key(id))
		pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return err
	}
	if deleted.Val() == 0 {
		return schema.ErrSchemaNotFound
	}
	return nil
}

func decode(raw []byte) (*schema.Schema, error) {
	var s schema.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	s.CreatedAt = s.CreatedAt.UTC()
	return &s, nil
}
