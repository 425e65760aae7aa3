package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/adarshshan/stationaryPro/internal/domain"
)

// RedisStore implements UserStore and OrderStore on a redis instance.
// Records are stored as JSON values; a plain list keeps creation order.
// Redis is used as a volatile store here, the same no-durability contract
// as MemoryStore.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) GetByMobile(ctx context.Context, mobile string) (domain.User, error) {
	data, err := s.client.Get(ctx, userKey(mobile)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("redis get failed: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return domain.User{}, fmt.Errorf("unmarshal user failed: %w", err)
	}
	return user, nil
}

func (s *RedisStore) Create(ctx context.Context, user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user failed: %w", err)
	}

	// SETNX keeps one record per mobile even under concurrent logins
	ok, err := s.client.SetNX(ctx, userKey(user.Mobile), data, 0).Result()
	if err != nil {
		return fmt.Errorf("redis setnx failed: %w", err)
	}
	if !ok {
		return ErrUserExists
	}
	return nil
}

func (s *RedisStore) Append(ctx context.Context, order domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order failed: %w", err)
	}

	if err := s.client.Set(ctx, orderKey(order.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	if err := s.client.RPush(ctx, ordersListKey, order.ID).Err(); err != nil {
		return fmt.Errorf("redis rpush failed: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]domain.Order, error) {
	ids, err := s.client.LRange(ctx, ordersListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange failed: %w", err)
	}

	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		order, err := s.getOrder(ctx, id)
		if errors.Is(err, ErrOrderNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	return out, nil
}

func (s *RedisStore) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0)
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *RedisStore) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	order.Status = status
	data, err := json.Marshal(order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("marshal order failed: %w", err)
	}
	if err := s.client.Set(ctx, orderKey(orderID), data, 0).Err(); err != nil {
		return domain.Order{}, fmt.Errorf("redis set failed: %w", err)
	}
	return order, nil
}

func (s *RedisStore) getOrder(ctx context.Context, orderID string) (domain.Order, error) {
	data, err := s.client.Get(ctx, orderKey(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("redis get failed: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return domain.Order{}, fmt.Errorf("unmarshal order failed: %w", err)
	}
	return order, nil
}

const ordersListKey = "orders"

func userKey(mobile string) string {
	return fmt.Sprintf("user:mobile:%s", mobile)
}

func orderKey(orderID string) string {
	return fmt.Sprintf("order:%s", orderID)
}
