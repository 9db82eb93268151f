package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// StaffSession is the authenticated staff identity attached to a session
// token after login.
type StaffSession struct {
	StaffID   string    `json:"staffid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management
func (c *Client) SetSession(token string, session *StaffSession, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+token, jsonData, ttl).Err()
}

func (c *Client) GetSession(token string) (*StaffSession, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session StaffSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+token).Err()
}

// Unit price caching. A missing key is reported via the found flag so callers
// can fall through to the catalog.
func (c *Client) SetUnitPrice(productName string, price float64, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "unit_price:"+productName, price, ttl).Err()
}

func (c *Client) GetUnitPrice(productName string) (float64, bool, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "unit_price:"+productName).Float64()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get cached unit price: %w", err)
	}
	return val, true, nil
}

func (c *Client) DeleteUnitPrice(productName string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "unit_price:"+productName).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
