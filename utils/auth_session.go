package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AdminSessionPrefix = "adminSession:"

// AdminSession records an issued admin token so it can be revoked before
// its JWT expiry. Sessions are keyed by the SHA-256 hash of the token.
type AdminSession struct {
	AdminID   string    `json:"adminId"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SaveAdminSession saves an admin session in Redis with a TTL matching
// the token lifetime.
func SaveAdminSession(client *redis.Client, tokenHash string, session AdminSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal admin session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AdminSessionPrefix+tokenHash, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save admin session: %w", err)
	}
	return nil
}

// GetAdminSession retrieves an admin session from Redis. A redis.Nil
// error means the token was revoked or has expired.
func GetAdminSession(client *redis.Client, tokenHash string) (*AdminSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AdminSessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session AdminSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin session: %w", err)
	}
	return &session, nil
}

// DeleteAdminSession removes an admin session from Redis, revoking the token.
func DeleteAdminSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AdminSessionPrefix+tokenHash).Err()
}
