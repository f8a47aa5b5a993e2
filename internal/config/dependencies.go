package config

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"

	"tasktracker/internal/websocket"
)

var (
	// Process-wide dependencies, constructed once at startup
	DB          *sql.DB
	RedisClient *redis.Client
	Validate    = validator.New()
	Ctx         = context.Background()
	Hub         *websocket.Hub

	// Token settings, overridden from configs at startup
	SecretKey                       = []byte("secret")
	SigningMethod jwt.SigningMethod = jwt.SigningMethodHS256
	TokenTTL                        = 15 * time.Minute
)
