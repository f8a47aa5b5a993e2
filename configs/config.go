package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort            int
	DBHost             string
	DBPort             int
	DBUser             string
	DBPassword         string
	DBName             string
	DBNameTest         string
	RedisHost          string
	RedisPort          int
	SecretKey          string
	SigningMethod      jwt.SigningMethod
	TokenExpireMinutes int
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Only log when not in test mode
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	appPort, err := strconv.Atoi(os.Getenv("APP_PORT"))
	if err != nil {
		appPort = 3004
	}

	dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		dbPort = 5432
	}

	redisPort, err := strconv.Atoi(os.Getenv("REDIS_PORT"))
	if err != nil {
		redisPort = 6379
	}

	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		secretKey = "secret"
	}

	// Token settings default when unset; a value that is set but invalid
	// aborts startup instead of silently falling back.
	expireMinutes := 15
	if raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); raw != "" {
		expireMinutes, err = strconv.Atoi(raw)
		if err != nil || expireMinutes <= 0 {
			log.Fatalf("Invalid ACCESS_TOKEN_EXPIRE_MINUTES: %q", raw)
		}
	}

	method := jwt.SigningMethod(jwt.SigningMethodHS256)
	if raw := os.Getenv("ALGORITHM"); raw != "" {
		switch raw {
		case "HS256":
			method = jwt.SigningMethodHS256
		case "HS384":
			method = jwt.SigningMethodHS384
		case "HS512":
			method = jwt.SigningMethodHS512
		default:
			log.Fatalf("Unsupported ALGORITHM: %q", raw)
		}
	}

	return Config{
		AppPort:            appPort,
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             dbPort,
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBNameTest:         os.Getenv("DB_NAME_TEST"),
		RedisHost:          os.Getenv("REDIS_HOST"),
		RedisPort:          redisPort,
		SecretKey:          secretKey,
		SigningMethod:      method,
		TokenExpireMinutes: expireMinutes,
	}
}
