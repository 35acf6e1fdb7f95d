package config

import (
	"flag"
	"os"
)

var (
	RunAddr     string
	DataBaseURL string
	RedisAddr   string
	JWTSecret   string
)

func ParseFlags() {
	flag.StringVar(&RunAddr, "a", "localhost:8080", "address and port to run server")
	flag.StringVar(&DataBaseURL, "d", "", "postgres connection url")
	flag.StringVar(&RedisAddr, "r", "", "redis address for the verdict cache (optional)")

	flag.Parse()

	envRunAddr := os.Getenv("RUN_ADDRESS")
	if envRunAddr != "" {
		RunAddr = envRunAddr
	}

	envDBConnection := os.Getenv("DATABASE_URI")
	if envDBConnection != "" {
		DataBaseURL = envDBConnection
	}

	envRedisAddr := os.Getenv("REDIS_ADDRESS")
	if envRedisAddr != "" {
		RedisAddr = envRedisAddr
	}

	JWTSecret = os.Getenv("JWT_SECRET")
	if JWTSecret == "" {
		JWTSecret = "dev-secret-change-in-production"
	}
}
