package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

var RedisClient *redis.Client

// ConnectRedis kết nối đến Redis, dùng cho cache availability
func ConnectRedis() (*redis.Client, error) {
	RDB := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	res, err := RDB.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Kết nối Redis thành công:", res)
	RedisClient = RDB
	return RDB, nil
}
