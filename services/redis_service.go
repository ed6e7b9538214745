package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Hàm lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	// Parse JSON thành object
	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

// AvailabilityCacheKey là key cache availability toàn khách sạn cho một
// khoảng ngày
func AvailabilityCacheKey(hotelID uint, checkIn, checkOut string) string {
	return fmt.Sprintf("availability:hotel:%d:%s:%s", hotelID, checkIn, checkOut)
}

// InvalidateHotelAvailability xóa mọi cache availability của một khách sạn.
// Gọi sau mỗi booking thành công để cờ sold-out không bị stale quá TTL.
func InvalidateHotelAvailability(ctx context.Context, rdb *redis.Client, hotelID uint) error {
	keys, err := rdb.Keys(ctx, fmt.Sprintf("availability:hotel:%d:*", hotelID)).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}
