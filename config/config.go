package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv nạp biến môi trường từ file .env nếu có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault lấy biến môi trường, trả về giá trị mặc định nếu trống
func GetEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
