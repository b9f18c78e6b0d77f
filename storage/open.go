package storage

import (
	"log"
	"os"
	"strconv"
	"strings"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return def
}

// Open selects a backend from STORE_BACKEND (redis, sqlite or memory,
// default sqlite). An unreachable backend is not fatal: Open logs a warning
// and falls back to the in-memory store so the service keeps working without
// durability.
func Open() KV {
	backend := strings.ToLower(getenv("STORE_BACKEND", "sqlite"))

	switch backend {
	case "redis":
		db := 0
		if s := os.Getenv("REDIS_DB"); s != "" {
			if v, err := strconv.Atoi(s); err == nil {
				db = v
			}
		}
		kv, err := NewRedis(getenv("REDIS_ADDR", "127.0.0.1:6379"), os.Getenv("REDIS_PASS"), db)
		if err != nil {
			log.Printf("[storage] redis unavailable, falling back to memory: %v", err)
			return NewMemory()
		}
		log.Printf("[storage] using redis backend")
		return kv
	case "memory":
		log.Printf("[storage] using in-memory backend (state is not durable)")
		return NewMemory()
	default:
		path := getenv("STORE_SQLITE_PATH", "offerwall.db")
		kv, err := NewSQLite(path)
		if err != nil {
			log.Printf("[storage] sqlite unavailable, falling back to memory: %v", err)
			return NewMemory()
		}
		log.Printf("[storage] using sqlite backend at %s", path)
		return kv
	}
}
