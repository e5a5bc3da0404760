package rdx

import (
	"log"
	"os"

	"medibay/globals"

	"github.com/redis/go-redis/v9"
)

var Conn = redis.NewClient(&redis.Options{
	Addr: redisAddr(),
})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// Ping verifies the connection at startup. A dead Redis degrades the
// handoff lock and the method cache; startup continues.
func Ping() {
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Println("Redis ping failed:", err)
	}
}
