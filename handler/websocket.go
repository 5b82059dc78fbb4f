package handler

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"park_manager/system"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const statsChannel = "statistics"

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	statsClients = make(map[*websocket.Conn]bool)
	statsMu      sync.Mutex
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// PublishStats pushes the current totals onto the redis channel feeding the
// live dashboard. Failures only cost the live view, never the purchase.
func PublishStats() {
	stats := system.Ctrl.Stats()
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := redisClient.Publish(context.Background(), statsChannel, payload).Err(); err != nil {
		log.Printf("stats publish failed: %v", err)
	}
}

// StatsWebsocket streams statistics updates to admin dashboard connections.
// Each connection gets the current snapshot first, then every published
// update until it drops.
func StatsWebsocket(c *websocket.Conn) {
	defer func() {
		statsMu.Lock()
		delete(statsClients, c)
		statsMu.Unlock()
		c.Close()
	}()

	statsMu.Lock()
	statsClients[c] = true
	statsMu.Unlock()

	c.WriteJSON(system.Ctrl.Stats())

	pubsub := redisClient.Subscribe(context.Background(), statsChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		statsMu.Lock()
		for conn := range statsClients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(statsClients, conn)
			}
		}
		statsMu.Unlock()
	}
}
