package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of the storage backend.
type HealthStatus struct {
	Storage   string    `json:"storage"`
	Mongo     bool      `json:"mongo"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{Storage: "memory"}
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func setHealth(h HealthStatus) {
	mu.Lock()
	currentHealth = h
	mu.Unlock()
}

// StartHealthMonitor pings MongoDB every interval until ctx is done. With a
// nil client the snapshot reports in-memory storage and no pinging happens.
func StartHealthMonitor(ctx context.Context, mongoClient *mongo.Client, interval time.Duration) {
	if mongoClient == nil {
		setHealth(HealthStatus{Storage: "memory", CheckedAt: time.Now()})
		return
	}
	check := func() {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		setHealth(HealthStatus{
			Storage:   "mongo",
			Mongo:     mongoClient.Ping(pingCtx, nil) == nil,
			CheckedAt: time.Now(),
		})
	}
	check()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				check()
			}
		}
	}()
}
