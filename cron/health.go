package cron

import (
	"context"

	"agencysite/database"
	"agencysite/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const healthSpec = "@every 1m"

// StartHealthMonitor pings Mongo and Redis once now and then every minute.
// The returned scheduler must be stopped on shutdown.
func StartHealthMonitor() (*cron.Cron, error) {
	check := func() {
		status := utils.RefreshHealth(context.Background(), utils.RedisClients(), database.MongoClient)
		if !status.Healthy() {
			utils.GetLogger().Warn("dependency health check failed",
				zap.Bool("mongo", status.Mongo), zap.Bools("redis", status.Redis))
		}
	}
	check()

	c := cron.New()
	if _, err := c.AddFunc(healthSpec, check); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
