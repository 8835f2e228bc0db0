package cron

import (
	"context"
	"time"

	"playdash/config"
	"playdash/database/repository/sheets"
	"playdash/utils"

	cronv3 "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartCacheWarmer runs a background job that periodically re-fetches the
// catalog tabs so user requests mostly hit warm cache. Returns a stop
// function for graceful shutdown.
func StartCacheWarmer(store sheets.Store) func() {
	logger := utils.GetLogger()
	schedule := config.AppConfig.CacheWarmSchedule
	if schedule == "" {
		schedule = "@every 5m"
	}

	c := cronv3.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.WarmCache(ctx); err != nil {
			logger.Warn("cache warm failed", zap.Error(err))
			return
		}
		logger.Debug("cache warmed", zap.String("schedule", schedule))
	})
	if err != nil {
		logger.Error("invalid cache warm schedule, warmer disabled", zap.String("schedule", schedule), zap.Error(err))
		return func() {}
	}

	c.Start()
	logger.Sugar().Infof("cache warmer started (%s)", schedule)
	return func() {
		c.Stop()
	}
}
