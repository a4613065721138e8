package cron

import (
	"time"

	userRepo "routinely/database/repository/user"
	"routinely/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartSubscriptionSweeper runs a daily job that downgrades accounts whose
// paid or trial period has lapsed. Returns the scheduler so main can stop it
// on shutdown.
func StartSubscriptionSweeper(repo userRepo.UserRepository) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		expired, err := repo.ExpireSubscriptions(time.Now())
		if err != nil {
			logger.Error("Subscription sweep failed", zap.Error(err))
			return
		}
		if expired > 0 {
			logger.Info("Expired lapsed subscriptions", zap.Int64("count", expired))
		}
	})
	if err != nil {
		logger.Error("Failed to schedule subscription sweep", zap.Error(err))
		return c
	}

	c.Start()
	logger.Info("Subscription sweeper started")
	return c
}
