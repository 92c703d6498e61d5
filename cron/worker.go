package cron

import (
	"context"
	"time"

	"letsheal/config"
	"letsheal/services/tasks"
	"letsheal/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection shared by the producer and the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitVerificationWorker runs the booking verification worker in the background.
// The returned server is shut down by the caller.
func InitVerificationWorker(ctx context.Context, verifier *tasks.Verifier) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			RetryDelayFunc: func(n int, _ error, _ *asynq.Task) time.Duration {
				return time.Duration(n+1) * 2 * time.Minute
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeVerifyBooking, verifier.HandleVerifyBooking)

	go monitorQueueConnection(ctx)

	go func() {
		logger.Info("Starting booking verification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("Verification worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Verification worker gave up; quirk bookings will not be verified")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// monitorQueueConnection pings the queue Redis periodically to detect failures at runtime.
func monitorQueueConnection(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				utils.GetLogger().Warn("Queue Redis connection lost", zap.Error(err))
			}
		}
	}
}
