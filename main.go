package main

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/AjayPieris/wallet-server/api"
	"github.com/AjayPieris/wallet-server/internal/config"
	"github.com/AjayPieris/wallet-server/internal/logging"
	"github.com/AjayPieris/wallet-server/internal/operator"
	"github.com/AjayPieris/wallet-server/internal/ratelimit"
	"github.com/AjayPieris/wallet-server/internal/service"
	"github.com/AjayPieris/wallet-server/internal/storage"
)

const writeWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logrus.Info("wallet-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	// the only fatal-on-init step: the process must not serve without its table
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := dbStorage.EnsureSchema(initCtx); err != nil {
		logrus.WithError(err).Fatal("storage.EnsureSchema")
		return
	}
	logrus.Info("transactions table ensured")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     envConfig.RedisAddress,
		Password: envConfig.RedisPassword,
	})
	limiter := ratelimit.NewRedisLimiter(
		redisClient,
		envConfig.RateLimitRequests,
		time.Duration(envConfig.RateLimitWindowSeconds)*time.Second,
	)

	delegator := operator.NewOperatorDelegator(dbStorage, writeWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: delegator,
			Limiter:  limiter,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
