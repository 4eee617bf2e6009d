package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/db"
	"github.com/Halcyon-Media-LLC/signet/internal/http/middleware"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
	"github.com/Halcyon-Media-LLC/signet/internal/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	} else {
		log.Warn().Msg("REDIS_ADDRESS not set, running without cache")
	}

	// MQTT is a push optimization on top of polling, so a dead broker
	// must not block startup
	if env.MQTTBroker != "" {
		if err := middleware.InitMQTT(env.MQTTBroker, "signet-server"); err != nil {
			log.Error().Err(err).Msg("mqtt init failed, device refresh pushes disabled")
		}
		defer middleware.CleanupMQTT()
	}

	store := db.NewStore()
	storageSystem := InitStorage(env)

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	playout.StartCampaignSweeper(sweepCtx, store, env.SweepInterval, func(ctx context.Context) bool {
		return redis.TryLock(ctx, "campaign:sweep:lock", env.SweepInterval/2)
	})

	if env.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = 64 << 20

	RegisterRoutes(r, env, store, storageSystem)

	log.Info().Str("address", env.ServerAddress).Msg("server listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
