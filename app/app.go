package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openshelf/circulation/config"
	"github.com/openshelf/circulation/internal/docstore"
	"github.com/openshelf/circulation/internal/handler"
	"github.com/openshelf/circulation/internal/repository"
	"github.com/openshelf/circulation/internal/server"
	"github.com/openshelf/circulation/internal/service"
	"github.com/openshelf/circulation/migrations"
	"github.com/openshelf/circulation/pkg/auth"
	"github.com/openshelf/circulation/pkg/kafka"
	"github.com/openshelf/circulation/pkg/logger"
	"github.com/openshelf/circulation/pkg/postgres"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const holdSweepSchedule = "@every 1h"

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "circulation")
	auth.JWTKey = []byte(cfg.Auth.JWTSecret)

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	store := docstore.NewPostgres(db, log)
	repo, err := repository.NewRepository(store, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	if err := repo.EnsureSettings(context.Background()); err != nil {
		log.Fatal("seed settings", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	svc := service.NewService(repo, kafka.NewPublisher(producer), log)

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	group, err := kafka.NewConsumerGroup(cfg.Kafka, kafka.NotifierConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumerGroup", zap.Error(err))
	}
	go func() {
		if err := kafka.Consume(consumeCtx, group,
			handler.NewConsumer(handler.LogEmailHook(log), log),
			kafka.NotificationsTopic); err != nil {
			log.Error("kafka consume", zap.Error(err))
		}
	}()

	sweeper := cron.New()
	if _, err := sweeper.AddFunc(holdSweepSchedule, func() {
		if _, err := svc.SweepExpiredHolds(context.Background()); err != nil {
			log.Error("hold sweep", zap.Error(err))
		}
	}); err != nil {
		log.Fatal("cron", zap.Error(err))
	}
	sweeper.Start()

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	<-sweeper.Stop().Done()
	stopConsume()
	if err := group.Close(); err != nil {
		log.Error("consumer group close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
