package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/config"
	"github.com/Astemirdum/lending-service/internal/bootstrap"
	"github.com/Astemirdum/lending-service/internal/handler"
	"github.com/Astemirdum/lending-service/internal/repository"
	"github.com/Astemirdum/lending-service/internal/server"
	"github.com/Astemirdum/lending-service/internal/service"
	"github.com/Astemirdum/lending-service/migrations"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/postgres"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "lending")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	catalogRepo, err := repository.NewCatalogRepository(db, log)
	if err != nil {
		log.Fatal("catalog repo", zap.Error(err))
	}
	ledgerRepo, err := repository.NewLedgerRepository(db, log)
	if err != nil {
		log.Fatal("ledger repo", zap.Error(err))
	}

	if err := bootstrap.Seed(context.Background(), catalogRepo, log); err != nil {
		log.Fatal("bootstrap", zap.Error(err))
	}

	var events service.Publisher
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		events = kafka.NewPublisher(producer)
	}

	catalogSvc := service.NewCatalog(catalogRepo, log)
	ledgerSvc := service.NewLedger(catalogRepo, ledgerRepo, events, log)
	querySvc := service.NewQuery(catalogRepo, ledgerRepo, log)

	h := handler.New(catalogSvc, ledgerSvc, querySvc, log)
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
	db.Close()
	log.Info("Graceful shutdown finished")
}
