package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/accountclient"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/http/controller"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/http/middleware"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/http/router"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/repository/postgres"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/config"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	migrationCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := postgres.RunMigrations(migrationCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	transactionRepo := postgres.NewTransactionRepository(db)
	accountClient := accountclient.NewClient(cfg.AccountServiceURL, cfg.AccountServiceTimeout)
	transactionService := services.NewTransactionService(transactionRepo, accountClient)
	transactionController := controller.NewTransactionController(transactionService)

	mux := router.New(transactionController, middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey))

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Printf("transaction service listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
