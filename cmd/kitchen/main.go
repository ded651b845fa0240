package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bellavista/ordering/internal/config"
	kafkax "github.com/bellavista/ordering/internal/kafka"
	"github.com/bellavista/ordering/internal/kitchen"
	"github.com/bellavista/ordering/internal/orders"
	"github.com/bellavista/ordering/internal/postgres"
	"github.com/bellavista/ordering/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &kitchen.Service{
		Repo:        &orders.Repo{DB: db},
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-kitchen",
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.KitchenGroup, orders.TopicPedidoCreado, cfg.KitchenWorkers)

	go func() {
		log.Printf("kitchen consumer started: group=%s topic=%s workers=%d",
			cfg.KitchenGroup, orders.TopicPedidoCreado, cfg.KitchenWorkers)
		if err := cons.Start(ctx, svc.HandlePedidoCreado); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}
