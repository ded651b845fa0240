package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/bellavista/ordering/internal/config"
	"github.com/bellavista/ordering/internal/httpx"
	kafkax "github.com/bellavista/ordering/internal/kafka"
	"github.com/bellavista/ordering/internal/menu"
	"github.com/bellavista/ordering/internal/metrics"
	"github.com/bellavista/ordering/internal/orders"
	"github.com/bellavista/ordering/internal/postgres"
	"github.com/bellavista/ordering/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB. A failed ping is not fatal: the menu serves demo data and each
	// submission surfaces its own persistence failure.
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Printf("db connect: %v (el menú usará datos demo)", err)
		db, err = pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres dsn: %v", err)
		}
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicPedidoCreado, 1024)
	prod.Start(ctx)

	// Handlers
	reg := metrics.New()
	router := httpx.NewRouter(reg)

	oh := &httpx.OrdersHandler{
		Repo:     &orders.Repo{DB: db},
		Producer: prod,
		Redis:    rdb,
		Metrics:  reg,
		Service:  cfg.ServiceName,
	}
	oh.Register(router)

	mh := &httpx.MenuHandler{
		Live:    &menu.LiveCatalog{DB: db},
		Static:  &menu.StaticCatalog{},
		Metrics: reg,
	}
	mh.Register(router)

	(&httpx.MetricsHandler{Registry: reg, DB: db}).Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // flush pending events
	cancel()
	prod.WaitClosed()
}
