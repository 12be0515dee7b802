package main

import (
	"context"
	"log"
	"time"

	"mezze/config"
	"mezze/internal/cart"
	"mezze/internal/events"
	"mezze/internal/gateway"
	"mezze/internal/localstore"
	"mezze/internal/mutate"
	"mezze/internal/scheduler"
	"mezze/internal/syncer"
	httpapi "mezze/public-app/internal/api/http"
	"mezze/public-app/internal/service"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	bus := events.NewBus()
	store := localstore.New(config.InitRedis(), bus)
	store.Seed()
	go store.ListenRemote(context.Background())

	client := gateway.NewClient(db)
	broadcaster := gateway.NewBroadcaster(config.NewKafkaWriter(gateway.LiveTopic))
	defer broadcaster.Close()

	cartSvc := cart.NewService(store)
	mutator := mutate.NewMutator(client, store, bus, broadcaster)

	catalog := syncer.NewCatalogEngine(client, store, bus)
	manager := scheduler.NewManager("catalog", config.SyncInterval(), func(ctx context.Context) error {
		_, _, err := catalog.Sync(ctx)
		return err
	})
	manager.Start()
	defer manager.Stop()

	if !manager.Trigger("startup") {
		log.Println("startup sync already in flight")
	}

	// Keepalive on the live channel so admin listeners can tell a quiet
	// night from a dead broker.
	go func() {
		ticker := time.NewTicker(25 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			broadcaster.Ping(context.Background(), gateway.EventPing, nil)
		}
	}()

	qr := service.DefaultQRGenerator{BaseURL: config.PublicBaseURL()}
	handler := httpapi.NewHandler(store, cartSvc, mutator, manager, bus, qr, config.PublicBaseURL())

	httpapi.StartServer(config.Addr("PUBLIC_ADDR", ":8080"), httpapi.NewRouter(handler))
}
