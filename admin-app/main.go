package main

import (
	"context"
	"errors"
	"log"

	httpapi "mezze/admin-app/internal/api/http"
	"mezze/config"
	"mezze/internal/events"
	"mezze/internal/gateway"
	"mezze/internal/localstore"
	"mezze/internal/mutate"
	"mezze/internal/scheduler"
	"mezze/internal/syncer"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	bus := events.NewBus()
	store := localstore.New(config.InitRedis(), bus)
	store.Seed()
	go store.ListenRemote(context.Background())

	client := gateway.NewClient(db)

	// No valid session means no sync at all: the operator has to log in
	// again, retrying here would never succeed.
	if err := client.CheckSession(context.Background(), config.AdminSessionToken()); err != nil {
		if errors.Is(err, gateway.ErrSessionMissing) {
			log.Fatal("Admin session missing or expired, refusing to start")
		}
		log.Println("Session check failed, continuing:", err)
	}

	broadcaster := gateway.NewBroadcaster(config.NewKafkaWriter(gateway.LiveTopic))
	defer broadcaster.Close()

	mutator := mutate.NewMutator(client, store, bus, broadcaster)

	admin := syncer.NewAdminEngine(client, store, bus)
	manager := scheduler.NewManager("admin", config.SyncInterval(), admin.Sync)
	manager.Start()
	defer manager.Stop()
	manager.Trigger("startup")

	// Broadcast events collapse into sync triggers: whatever changed, the
	// next pass mirrors it. Pings are dropped, they only prove liveness.
	listener := gateway.NewListener(config.NewKafkaReader(gateway.LiveTopic, "admin-app"))
	defer listener.Close()
	go listener.Run(context.Background(), func(ev gateway.LiveEvent) {
		if ev.Event == gateway.EventPing {
			return
		}
		manager.Trigger("realtime:" + ev.Event)
	})

	handler := httpapi.NewHandler(store, mutator, manager, bus, client)
	httpapi.StartServer(config.Addr("ADMIN_ADDR", ":8081"), httpapi.NewRouter(handler))
}
