package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pantrybase/pantrygo/internal/auth"
	"github.com/pantrybase/pantrygo/internal/config"
	"github.com/pantrybase/pantrygo/internal/database"
	"github.com/pantrybase/pantrygo/internal/gtin"
	"github.com/pantrybase/pantrygo/internal/handlers"
	"github.com/pantrybase/pantrygo/internal/inventory"
	"github.com/pantrybase/pantrygo/internal/models"
	"github.com/pantrybase/pantrygo/internal/services/pantrycloud"
	"github.com/pantrybase/pantrygo/internal/ws"
)

// engineNotifier fans sync events out to websocket clients and keeps
// the GTIN cache's power-user flag in step with the signed-in identity.
type engineNotifier struct {
	hub   *ws.Hub
	cache *gtin.Cache
	store *inventory.Store
}

func (n *engineNotifier) SyncStateChanged(state inventory.SyncState) {
	n.cache.SetPowerUser(n.store.IsPowerUser())
	n.hub.SyncStateChanged(state)
}

func (n *engineNotifier) ItemsChanged() {
	n.hub.ItemsChanged()
}

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (Detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Auto-Migrate Schema
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.InventoryItem{},
		&models.GTINItem{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	snapshots := database.NewSnapshotStore(db)

	// 4. Cloud client and engine services
	cloud := pantrycloud.NewClient(cfg.Cloud.Endpoint, cfg.Cloud.APIKey)

	session := auth.NewSessionProvider(cfg.JWTSecret)
	if cfg.Cloud.SessionToken != "" {
		session.SetToken(cfg.Cloud.SessionToken)
	}

	cache := gtin.NewCache(cloud)
	if records, err := snapshots.LoadGTINRecords(); err != nil {
		log.Printf("⚠️ Could not load GTIN cache: %v", err)
	} else if len(records) > 0 {
		cache.Restore(records)
		log.Printf("📦 Restored %d cached product codes", len(records))
	}

	store := inventory.NewStore(cloud, session, snapshots)

	hub := ws.NewHub()
	go hub.Run()

	store.SetNotifier(&engineNotifier{hub: hub, cache: cache, store: store})

	engineCtx, engineCancel := context.WithCancel(context.Background())
	defer engineCancel()

	log.Println("🔄 Initializing inventory sync engine...")
	if err := store.Init(engineCtx); err != nil {
		log.Fatalf("Failed to initialize sync engine: %v", err)
	}

	// 5. Set up HTTP router
	router := handlers.NewRouter(store, cache, session, snapshots, hub, cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Channel to listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	// Stop the sign-in poll and any in-flight reconciliation
	engineCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Persist the GTIN cache for the next run
	if err := snapshots.SaveGTINRecords(cache.Snapshot()); err != nil {
		log.Printf("⚠️ Could not persist GTIN cache: %v", err)
	}

	// Close database (this also stops embedded PostgreSQL)
	log.Println("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
