// vendor-hub serves the simulated supplier ecosystem: every vendor's quote
// endpoint mounted under its own path prefix on one server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/config"
	"github.com/karthick-sothivelr/Autonomous-Supply-Chain-Intelligence/internal/httpapi"
)

func main() {
	cfg := config.LoadHub()

	vendors := httpapi.DefaultVendors()
	handler := httpapi.NewRouter(vendors)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Printf("vendor hub listening on :%s (%d vendors)", cfg.Port, len(vendors))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
