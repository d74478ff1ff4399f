package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/juho05/log"
	"github.com/juho05/wavedial/auth"
	"github.com/juho05/wavedial/config"
	"github.com/juho05/wavedial/favorites"
	"github.com/juho05/wavedial/handlers"
	"github.com/juho05/wavedial/repos/postgres"
	"github.com/juho05/wavedial/stations"
	"github.com/juho05/wavedial/upload"
)

func run(conf config.Config) error {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", conf.DBUser, conf.DBPassword, conf.DBHost, conf.DBPort, conf.DBName)
	db, err := postgres.NewDB(dsn, conf)
	if err != nil {
		return err
	}
	defer db.Close()

	uploads, err := upload.NewHandler(conf.ImageDir())
	if err != nil {
		return err
	}

	authService := auth.NewService(db, conf.SessionLifetime)
	stationService := stations.NewService(db)
	favoriteService := favorites.NewService(db)

	handler := handlers.New(db, authService, stationService, favoriteService, uploads, conf.SecureCookies)

	addr := conf.ListenAddr

	server := http.Server{
		Addr:     addr,
		Handler:  handler,
		ErrorLog: log.NewStdLogger(log.ERROR),
	}

	closed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		timeout, cancelTimeout := context.WithTimeout(context.Background(), 5*time.Second)
		log.Info("Shutting down...")
		server.Shutdown(timeout)
		cancelTimeout()
		close(closed)
	}()

	log.Infof("Listening on http://%s...", addr)
	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if err == nil {
		<-closed
	}
	return err
}

func main() {
	godotenv.Load()

	conf, errs := config.Load(os.Environ())
	if len(errs) > 0 {
		for _, e := range errs {
			log.Errorf("ERROR: %s", e)
		}
		log.Fatalf("ERROR: failed to load config")
	}

	log.SetSeverity(conf.LogLevel)
	log.SetOutput(conf.LogFile)

	err := run(conf)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	log.Info("Shutdown complete.")
}
