package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/puribeach/booking/internal/catalog"
	"github.com/puribeach/booking/internal/checkout"
	"github.com/puribeach/booking/internal/config"
	"github.com/puribeach/booking/internal/idgen/reference"
	"github.com/puribeach/booking/internal/logger"
	"github.com/puribeach/booking/internal/storage/memory"
	"github.com/puribeach/booking/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	// A missing .env is fine, the defaults cover local runs.
	if err := godotenv.Load(); err != nil {
		l.LogInfo("No .env file loaded: %v", err.Error())
	}

	conf, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	storage := memory.New(memory.Config{L: l})
	cat := catalog.New()

	l.LogInfo("Catalog ready: %v rooms, %v packages, %v reviews", len(cat.Rooms()), len(cat.Packages()), len(cat.Reviews()))

	refGen := reference.New()
	checkoutManager := checkout.New(l, storage, refGen)

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: time.Duration(conf.ReadHeaderTimeout),
		LivenessEndpoint:  conf.LivenessEndpoint,
		SessionCookie:     conf.SessionCookie,
	}

	srv, err := web.New(ctx, webConf, storage, cat, checkoutManager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
