package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/airnav/flight-advisor/internal/app/api"
	app "github.com/airnav/flight-advisor/internal/app/flight-advisor"
	"github.com/airnav/flight-advisor/internal/pkg/client"
	"github.com/airnav/flight-advisor/internal/pkg/storage"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"
)

const serviceName string = "flight-advisor"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx, log, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	var opa, cfgFile, seedFile string

	flag.StringVar(&opa, "policies", "/opt/airnav/config/authz.rego", "An authorization policy file")
	flag.StringVar(&cfgFile, "config", "/opt/airnav/config/advisor.yaml", "A configuration file")
	flag.StringVar(&seedFile, "jurisdictions", "/opt/airnav/config/jurisdictions.csv", "A file with jurisdictions")
	flag.Parse()

	s, err := storage.New(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		log.Error("could not configure storage", "err", err.Error())
		os.Exit(1)
	}

	provider := client.New(
		os.Getenv("AIRSPACE_SERVICE_URL"),
		os.Getenv("AIRSPACE_SERVICE_API_KEY"),
	)

	config := messaging.LoadConfiguration(ctx, serviceName, log)
	messenger, err := messaging.Initialize(ctx, config)
	if err != nil {
		log.Error("failed to init messenger")
		os.Exit(1)
	}

	a := app.New(s, s, provider, messenger)

	err = loadConfigFile(ctx, cfgFile, a)
	if err != nil {
		log.Error("config file found but could not be loaded", "err", err.Error())
		os.Exit(1)
	}

	err = seed(ctx, seedFile, a)
	if err != nil {
		log.Error("file with jurisdictions found but could not seed data", "err", err.Error())
		os.Exit(1)
	}

	r, err := newRouter(ctx, opa, a)
	if err != nil {
		log.Error("could not setup router", "err", err.Error())
		os.Exit(1)
	}

	messenger.Start()
	messenger.RegisterTopicMessageHandler("flight.position", app.NewPositionHandler(a, messenger))

	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err = scheduler.AddFunc("@every 5m", func() {
		if err := a.RefreshWatchAreas(ctx); err != nil {
			log.Error("could not refresh watch areas", "err", err.Error())
		}
	})
	if err != nil {
		log.Error("could not schedule watch area refresh", "err", err.Error())
		os.Exit(1)
	}
	scheduler.Start()

	webServer := &http.Server{Addr: ":8080", Handler: r}

	go func() {
		if err := webServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("could not listen and serve", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	scheduler.Stop()
	webServer.Shutdown(ctx)
	messenger.Close()
	s.Close()
}

func newRouter(ctx context.Context, opa string, a app.AdvisorApp) (*chi.Mux, error) {
	policies, err := os.Open(opa)
	if err != nil {
		return nil, fmt.Errorf("unable to open opa policy file: %s", err.Error())
	}
	defer policies.Close()

	r, err := api.Register(ctx, a, policies)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func loadConfigFile(ctx context.Context, fp string, a app.AdvisorApp) error {
	log := logging.GetFromContext(ctx)
	f, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no config file found", "path", fp)
			return nil
		}
		return err
	}
	defer f.Close()

	return a.LoadConfig(ctx, f)
}

func seed(ctx context.Context, fp string, a app.AdvisorApp) error {
	log := logging.GetFromContext(ctx)
	jurisdictions, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no file with jurisdictions found", "path", fp)
			return nil
		}
		return err
	}
	defer jurisdictions.Close()

	return a.Seed(ctx, jurisdictions)
}
