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

	"github.com/mbeaudet/rendezvous/internal/catalog"
	"github.com/mbeaudet/rendezvous/internal/config"
	"github.com/mbeaudet/rendezvous/internal/idgen/uuidgen"
	"github.com/mbeaudet/rendezvous/internal/logger"
	"github.com/mbeaudet/rendezvous/internal/observability/metrics"
	"github.com/mbeaudet/rendezvous/internal/oracle/seeded"
	"github.com/mbeaudet/rendezvous/internal/schedule"
	"github.com/mbeaudet/rendezvous/internal/storage/memory"
	"github.com/mbeaudet/rendezvous/internal/transport/web"
	"github.com/mbeaudet/rendezvous/internal/wizard"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	cfg := config.Load()

	if cfg.Verbose {
		l = logger.NewVerbose(log.Default())
	}

	planner := schedule.New(schedule.Config{
		ClosedWeekdays: cfg.ClosedWeekdays,
		Policies: []schedule.HoursPolicy{
			&schedule.WeekdayHours{
				Days:  []time.Weekday{time.Saturday},
				Hours: schedule.DayHours{Open: cfg.OpenHour, Close: cfg.SaturdayCloseHour},
			},
			&schedule.StandardHours{
				Hours: schedule.DayHours{Open: cfg.OpenHour, Close: cfg.WeekdayCloseHour},
			},
		},
		Oracle: seeded.New(cfg.AvailabilitySeed),
	})

	services := catalog.Default()
	bookingMetrics := metrics.NewBookingMetrics(nil)
	idGen := uuidgen.New()

	var store *memory.Store

	store = memory.New(memory.Config{
		L: l,
		NewWizard: func() *wizard.Wizard {
			return wizard.New(wizard.Config{
				L:        l,
				Services: services,
				Planner:  planner,
				Sink:     store,
				IDGen:    idGen,
				Metrics:  bookingMetrics,
			})
		},
	})

	l.LogInfo("Catalog loaded with %v services", len(services))

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              cfg.Host,
		Port:              cfg.Port,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		LivenessEndpoint:  cfg.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, store, services)
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
