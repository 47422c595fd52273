package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/batchcorp/mqtt-relay/api"
	"github.com/batchcorp/mqtt-relay/backends/mqtt"
	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
	"github.com/batchcorp/mqtt-relay/options"
	"github.com/batchcorp/mqtt-relay/prometheus"
	"github.com/batchcorp/mqtt-relay/relay"
	"github.com/batchcorp/mqtt-relay/supervisor"
)

const (
	SourceLinkName      = "source"
	DestinationLinkName = "destination"

	apiShutdownTimeout = 5 * time.Second
)

func main() {
	opts, err := options.Handle(os.Args[1:])
	if err != nil {
		logrus.Fatalf("Unable to handle CLI input: %s", err)
	}

	configureLogging(opts)

	if err := options.Validate(opts); err != nil {
		logrus.Fatalf("Invalid configuration: %s", err)
	}

	if err := run(opts); err != nil {
		logrus.Fatalf("Unable to complete relay: %s", err)
	}
}

func configureLogging(opts *options.Options) {
	if opts.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// JSON formatter for log output if not running in a TTY - colors are fun!
	if opts.JSON || !term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func run(opts *options.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prometheus.InitPrometheusMetrics()

	if opts.Stats {
		looper := prometheus.Start(opts.StatsReportInterval)
		defer looper.Quit()
	}

	publisher, err := mqtt.NewPublisher(&mqtt.PublisherConfig{
		Conn: connConfig(DestinationLinkName, opts, opts.Destination),
	})
	if err != nil {
		return err
	}

	subscriber, err := mqtt.NewSubscriber(&mqtt.SubscriberConfig{
		Conn:    connConfig(SourceLinkName, opts, opts.Source),
		Topic:   opts.Topic,
		QoS:     types.ParseQoS(byte(opts.Source.QoS)),
		IDField: opts.IDField,
	})
	if err != nil {
		return err
	}

	r, err := relay.New(&relay.Config{
		Publisher:      publisher,
		PublishTimeout: opts.PublishTimeout,
	})
	if err != nil {
		return err
	}

	sup, err := supervisor.New(&supervisor.Config{
		Source:      subscriber,
		Destination: publisher,
		Handler:     r.Handler(),
	})
	if err != nil {
		return err
	}

	if opts.HTTPListenAddress != "" {
		srv := api.New(opts.HTTPListenAddress, options.VERSION, subscriber, publisher).Start()

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), apiShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logrus.Errorf("Unable to shutdown API server: %s", err)
			}
		}()
	}

	logrus.Infof("Relaying '%s' from %s to %s", opts.Topic, opts.Source.Address(), opts.Destination.Address())

	return sup.Run(ctx)
}

func connConfig(name string, opts *options.Options, link *options.LinkOptions) *mqtt.ConnConfig {
	return &mqtt.ConnConfig{
		Name:                 name,
		Address:              link.Address(),
		ClientID:             link.ClientID,
		Username:             link.Username,
		Password:             link.Password,
		KeepAlive:            opts.KeepAlive,
		ConnectTimeout:       opts.ConnectTimeout,
		MaxReconnectInterval: opts.MaxReconnectInterval,
		TLS:                  link.TLSOptions(),
		EventListener:        prometheus.RecordLinkEvent,
	}
}
