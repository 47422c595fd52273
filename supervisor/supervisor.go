// Package supervisor owns process lifecycle: it brings the destination link
// up before the source link and tears them down in the reverse order.
package supervisor

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
)

var (
	ErrMissingConfig      = errors.New("supervisor config cannot be nil")
	ErrMissingSource      = errors.New("source cannot be nil")
	ErrMissingDestination = errors.New("destination cannot be nil")
	ErrMissingHandler     = errors.New("message handler cannot be nil")
	ErrDestinationConnect = errors.New("unable to connect to destination broker")
	ErrSourceConnect      = errors.New("unable to connect to source broker")
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . ISource
type ISource interface {
	Connect(ctx context.Context) error
	OnMessage(fn types.MessageHandler)
	Run(ctx context.Context) error
	Disconnect()
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . IDestination
type IDestination interface {
	Connect(ctx context.Context) error
	Disconnect()
}

type Config struct {
	Source      ISource
	Destination IDestination

	// Invoked once per inbound message, in arrival order
	Handler types.MessageHandler
}

type Supervisor struct {
	cfg *Config
	log *logrus.Entry
}

func New(cfg *Config) (*Supervisor, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to validate supervisor config")
	}

	return &Supervisor{
		cfg: cfg,
		log: logrus.WithField("pkg", "supervisor"),
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return ErrMissingConfig
	}

	if cfg.Source == nil {
		return ErrMissingSource
	}

	if cfg.Destination == nil {
		return ErrMissingDestination
	}

	if cfg.Handler == nil {
		return ErrMissingHandler
	}

	return nil
}

// Run connects the destination, then the source, and relays until ctx is
// cancelled. A startup connection failure is returned; cancellation is a
// graceful shutdown and returns nil.
func (s *Supervisor) Run(ctx context.Context) error {
	s.log.Info("Connecting to destination broker")

	if err := s.cfg.Destination.Connect(ctx); err != nil {
		s.log.Errorf("Cannot connect to destination broker: %s", err)
		return errors.Wrap(ErrDestinationConnect, err.Error())
	}

	s.cfg.Source.OnMessage(s.cfg.Handler)

	s.log.Info("Connecting to source broker")

	if err := s.cfg.Source.Connect(ctx); err != nil {
		s.log.Errorf("Cannot connect to source broker: %s", err)
		s.cfg.Destination.Disconnect()

		return errors.Wrap(ErrSourceConnect, err.Error())
	}

	s.log.Info("Relay running - interrupt to stop")

	runErr := s.cfg.Source.Run(ctx)
	if runErr != nil {
		s.log.Errorf("Receive loop exited: %s", runErr)
	}

	s.log.Info("Shutting down")

	s.cfg.Source.Disconnect()
	s.cfg.Destination.Disconnect()

	s.log.Info("Relay stopped")

	return runErr
}
