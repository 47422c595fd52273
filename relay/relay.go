package relay

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
	"github.com/batchcorp/mqtt-relay/prometheus"
	"github.com/batchcorp/mqtt-relay/util"
)

const (
	DefaultPublishTimeout = 5 * time.Second
)

var (
	ErrMissingConfig    = errors.New("relay config cannot be nil")
	ErrMissingPublisher = errors.New("publisher cannot be nil")
	ErrMissingMessage   = errors.New("message cannot be nil")
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . IPublisher
type IPublisher interface {
	Publish(topic string, payload []byte, qos types.QoS) (*types.DeliveryHandle, error)
}

type Relay struct {
	Config *Config
	log    *logrus.Entry
}

type Config struct {
	Publisher IPublisher

	// How long to wait for the destination broker to acknowledge a publish
	PublishTimeout time.Duration

	// Number of payload bytes included in log lines
	PreviewSize int
}

func New(relayCfg *Config) (*Relay, error) {
	if err := validateConfig(relayCfg); err != nil {
		return nil, errors.Wrap(err, "unable to complete relay config validation")
	}

	return &Relay{
		Config: relayCfg,
		log:    logrus.WithField("pkg", "relay"),
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return ErrMissingConfig
	}

	if cfg.Publisher == nil {
		return ErrMissingPublisher
	}

	if cfg.PublishTimeout <= 0 {
		logrus.Warningf("PublishTimeout must be > 0 - setting to default '%s'", DefaultPublishTimeout)
		cfg.PublishTimeout = DefaultPublishTimeout
	}

	if cfg.PreviewSize <= 0 {
		cfg.PreviewSize = util.DefaultPreviewSize
	}

	return nil
}

// Forward publishes one message to the destination on the same topic with
// the same QoS and waits for the broker's acknowledgement. The message is
// attempted exactly once; the returned error is informational and the
// caller should keep going.
func (r *Relay) Forward(ctx context.Context, msg *types.RelayMessage) error {
	if msg == nil {
		return ErrMissingMessage
	}

	prometheus.IncrReceived()

	llog := r.log.WithFields(logrus.Fields{
		"topic": msg.Topic,
		"qos":   int(msg.QoS),
	})

	llog.Infof("Received on '%s': %s", msg.Topic, util.Preview(msg.Payload, r.Config.PreviewSize))

	handle, err := r.Config.Publisher.Publish(msg.Topic, msg.Payload, msg.QoS)
	if err != nil {
		prometheus.IncrPublishErrors()
		llog.Errorf("Failed to publish to destination: %s", err)

		return errors.Wrap(err, "unable to publish message")
	}

	if err := handle.Wait(ctx, r.Config.PublishTimeout); err != nil {
		prometheus.IncrPublishErrors()
		llog.Errorf("Failed to publish to destination (mid=%d): %s", handle.MessageID(), err)

		return errors.Wrap(err, "publish was not acknowledged")
	}

	prometheus.IncrForwarded()
	llog.Infof("Forwarded to destination (mid=%d)", handle.MessageID())

	return nil
}

// Handler adapts Forward to the subscriber's callback signature. Errors are
// already logged by Forward.
func (r *Relay) Handler() types.MessageHandler {
	return func(ctx context.Context, msg *types.RelayMessage) {
		_ = r.Forward(ctx, msg)
	}
}
