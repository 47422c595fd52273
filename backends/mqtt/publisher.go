package mqtt

import (
	"context"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
)

// PublisherConfig configures the destination link
type PublisherConfig struct {
	Conn *ConnConfig
}

// Publisher owns the connection to the destination broker. Once connected,
// keepalive and reconnection are handled by the client in the background.
type Publisher struct {
	*link
}

func NewPublisher(cfg *PublisherConfig) (*Publisher, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}

	l, err := newLink(cfg.Conn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to validate publisher config")
	}

	return &Publisher{link: l}, nil
}

// Connect establishes the session with the destination broker. A failure
// here is returned as a *ConnectionError and is fatal to the caller.
func (p *Publisher) Connect(ctx context.Context) error {
	opts, err := createClientOptions(p.cfg)
	if err != nil {
		return errors.Wrap(err, "unable to create client options")
	}

	opts.SetOnConnectHandler(p.onConnect)
	opts.SetConnectionLostHandler(p.onConnectionLost)
	opts.SetReconnectingHandler(p.onReconnecting)

	if err := p.connect(ctx, opts); err != nil {
		return err
	}

	p.setStatus(types.Connected, types.EventConnected, nil)
	p.log.Infof("Connected to %s", p.cfg.Address)

	return nil
}

// Publish hands one message to the client and returns without waiting for
// the broker. Nothing is queued while the link is down: the caller gets
// ErrNotConnected and the message is dropped.
func (p *Publisher) Publish(topic string, payload []byte, qos types.QoS) (*types.DeliveryHandle, error) {
	if err := ValidateTopicName(topic); err != nil {
		return nil, errors.Wrapf(err, "unable to publish to '%s'", topic)
	}

	if status := p.state.Status(); status != types.Connected {
		if p.client == nil || status == types.Disconnected || !p.client.IsConnectionOpen() {
			return nil, errors.Wrapf(ErrNotConnected, "destination link is %s", status)
		}

		// state was left behind by a late connection-lost handler
		p.setStatus(types.Connected, types.EventConnected, nil)
	}

	token := p.client.Publish(topic, byte(qos), false, payload)

	return types.NewDeliveryHandle(topic, qos, token), nil
}

// Disconnect closes the destination session. Unacknowledged deliveries may
// be abandoned.
func (p *Publisher) Disconnect() {
	p.disconnect()
}

// onConnect fires on the initial connect and on every automatic reconnect
func (p *Publisher) onConnect(_ pahomqtt.Client) {
	if p.state.Status() != types.Reconnecting {
		return
	}

	p.setStatus(types.Connected, types.EventConnected, nil)
	p.log.Infof("Reconnected to %s", p.cfg.Address)
}
