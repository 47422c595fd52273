package mqtt

import (
	"context"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
	"github.com/batchcorp/mqtt-relay/prometheus"
)

// DefaultResubscribeInterval is the pause between attempts to restore a
// subscription the broker refused after a reconnect
const DefaultResubscribeInterval = 5 * time.Second

// SubscriberConfig configures the source link. Topic is fixed for the
// lifetime of the link.
type SubscriberConfig struct {
	Conn *ConnConfig

	Topic string

	// Messages arrive at min(publisher QoS, subscription QoS), so the
	// subscription QoS caps what can be passed through to the destination.
	QoS types.QoS

	// JSON field expected in every payload; only used for warnings
	IDField string
}

// Subscriber owns the connection to the source broker. The subscription is
// issued from the on-connect handler so it is re-established after every
// reconnect.
type Subscriber struct {
	*link

	topic   string
	qos     types.QoS
	idField string

	handler types.MessageHandler

	inbound  chan *types.RelayMessage
	firstSub chan error
	stopCh   chan struct{}
	stopOnce sync.Once

	resubscribeInterval time.Duration
}

func NewSubscriber(cfg *SubscriberConfig) (*Subscriber, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}

	if err := ValidateTopicName(cfg.Topic); err != nil {
		return nil, errors.Wrapf(err, "unable to subscribe to '%s'", cfg.Topic)
	}

	l, err := newLink(cfg.Conn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to validate subscriber config")
	}

	return &Subscriber{
		link:     l,
		topic:    cfg.Topic,
		qos:      types.ParseQoS(byte(cfg.QoS)),
		idField:  cfg.IDField,
		inbound:  make(chan *types.RelayMessage),
		firstSub: make(chan error, 1),
		stopCh:   make(chan struct{}),

		resubscribeInterval: DefaultResubscribeInterval,
	}, nil
}

// OnMessage registers the callback invoked for every inbound message
func (s *Subscriber) OnMessage(fn types.MessageHandler) {
	s.handler = fn
}

// Connect establishes the source session and waits until the broker has
// acknowledged the subscription.
func (s *Subscriber) Connect(ctx context.Context) error {
	opts, err := createClientOptions(s.cfg)
	if err != nil {
		return errors.Wrap(err, "unable to create client options")
	}

	opts.SetOnConnectHandler(s.onConnect)
	opts.SetConnectionLostHandler(s.onConnectionLost)
	opts.SetReconnectingHandler(s.onReconnecting)

	if err := s.connect(ctx, opts); err != nil {
		return err
	}

	// subscribe timeout is enforced inside onConnect
	select {
	case err = <-s.firstSub:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		s.client.Disconnect(0)
		s.setStatus(types.Failed, types.EventConnectFailed, err)

		return &ConnectionError{
			Link:    s.cfg.Name,
			Address: s.cfg.Address,
			Err:     err,
		}
	}

	return nil
}

// Run processes inbound messages one at a time until ctx is cancelled.
// Each message is handed to the handler synchronously, so a slow handler
// throttles the rate at which the source is drained.
func (s *Subscriber) Run(ctx context.Context) error {
	if s.handler == nil {
		return ErrMissingHandler
	}

	s.log.Infof("Relay running on topic '%s'", s.topic)

	for {
		select {
		case <-ctx.Done():
			s.stop()
			s.log.Info("Receive loop stopped")

			return nil
		case msg := <-s.inbound:
			if ctx.Err() != nil {
				s.stop()
				s.log.WithField("topic", msg.Topic).Warning("Shutdown in progress, message not forwarded")

				return nil
			}

			s.dispatch(ctx, msg)
		}
	}
}

// Disconnect stops accepting messages and closes the source session
func (s *Subscriber) Disconnect() {
	s.stop()

	if s.client != nil && s.state.Status() == types.Subscribed {
		if err := waitToken(context.Background(), s.client.Unsubscribe(s.topic), s.cfg.ConnectTimeout); err != nil {
			s.log.Warningf("Unable to unsubscribe from '%s': %s", s.topic, err)
		}
	}

	s.disconnect()
}

func (s *Subscriber) stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

func (s *Subscriber) dispatch(ctx context.Context, msg *types.RelayMessage) {
	if err := inspectPayload(msg.Payload, s.idField); err != nil {
		prometheus.IncrPayloadWarnings()

		llog := s.log.WithField("topic", msg.Topic)

		switch errors.Cause(err) {
		case ErrMissingIDField, ErrPayloadNotMap:
			llog.Warningf("%s - forwarding anyway", err)
		default:
			llog.Warningf("%s - forwarding as-is", err)
		}
	}

	s.handler(ctx, msg)
}

// handleMessage runs on the client's router goroutine. It blocks until the
// receive loop takes the message, which keeps per-link ordering.
func (s *Subscriber) handleMessage(_ pahomqtt.Client, m pahomqtt.Message) {
	msg := types.FromMQTT(m)

	select {
	case s.inbound <- msg:
	case <-s.stopCh:
		s.log.WithField("topic", msg.Topic).Warning("Receive loop stopped, message not forwarded")
	}
}

// onConnect fires on the initial connect and on every automatic reconnect.
// Clean sessions do not keep subscriptions, so always subscribe again.
func (s *Subscriber) onConnect(client pahomqtt.Client) {
	reconnect := s.state.Status() == types.Reconnecting

	s.setStatus(types.Connected, types.EventConnected, nil)
	s.log.Infof("Connected to %s - subscribing to '%s'", s.cfg.Address, s.topic)

	err := s.subscribe(client)
	if err != nil {
		s.setStatus(types.Connected, types.EventSubscribeFailed, err)
		s.log.Errorf("Unable to subscribe to '%s': %s", s.topic, err)

		// a failed initial subscribe is reported by Connect instead
		if reconnect {
			go s.retrySubscribe(client)
		}
	} else {
		s.setStatus(types.Subscribed, types.EventSubscribed, nil)
		s.log.Infof("Subscribed to '%s' (%s)", s.topic, s.qos)
	}

	// only Connect reads this; later reconnects find it full or unread
	select {
	case s.firstSub <- err:
	default:
	}
}

// retrySubscribe keeps re-issuing the subscription while the connection is
// up. It gives up when the link stops or the connection drops again; the
// next on-connect subscribes anew.
func (s *Subscriber) retrySubscribe(client pahomqtt.Client) {
	for {
		select {
		case <-s.stopCh:
			return
		case <-time.After(s.resubscribeInterval):
		}

		if !client.IsConnectionOpen() || s.state.Status() != types.Connected {
			return
		}

		if err := s.subscribe(client); err != nil {
			s.setStatus(types.Connected, types.EventSubscribeFailed, err)
			s.log.Warningf("Unable to re-subscribe to '%s': %s - retrying in %s", s.topic, err, s.resubscribeInterval)

			continue
		}

		s.setStatus(types.Subscribed, types.EventSubscribed, nil)
		s.log.Infof("Re-subscribed to '%s' (%s)", s.topic, s.qos)

		return
	}
}

func (s *Subscriber) subscribe(client pahomqtt.Client) error {
	token := client.Subscribe(s.topic, byte(s.qos), s.handleMessage)

	if err := waitToken(context.Background(), token, s.cfg.ConnectTimeout); err != nil {
		return errors.Wrap(err, "subscribe failed")
	}

	// 0x80 in a SUBACK means the broker refused the filter
	if st, ok := token.(*pahomqtt.SubscribeToken); ok {
		for topic, code := range st.Result() {
			if code == 0x80 {
				return errors.Wrapf(ErrSubscribeFailed, "topic '%s'", topic)
			}
		}
	}

	return nil
}
