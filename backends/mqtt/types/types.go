package types

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

var (
	ErrPublishTimeout = errors.New("timed out waiting for publish acknowledgement")
	ErrMissingToken   = errors.New("delivery handle has no token")
)

// QoS is the MQTT delivery guarantee level
type QoS byte

const (
	AtMostOnce  QoS = 0
	AtLeastOnce QoS = 1
	ExactlyOnce QoS = 2

	// DefaultQoS is used whenever a message does not carry a valid QoS
	DefaultQoS = AtLeastOnce
)

// ParseQoS converts a wire QoS byte; anything outside 0-2 maps to DefaultQoS
func ParseQoS(b byte) QoS {
	if b > byte(ExactlyOnce) {
		return DefaultQoS
	}

	return QoS(b)
}

func (q QoS) String() string {
	switch q {
	case AtMostOnce:
		return "at-most-once"
	case AtLeastOnce:
		return "at-least-once"
	case ExactlyOnce:
		return "exactly-once"
	}

	return fmt.Sprintf("unknown(%d)", byte(q))
}

// RelayMessage is a single message read off the source link and handed to
// the relay for forwarding. It is not modified after creation.
type RelayMessage struct {
	Topic      string
	Payload    []byte
	QoS        QoS
	ReceivedAt time.Time
}

// NewRelayMessage copies the payload so the message does not alias the
// client library's buffer
func NewRelayMessage(topic string, payload []byte, qos byte) *RelayMessage {
	p := make([]byte, len(payload))
	copy(p, payload)

	return &RelayMessage{
		Topic:      topic,
		Payload:    p,
		QoS:        ParseQoS(qos),
		ReceivedAt: time.Now().UTC(),
	}
}

// FromMQTT builds a RelayMessage from an inbound paho message
func FromMQTT(msg mqtt.Message) *RelayMessage {
	return NewRelayMessage(msg.Topic(), msg.Payload(), msg.Qos())
}

// MessageHandler is invoked by the subscriber link once per inbound message
type MessageHandler func(ctx context.Context, msg *RelayMessage)

// LinkStatus is the connection status of a single broker link
type LinkStatus int

const (
	Disconnected LinkStatus = iota
	Connecting
	Connected
	Subscribed
	Reconnecting
	Failed
)

func (s LinkStatus) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Subscribed:
		return "subscribed"
	case Reconnecting:
		return "reconnecting"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// LinkState is a point-in-time snapshot of a link's connection state
type LinkState struct {
	Status        LinkStatus `json:"-"`
	BrokerAddress string     `json:"broker_address"`
	LastError     error      `json:"-"`
}

// MarshalJSON renders status and error as strings for the health endpoint
func (l LinkState) MarshalJSON() ([]byte, error) {
	lastErr := ""
	if l.LastError != nil {
		lastErr = l.LastError.Error()
	}

	return json.Marshal(struct {
		Status        string `json:"status"`
		BrokerAddress string `json:"broker_address"`
		LastError     string `json:"last_error"`
	}{
		Status:        l.Status.String(),
		BrokerAddress: l.BrokerAddress,
		LastError:     lastErr,
	})
}

// StateHolder owns the mutable state of one link. Only that link's
// connection handlers write to it; anyone may read a snapshot.
type StateHolder struct {
	mu    sync.RWMutex
	state LinkState
}

func NewStateHolder(brokerAddress string) *StateHolder {
	return &StateHolder{
		state: LinkState{
			Status:        Disconnected,
			BrokerAddress: brokerAddress,
		},
	}
}

func (h *StateHolder) Set(status LinkStatus, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.Status = status

	if err != nil {
		h.state.LastError = err
	}
}

func (h *StateHolder) Snapshot() LinkState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}

func (h *StateHolder) Status() LinkStatus {
	return h.Snapshot().Status
}

// EventType enumerates link connection events
type EventType string

const (
	EventConnecting      EventType = "connecting"
	EventConnected       EventType = "connected"
	EventConnectFailed   EventType = "connect_failed"
	EventSubscribed      EventType = "subscribed"
	EventSubscribeFailed EventType = "subscribe_failed"
	EventConnectionLost  EventType = "connection_lost"
	EventReconnecting    EventType = "reconnecting"
	EventDisconnected    EventType = "disconnected"
)

// Event is emitted by a link whenever its connection state changes
type Event struct {
	Type EventType
	Link string
	Err  error
	At   time.Time
}

// EventListener receives link events. It is called inline from the link's
// handlers and must not block.
type EventListener func(Event)

// DeliveryHandle represents one in-flight publish attempt
type DeliveryHandle struct {
	Topic string
	QoS   QoS

	token mqtt.Token
}

func NewDeliveryHandle(topic string, qos QoS, token mqtt.Token) *DeliveryHandle {
	return &DeliveryHandle{
		Topic: topic,
		QoS:   qos,
		token: token,
	}
}

// MessageID returns the packet identifier assigned by the client. QoS 0
// publishes have no identifier and report 0.
func (d *DeliveryHandle) MessageID() uint16 {
	if d == nil || d.token == nil {
		return 0
	}

	if t, ok := d.token.(interface{ MessageID() uint16 }); ok {
		return t.MessageID()
	}

	return 0
}

// Wait blocks until the broker acknowledges the publish, the timeout
// elapses or ctx is cancelled. A zero timeout waits until ctx is done.
func (d *DeliveryHandle) Wait(ctx context.Context, timeout time.Duration) error {
	if d == nil || d.token == nil {
		return ErrMissingToken
	}

	var timer <-chan time.Time

	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case <-d.token.Done():
		return d.token.Error()
	case <-timer:
		return ErrPublishTimeout
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "publish abandoned")
	}
}
