package mqtt

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io/ioutil"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
)

const (
	BackendName = "mqtt"

	DefaultKeepAlive            = 60 * time.Second
	DefaultConnectTimeout       = 5 * time.Second
	DefaultMaxReconnectInterval = time.Minute

	// quiesce period (ms) given to in-flight work on disconnect
	DisconnectQuiesce = 250
)

var (
	ErrMissingConfig      = errors.New("link config cannot be nil")
	ErrMissingAddress     = errors.New("broker address cannot be empty")
	ErrMissingClientID    = errors.New("client id cannot be empty")
	ErrInvalidAddress     = errors.New("URI scheme must be ssl:// or tcp://")
	ErrMissingTLSKey      = errors.New("TLS key file cannot be blank if a TLS cert file is provided")
	ErrMissingTLSCert     = errors.New("TLS cert file cannot be blank if a TLS key file is provided")
	ErrInvalidTopicName   = errors.New("invalid topic name: empty, contains wildcards or illegal characters")
	ErrTokenTimeout       = errors.New("timed out waiting for broker response")
	ErrNotConnected       = errors.New("link is not connected")
	ErrSubscribeFailed    = errors.New("broker rejected subscription")
	ErrMissingHandler     = errors.New("message handler must be set before Run")
	ErrAlreadyConnected   = errors.New("link has already been connected")
	ErrInvalidKeepAlive   = errors.New("keepalive cannot be negative")
	ErrInvalidConnTimeout = errors.New("connect timeout cannot be negative")
)

// ConnConfig holds the connection settings shared by both links
type ConnConfig struct {
	// Name identifies the link in logs and metrics ("source", "destination")
	Name string

	// Address is a broker URI: tcp://host:port or ssl://host:port
	Address  string
	ClientID string
	Username string
	Password string

	KeepAlive            time.Duration
	ConnectTimeout       time.Duration
	MaxReconnectInterval time.Duration

	TLS *TLSOptions

	// Optional; receives every connection state change
	EventListener types.EventListener
}

type TLSOptions struct {
	CAFile     string
	CertFile   string
	KeyFile    string
	SkipVerify bool
}

// ConnectionError is returned when a link cannot establish its initial
// broker session. Err carries the underlying cause.
type ConnectionError struct {
	Link    string
	Address string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect %s link to %s: %s", e.Link, e.Address, e.Err)
}

// Cause lets errors.Cause reach the underlying error
func (e *ConnectionError) Cause() error { return e.Err }

func (e *ConnectionError) Unwrap() error { return e.Err }

// BrokerAddress builds the broker URI used by the paho client
func BrokerAddress(host string, port int, useTLS bool) string {
	scheme := "tcp"
	if useTLS {
		scheme = "ssl"
	}

	return fmt.Sprintf("%s://%s:%d", scheme, host, port)
}

// ValidateTopicName checks that a topic can be used for PUBLISH and for a
// plain (non-wildcard) SUBSCRIBE.
func ValidateTopicName(topic string) error {
	if topic == "" {
		return ErrInvalidTopicName
	}

	if strings.ContainsAny(topic, "+#") {
		return ErrInvalidTopicName
	}

	if !utf8.ValidString(topic) {
		return ErrInvalidTopicName
	}

	if strings.Contains(topic, "\u0000") {
		return ErrInvalidTopicName
	}

	return nil
}

// link is the connection plumbing shared by Publisher and Subscriber. Its
// state is only written from the owning link's methods and handlers.
type link struct {
	cfg    *ConnConfig
	client pahomqtt.Client
	state  *types.StateHolder
	log    *logrus.Entry

	// swapped out in tests
	newClient func(o *pahomqtt.ClientOptions) pahomqtt.Client
}

func newLink(cfg *ConnConfig) (*link, error) {
	if err := validateConnConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.KeepAlive == 0 {
		cfg.KeepAlive = DefaultKeepAlive
	}

	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}

	if cfg.MaxReconnectInterval == 0 {
		cfg.MaxReconnectInterval = DefaultMaxReconnectInterval
	}

	return &link{
		cfg:       cfg,
		state:     types.NewStateHolder(cfg.Address),
		newClient: pahomqtt.NewClient,
		log: logrus.WithFields(logrus.Fields{
			"pkg":  BackendName,
			"link": cfg.Name,
		}),
	}, nil
}

func validateConnConfig(cfg *ConnConfig) error {
	if cfg == nil {
		return ErrMissingConfig
	}

	if cfg.Address == "" {
		return ErrMissingAddress
	}

	if cfg.ClientID == "" {
		return ErrMissingClientID
	}

	if cfg.KeepAlive < 0 {
		return ErrInvalidKeepAlive
	}

	if cfg.ConnectTimeout < 0 {
		return ErrInvalidConnTimeout
	}

	if cfg.TLS != nil {
		if cfg.TLS.CertFile != "" && cfg.TLS.KeyFile == "" {
			return ErrMissingTLSKey
		}

		if cfg.TLS.KeyFile != "" && cfg.TLS.CertFile == "" {
			return ErrMissingTLSCert
		}
	}

	return nil
}

// Name returns the link name used in logs
func (l *link) Name() string {
	return l.cfg.Name
}

// State returns a snapshot of the link's connection state
func (l *link) State() types.LinkState {
	return l.state.Snapshot()
}

func (l *link) setStatus(status types.LinkStatus, event types.EventType, err error) {
	l.state.Set(status, err)

	if l.cfg.EventListener != nil {
		l.cfg.EventListener(types.Event{
			Type: event,
			Link: l.cfg.Name,
			Err:  err,
			At:   time.Now().UTC(),
		})
	}
}

// connect creates the client and waits for the broker's CONNACK. paho's
// own goroutines take over keepalive and reconnection afterwards.
func (l *link) connect(ctx context.Context, opts *pahomqtt.ClientOptions) error {
	if l.client != nil {
		return ErrAlreadyConnected
	}

	l.setStatus(types.Connecting, types.EventConnecting, nil)

	l.log.Debugf("Connecting to %s as client id '%s'", l.cfg.Address, l.cfg.ClientID)

	l.client = l.newClient(opts)

	if err := waitToken(ctx, l.client.Connect(), l.cfg.ConnectTimeout); err != nil {
		l.setStatus(types.Failed, types.EventConnectFailed, err)
		l.log.Errorf("Cannot connect to %s: %s", l.cfg.Address, err)

		return &ConnectionError{
			Link:    l.cfg.Name,
			Address: l.cfg.Address,
			Err:     err,
		}
	}

	return nil
}

// onConnectionLost runs on its own goroutine and can land after the
// automatic reconnect has already completed.
func (l *link) onConnectionLost(client pahomqtt.Client, err error) {
	if client != nil && client.IsConnectionOpen() {
		l.log.Debugf("Connection to %s lost (%s) but already re-established", l.cfg.Address, err)
		return
	}

	l.setStatus(types.Reconnecting, types.EventConnectionLost, err)
	l.log.Warningf("Unexpected disconnect from %s (%s) - reconnecting", l.cfg.Address, err)
}

func (l *link) onReconnecting(_ pahomqtt.Client, _ *pahomqtt.ClientOptions) {
	l.setStatus(types.Reconnecting, types.EventReconnecting, nil)
	l.log.Infof("Attempting to reconnect to %s", l.cfg.Address)
}

func (l *link) disconnect() {
	if l.client != nil {
		l.client.Disconnect(DisconnectQuiesce)
	}

	l.setStatus(types.Disconnected, types.EventDisconnected, nil)
	l.log.Infof("Disconnected from %s", l.cfg.Address)
}

func waitToken(ctx context.Context, token pahomqtt.Token, timeout time.Duration) error {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-token.Done():
		return token.Error()
	case <-t.C:
		return ErrTokenTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

func createClientOptions(cfg *ConnConfig) (*pahomqtt.ClientOptions, error) {
	uri, err := url.Parse(cfg.Address)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse address")
	}

	if uri.Scheme != "ssl" && uri.Scheme != "tcp" {
		return nil, ErrInvalidAddress
	}

	opts := pahomqtt.NewClientOptions()

	if uri.Scheme == "ssl" {
		tlsConfig, err := generateTLSConfig(cfg.TLS)
		if err != nil {
			return nil, errors.Wrap(err, "unable to generate TLS config")
		}

		opts.SetTLSConfig(tlsConfig)
	}

	opts.AddBroker(fmt.Sprintf("%s://%s", uri.Scheme, uri.Host))

	username := cfg.Username
	password := cfg.Password

	if username == "" && uri.User != nil {
		username = uri.User.Username()
		password, _ = uri.User.Password()
	}

	if username != "" {
		opts.SetUsername(username)
		opts.SetPassword(password)
	}

	opts.SetClientID(cfg.ClientID)
	opts.SetKeepAlive(cfg.KeepAlive)
	opts.SetConnectTimeout(cfg.ConnectTimeout)
	opts.SetCleanSession(true)
	opts.SetOrderMatters(true)

	// Initial connect failures are reported to the caller; only an
	// established session is reconnected automatically.
	opts.SetConnectRetry(false)
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(cfg.MaxReconnectInterval)

	return opts, nil
}

func generateTLSConfig(opts *TLSOptions) (*tls.Config, error) {
	if opts == nil {
		return &tls.Config{}, nil
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: opts.SkipVerify,
	}

	if opts.CAFile != "" {
		pemCerts, err := ioutil.ReadFile(opts.CAFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to read CA file")
		}

		certpool := x509.NewCertPool()

		if !certpool.AppendCertsFromPEM(pemCerts) {
			return nil, errors.New("no certificates found in CA file")
		}

		tlsConfig.RootCAs = certpool
	}

	if opts.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load ssl keypair")
		}

		cert.Leaf, err = x509.ParseCertificate(cert.Certificate[0])
		if err != nil {
			return nil, errors.Wrap(err, "unable to parse certificate")
		}

		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}
