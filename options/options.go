// Package options holds every setting the relay accepts. Each option can be
// given as a flag or through its environment variable; the result is built
// once at startup and not modified afterwards.
package options

import (
	"time"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/batchcorp/mqtt-relay/backends/mqtt"
	"github.com/batchcorp/mqtt-relay/validate"
)

var (
	VERSION = "UNSET"
)

const (
	DefaultTopic   = "rfid/scan"
	DefaultIDField = mqtt.DefaultIDField

	DefaultSourceClientID      = "relay-mosquitto-subscriber"
	DefaultDestinationClientID = "relay-rabbitmq-publisher"
)

type Options struct {
	Debug bool
	JSON  bool

	Stats               bool
	StatsReportInterval time.Duration

	// Empty disables the HTTP server
	HTTPListenAddress string

	// Topic is relayed from source to destination unchanged
	Topic   string
	IDField string

	KeepAlive            time.Duration
	ConnectTimeout       time.Duration
	PublishTimeout       time.Duration
	MaxReconnectInterval time.Duration

	Source      *LinkOptions
	Destination *LinkOptions
}

// LinkOptions describes one broker connection
type LinkOptions struct {
	Host     string
	Port     int
	ClientID string
	Username string
	Password string

	// Subscription QoS; only used by the source link
	QoS int

	UseTLS            bool
	TLSCAFile         string
	TLSClientCertFile string
	TLSClientKeyFile  string
	InsecureTLS       bool
}

// Address returns the broker URI for the link
func (l *LinkOptions) Address() string {
	return mqtt.BrokerAddress(l.Host, l.Port, l.UseTLS)
}

// TLSOptions returns nil when TLS is disabled
func (l *LinkOptions) TLSOptions() *mqtt.TLSOptions {
	if !l.UseTLS {
		return nil
	}

	return &mqtt.TLSOptions{
		CAFile:     l.TLSCAFile,
		CertFile:   l.TLSClientCertFile,
		KeyFile:    l.TLSClientKeyFile,
		SkipVerify: l.InsecureTLS,
	}
}

// Handle parses args (and the environment) into Options
func Handle(args []string) (*Options, error) {
	opts := &Options{
		Source:      &LinkOptions{},
		Destination: &LinkOptions{},
	}

	app := newApp(opts)

	if _, err := app.Parse(args); err != nil {
		return nil, errors.Wrap(err, "unable to parse options")
	}

	return opts, nil
}

// newApp binds every flag to opts
func newApp(opts *Options) *kingpin.Application {
	app := kingpin.New("mqtt-relay", "Relay messages from one MQTT broker to another")
	app.Version(VERSION)
	app.HelpFlag.Short('h')

	app.Flag("debug", "Enable debug output").
		Short('d').
		Envar("RELAY_DEBUG").
		BoolVar(&opts.Debug)

	app.Flag("json", "Always use JSON log output").
		Envar("RELAY_JSON_LOGS").
		BoolVar(&opts.JSON)

	app.Flag("stats", "Periodically log relay throughput").
		Envar("RELAY_STATS").
		BoolVar(&opts.Stats)

	app.Flag("stats-report-interval", "How often to log throughput").
		Envar("RELAY_STATS_REPORT_INTERVAL").
		Default("10s").
		DurationVar(&opts.StatsReportInterval)

	app.Flag("http-listen-address", "Health check and metrics listen address (empty to disable)").
		Envar("RELAY_HTTP_LISTEN_ADDRESS").
		Default(":8080").
		StringVar(&opts.HTTPListenAddress)

	app.Flag("topic", "Topic to relay").
		Envar("RFID_TOPIC").
		Default(DefaultTopic).
		StringVar(&opts.Topic)

	app.Flag("id-field", "JSON field every payload is expected to carry (empty to disable the check)").
		Envar("RELAY_ID_FIELD").
		Default(DefaultIDField).
		StringVar(&opts.IDField)

	app.Flag("keepalive", "Keepalive interval for both links").
		Envar("RELAY_KEEPALIVE").
		Default("60s").
		DurationVar(&opts.KeepAlive)

	app.Flag("connect-timeout", "How long to wait for a broker to accept a connection").
		Envar("RELAY_CONNECT_TIMEOUT").
		Default("5s").
		DurationVar(&opts.ConnectTimeout)

	app.Flag("publish-timeout", "How long to wait for the destination to acknowledge a message").
		Envar("RELAY_PUBLISH_TIMEOUT").
		Default("5s").
		DurationVar(&opts.PublishTimeout)

	app.Flag("max-reconnect-interval", "Upper bound for the reconnect backoff").
		Envar("RELAY_MAX_RECONNECT_INTERVAL").
		Default("1m").
		DurationVar(&opts.MaxReconnectInterval)

	addSourceFlags(app, opts.Source)
	addDestinationFlags(app, opts.Destination)

	return app
}

func addSourceFlags(app *kingpin.Application, opts *LinkOptions) {
	app.Flag("source-host", "Source (Mosquitto) broker host").
		Envar("MOSQUITTO_HOST").
		Default("localhost").
		StringVar(&opts.Host)

	app.Flag("source-port", "Source broker port").
		Envar("MOSQUITTO_PORT").
		Default("1883").
		IntVar(&opts.Port)

	app.Flag("source-client-id", "Client id presented to the source broker").
		Envar("MOSQUITTO_CLIENT_ID").
		Default(DefaultSourceClientID).
		StringVar(&opts.ClientID)

	app.Flag("source-user", "Source broker username").
		Envar("MOSQUITTO_USER").
		StringVar(&opts.Username)

	app.Flag("source-pass", "Source broker password").
		Envar("MOSQUITTO_PASS").
		StringVar(&opts.Password)

	app.Flag("source-qos", "QoS used for the source subscription (0, 1, 2). Messages arrive at no more than this QoS and are republished at the QoS they arrived with, so it also caps the destination QoS").
		Envar("MOSQUITTO_QOS").
		Default("2").
		IntVar(&opts.QoS)

	addTLSFlags(app, "source", "MOSQUITTO", opts)
}

func addDestinationFlags(app *kingpin.Application, opts *LinkOptions) {
	app.Flag("dest-host", "Destination (RabbitMQ) broker host").
		Envar("RABBITMQ_HOST").
		Default("localhost").
		StringVar(&opts.Host)

	app.Flag("dest-port", "Destination broker port").
		Envar("RABBITMQ_PORT").
		Default("1883").
		IntVar(&opts.Port)

	app.Flag("dest-client-id", "Client id presented to the destination broker").
		Envar("RABBITMQ_CLIENT_ID").
		Default(DefaultDestinationClientID).
		StringVar(&opts.ClientID)

	app.Flag("dest-user", "Destination broker username").
		Envar("RABBITMQ_USER").
		Default("guest").
		StringVar(&opts.Username)

	app.Flag("dest-pass", "Destination broker password").
		Envar("RABBITMQ_PASS").
		Default("guest").
		StringVar(&opts.Password)

	addTLSFlags(app, "dest", "RABBITMQ", opts)
}

func addTLSFlags(app *kingpin.Application, prefix, envPrefix string, opts *LinkOptions) {
	app.Flag(prefix+"-tls", "Connect using ssl://").
		Envar(envPrefix + "_TLS").
		BoolVar(&opts.UseTLS)

	app.Flag(prefix+"-tls-ca-file", "CA file").
		Envar(envPrefix + "_TLS_CA_FILE").
		ExistingFileVar(&opts.TLSCAFile)

	app.Flag(prefix+"-tls-client-cert-file", "Client cert file").
		Envar(envPrefix + "_TLS_CERT_FILE").
		ExistingFileVar(&opts.TLSClientCertFile)

	app.Flag(prefix+"-tls-client-key-file", "Client key file").
		Envar(envPrefix + "_TLS_KEY_FILE").
		ExistingFileVar(&opts.TLSClientKeyFile)

	app.Flag(prefix+"-insecure-tls", "Skip server certificate verification").
		Envar(envPrefix + "_TLS_SKIP_VERIFY").
		BoolVar(&opts.InsecureTLS)
}

// Validate performs "light" validation of parsed options
func Validate(opts *Options) error {
	if opts == nil {
		return validate.ErrMissingOptions
	}

	if opts.Topic == "" {
		return validate.ErrMissingTopic
	}

	if err := mqtt.ValidateTopicName(opts.Topic); err != nil {
		return validate.ErrInvalidTopic
	}

	if opts.KeepAlive <= 0 {
		return validate.ErrInvalidKeepAlive
	}

	if opts.ConnectTimeout <= 0 || opts.PublishTimeout <= 0 || opts.MaxReconnectInterval <= 0 {
		return validate.ErrInvalidTimeout
	}

	if opts.Stats && opts.StatsReportInterval <= 0 {
		return validate.ErrInvalidInterval
	}

	if err := validateLink(opts.Source); err != nil {
		return errors.Wrap(err, "invalid source options")
	}

	if opts.Source.QoS < 0 || opts.Source.QoS > 2 {
		return errors.Wrap(validate.ErrInvalidQoS, "invalid source options")
	}

	if err := validateLink(opts.Destination); err != nil {
		return errors.Wrap(err, "invalid destination options")
	}

	return nil
}

func validateLink(l *LinkOptions) error {
	if l == nil {
		return validate.ErrMissingLinkOptions
	}

	if l.Host == "" {
		return validate.ErrMissingHost
	}

	if l.Port < 1 || l.Port > 65535 {
		return validate.ErrInvalidPort
	}

	if l.ClientID == "" {
		return validate.ErrMissingClientID
	}

	if l.TLSClientCertFile != "" && l.TLSClientKeyFile == "" {
		return validate.ErrMissingTLSKey
	}

	if l.TLSClientKeyFile != "" && l.TLSClientCertFile == "" {
		return validate.ErrMissingTLSCert
	}

	return nil
}

