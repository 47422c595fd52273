// Singleton so that it's easier to use in other packages
package prometheus

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/relistan/go-director"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
)

const (
	RelayMessagesReceived  = "relay_messages_received_total"
	RelayMessagesForwarded = "relay_messages_forwarded_total"
	RelayPublishErrors     = "relay_publish_errors_total"
	RelayPayloadWarnings   = "relay_payload_warnings_total"
	RelayLinkEvents        = "relay_link_events_total"
	RelayLinkUp            = "relay_link_up"

	// keys used by the STATS log reporter
	StatsReceived  = "relay-received"
	StatsForwarded = "relay-forwarded"
	StatsErrors    = "relay-errors"
)

var (
	mutex    = &sync.Mutex{}
	counters = make(map[string]float64, 0)

	initOnce sync.Once

	prometheusMutex       = &sync.RWMutex{}
	prometheusCounters    = make(map[string]prometheus.Counter)
	prometheusVecCounters = make(map[string]*prometheus.CounterVec)
	prometheusVecGauges   = make(map[string]*prometheus.GaugeVec)

	looper director.Looper
)

// Start initiates STATS log reporting. The looper is returned so callers
// can stop it on shutdown.
func Start(interval time.Duration) director.Looper {
	looper = director.NewTimedLooper(director.FOREVER, interval, make(chan error, 1))

	logrus.Debugf("Launching stats reporter ('%s' interval)", interval)

	go func() {
		looper.Loop(func() error {
			report(interval)
			return nil
		})
	}()

	return looper
}

func report(interval time.Duration) {
	mutex.Lock()
	defer mutex.Unlock()

	for counterName, counterValue := range counters {
		perSecond := counterValue / interval.Seconds()

		logrus.Infof("STATS [%s]: %.0f / %s (%.2f/s)", counterName, counterValue,
			interval, perSecond)

		// Reset it
		counters[counterName] = 0
	}
}

// InitPrometheusMetrics sets up prometheus counters/gauges. Safe to call
// more than once.
func InitPrometheusMetrics() {
	initOnce.Do(func() {
		prometheusMutex.Lock()
		defer prometheusMutex.Unlock()

		prometheusCounters[RelayMessagesReceived] = promauto.NewCounter(prometheus.CounterOpts{
			Name: RelayMessagesReceived,
			Help: "Total number of messages received from the source broker",
		})

		prometheusCounters[RelayMessagesForwarded] = promauto.NewCounter(prometheus.CounterOpts{
			Name: RelayMessagesForwarded,
			Help: "Total number of messages acknowledged by the destination broker",
		})

		prometheusCounters[RelayPublishErrors] = promauto.NewCounter(prometheus.CounterOpts{
			Name: RelayPublishErrors,
			Help: "Total number of messages that could not be published to the destination broker",
		})

		prometheusCounters[RelayPayloadWarnings] = promauto.NewCounter(prometheus.CounterOpts{
			Name: RelayPayloadWarnings,
			Help: "Number of payloads that were not JSON or were missing the identifying field",
		})

		prometheusVecCounters[RelayLinkEvents] = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: RelayLinkEvents,
			Help: "Connection events by link and event type",
		}, []string{"link", "event"})

		prometheusVecGauges[RelayLinkUp] = promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: RelayLinkUp,
			Help: "1 when the link is able to relay messages, 0 otherwise",
		}, []string{"link"})
	})
}

// IncrPromCounter increments a prometheus counter by the given amount.
// Unknown counters are ignored.
func IncrPromCounter(key string, amount float64) {
	prometheusMutex.RLock()
	defer prometheusMutex.RUnlock()

	c, ok := prometheusCounters[key]
	if !ok {
		return
	}

	c.Add(amount)
}

// GetCounter returns nil for unknown counters
func GetCounter(name string) prometheus.Counter {
	prometheusMutex.RLock()
	defer prometheusMutex.RUnlock()

	return prometheusCounters[name]
}

func GetVecCounter(name string) *prometheus.CounterVec {
	prometheusMutex.RLock()
	defer prometheusMutex.RUnlock()

	return prometheusVecCounters[name]
}

// SetLinkUp sets the relay_link_up gauge for a link
func SetLinkUp(link string, up bool) {
	prometheusMutex.RLock()
	defer prometheusMutex.RUnlock()

	g, ok := prometheusVecGauges[RelayLinkUp]
	if !ok {
		return
	}

	value := 0.0
	if up {
		value = 1
	}

	g.WithLabelValues(link).Set(value)
}

// RecordLinkEvent is a types.EventListener that keeps the link metrics
// current
func RecordLinkEvent(e types.Event) {
	if c := GetVecCounter(RelayLinkEvents); c != nil {
		c.WithLabelValues(e.Link, string(e.Type)).Inc()
	}

	switch e.Type {
	case types.EventConnected, types.EventSubscribed:
		SetLinkUp(e.Link, true)
	case types.EventConnectionLost, types.EventReconnecting, types.EventDisconnected,
		types.EventConnectFailed, types.EventSubscribeFailed:
		SetLinkUp(e.Link, false)
	}

	if e.Err != nil {
		logrus.WithField("pkg", "prometheus").Debugf("%s link event '%s': %s", e.Link, e.Type, e.Err)
	}
}

func IncrReceived() {
	Incr(StatsReceived, 1)
	IncrPromCounter(RelayMessagesReceived, 1)
}

func IncrForwarded() {
	Incr(StatsForwarded, 1)
	IncrPromCounter(RelayMessagesForwarded, 1)
}

func IncrPublishErrors() {
	Incr(StatsErrors, 1)
	IncrPromCounter(RelayPublishErrors, 1)
}

func IncrPayloadWarnings() {
	IncrPromCounter(RelayPayloadWarnings, 1)
}

// Incr increments a STATS counter by the given amount
func Incr(name string, value float64) {
	mutex.Lock()
	defer mutex.Unlock()

	counters[name] += value
}

// Get returns the current value of a STATS counter
func Get(name string) float64 {
	mutex.Lock()
	defer mutex.Unlock()

	return counters[name]
}
