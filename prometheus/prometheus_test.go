package prometheus

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
)

var _ = Describe("Prometheus", func() {
	BeforeEach(func() {
		InitPrometheusMetrics()
	})

	Context("InitPrometheusMetrics", func() {
		It("can be called more than once", func() {
			Expect(func() { InitPrometheusMetrics() }).ToNot(Panic())
		})
	})

	Context("counters", func() {
		It("counts forwarded messages", func() {
			before := testutil.ToFloat64(prometheusCounters[RelayMessagesForwarded])
			stats := Get(StatsForwarded)

			IncrForwarded()

			Expect(testutil.ToFloat64(prometheusCounters[RelayMessagesForwarded])).To(Equal(before + 1))
			Expect(Get(StatsForwarded)).To(Equal(stats + 1))
		})

		It("counts publish errors", func() {
			before := testutil.ToFloat64(prometheusCounters[RelayPublishErrors])

			IncrPublishErrors()

			Expect(testutil.ToFloat64(prometheusCounters[RelayPublishErrors])).To(Equal(before + 1))
		})

		It("looks up counters by name", func() {
			Expect(GetCounter(RelayPayloadWarnings)).ToNot(BeNil())
			Expect(GetCounter("does_not_exist")).To(BeNil())
		})

		It("ignores unknown counters", func() {
			Expect(func() { IncrPromCounter("does_not_exist", 1) }).ToNot(Panic())
		})
	})

	Context("RecordLinkEvent", func() {
		It("tracks link up/down", func() {
			gauge := prometheusVecGauges[RelayLinkUp]

			RecordLinkEvent(types.Event{Type: types.EventConnected, Link: "destination"})
			Expect(testutil.ToFloat64(gauge.WithLabelValues("destination"))).To(Equal(1.0))

			RecordLinkEvent(types.Event{Type: types.EventConnectionLost, Link: "destination", Err: errors.New("EOF")})
			Expect(testutil.ToFloat64(gauge.WithLabelValues("destination"))).To(Equal(0.0))
		})

		It("counts events by link and type", func() {
			counter := GetVecCounter(RelayLinkEvents).WithLabelValues("source", "subscribed")
			before := testutil.ToFloat64(counter)

			RecordLinkEvent(types.Event{Type: types.EventSubscribed, Link: "source"})

			Expect(testutil.ToFloat64(counter)).To(Equal(before + 1))
		})

		It("marks the source down when a subscription fails", func() {
			gauge := prometheusVecGauges[RelayLinkUp]

			RecordLinkEvent(types.Event{Type: types.EventSubscribed, Link: "source"})
			Expect(testutil.ToFloat64(gauge.WithLabelValues("source"))).To(Equal(1.0))

			RecordLinkEvent(types.Event{Type: types.EventSubscribeFailed, Link: "source", Err: errors.New("refused")})
			Expect(testutil.ToFloat64(gauge.WithLabelValues("source"))).To(Equal(0.0))
		})
	})

	Context("report", func() {
		It("resets counters after reporting", func() {
			Incr("report-test", 5)

			report(time.Second)

			Expect(Get("report-test")).To(Equal(0.0))
		})
	})
})
