package relay_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
	"github.com/batchcorp/mqtt-relay/prometheus"
	"github.com/batchcorp/mqtt-relay/relay"
	"github.com/batchcorp/mqtt-relay/relay/relayfakes"
	"github.com/batchcorp/mqtt-relay/tools/mqttfakes"
)

func ackedHandle(topic string, qos types.QoS, err error) *types.DeliveryHandle {
	done := make(chan struct{})
	close(done)

	token := &mqttfakes.FakeToken{}
	token.DoneReturns(done)
	token.ErrorReturns(err)

	return types.NewDeliveryHandle(topic, qos, token)
}

func pendingHandle(topic string, qos types.QoS) *types.DeliveryHandle {
	token := &mqttfakes.FakeToken{}
	token.DoneReturns(make(chan struct{}))

	return types.NewDeliveryHandle(topic, qos, token)
}

var _ = Describe("Relay", func() {
	var (
		r         *relay.Relay
		publisher *relayfakes.FakeIPublisher
	)

	BeforeEach(func() {
		prometheus.InitPrometheusMetrics()

		publisher = &relayfakes.FakeIPublisher{}
		publisher.PublishStub = func(topic string, _ []byte, qos types.QoS) (*types.DeliveryHandle, error) {
			return ackedHandle(topic, qos, nil), nil
		}

		var err error

		r, err = relay.New(&relay.Config{
			Publisher:      publisher,
			PublishTimeout: 50 * time.Millisecond,
		})
		Expect(err).ToNot(HaveOccurred())
	})

	Context("New", func() {
		It("validates nil config", func() {
			_, err := relay.New(nil)
			Expect(errors.Cause(err)).To(Equal(relay.ErrMissingConfig))
		})

		It("validates publisher", func() {
			_, err := relay.New(&relay.Config{})
			Expect(errors.Cause(err)).To(Equal(relay.ErrMissingPublisher))
		})

		It("applies default timeout", func() {
			cfg := &relay.Config{Publisher: publisher}

			_, err := relay.New(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.PublishTimeout).To(Equal(relay.DefaultPublishTimeout))
		})
	})

	Context("Forward", func() {
		It("forwards the scan record unchanged", func() {
			payload := []byte(`{"tag_id":"TEST123","timestamp":1700000000}`)
			msg := types.NewRelayMessage("rfid/scan", payload, 1)

			Expect(r.Forward(context.Background(), msg)).To(Succeed())
			Expect(publisher.PublishCallCount()).To(Equal(1))

			topic, sent, qos := publisher.PublishArgsForCall(0)
			Expect(topic).To(Equal("rfid/scan"))
			Expect(sent).To(Equal(payload))
			Expect(qos).To(Equal(types.AtLeastOnce))
		})

		It("keeps the inbound QoS", func() {
			msg := types.NewRelayMessage("rfid/scan", []byte("x"), 2)

			Expect(r.Forward(context.Background(), msg)).To(Succeed())

			_, _, qos := publisher.PublishArgsForCall(0)
			Expect(qos).To(Equal(types.ExactlyOnce))
		})

		It("publishes exactly once per message", func() {
			for i := 0; i < 5; i++ {
				_ = r.Forward(context.Background(), types.NewRelayMessage("rfid/scan", []byte{byte(i)}, 1))
			}

			Expect(publisher.PublishCallCount()).To(Equal(5))

			for i := 0; i < 5; i++ {
				_, sent, _ := publisher.PublishArgsForCall(i)
				Expect(sent).To(Equal([]byte{byte(i)}))
			}
		})

		It("does not retry when the destination is down", func() {
			publisher.PublishStub = nil
			publisher.PublishReturns(nil, errors.New("link is not connected"))

			err := r.Forward(context.Background(), types.NewRelayMessage("rfid/scan", []byte("x"), 1))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unable to publish message"))
			Expect(publisher.PublishCallCount()).To(Equal(1))
		})

		It("reports a rejected publish", func() {
			publisher.PublishStub = func(topic string, _ []byte, qos types.QoS) (*types.DeliveryHandle, error) {
				return ackedHandle(topic, qos, errors.New("broker said no")), nil
			}

			err := r.Forward(context.Background(), types.NewRelayMessage("rfid/scan", []byte("x"), 1))
			Expect(err).To(HaveOccurred())
			Expect(errors.Cause(err).Error()).To(Equal("broker said no"))
		})

		It("gives up after the publish timeout", func() {
			publisher.PublishStub = func(topic string, _ []byte, qos types.QoS) (*types.DeliveryHandle, error) {
				return pendingHandle(topic, qos), nil
			}

			err := r.Forward(context.Background(), types.NewRelayMessage("rfid/scan", []byte("x"), 1))
			Expect(errors.Cause(err)).To(Equal(types.ErrPublishTimeout))
			Expect(publisher.PublishCallCount()).To(Equal(1))
		})

		It("abandons the delivery on shutdown", func() {
			publisher.PublishStub = func(topic string, _ []byte, qos types.QoS) (*types.DeliveryHandle, error) {
				return pendingHandle(topic, qos), nil
			}

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := r.Forward(ctx, types.NewRelayMessage("rfid/scan", []byte("x"), 1))
			Expect(errors.Cause(err)).To(Equal(context.Canceled))
		})

		It("rejects nil messages", func() {
			Expect(r.Forward(context.Background(), nil)).To(Equal(relay.ErrMissingMessage))
			Expect(publisher.PublishCallCount()).To(Equal(0))
		})

		It("counts forwarded messages", func() {
			before := prometheus.Get(prometheus.StatsForwarded)

			Expect(r.Forward(context.Background(), types.NewRelayMessage("rfid/scan", []byte("x"), 1))).To(Succeed())

			Expect(prometheus.Get(prometheus.StatsForwarded)).To(Equal(before + 1))
		})
	})

	Context("Handler", func() {
		It("forwards through the subscriber callback", func() {
			handler := r.Handler()
			handler(context.Background(), types.NewRelayMessage("rfid/scan", []byte("x"), 1))

			Expect(publisher.PublishCallCount()).To(Equal(1))
		})
	})
})
