package types

import (
	"context"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/batchcorp/mqtt-relay/tools/mqttfakes"
)

var _ = Describe("Types", func() {
	Context("ParseQoS", func() {
		It("keeps valid levels", func() {
			Expect(ParseQoS(0)).To(Equal(AtMostOnce))
			Expect(ParseQoS(1)).To(Equal(AtLeastOnce))
			Expect(ParseQoS(2)).To(Equal(ExactlyOnce))
		})

		It("falls back to the default", func() {
			Expect(ParseQoS(3)).To(Equal(DefaultQoS))
			Expect(ParseQoS(0x80)).To(Equal(DefaultQoS))
		})
	})

	Context("NewRelayMessage", func() {
		It("copies the payload", func() {
			payload := []byte("abc")

			msg := NewRelayMessage("rfid/scan", payload, 1)
			payload[0] = 'z'

			Expect(msg.Payload).To(Equal([]byte("abc")))
			Expect(msg.ReceivedAt).ToNot(BeZero())
		})

		It("builds from a paho message", func() {
			m := &mqttfakes.FakeMessage{}
			m.TopicReturns("rfid/scan")
			m.PayloadReturns([]byte("x"))
			m.QosReturns(2)

			msg := FromMQTT(m)
			Expect(msg.Topic).To(Equal("rfid/scan"))
			Expect(msg.Payload).To(Equal([]byte("x")))
			Expect(msg.QoS).To(Equal(ExactlyOnce))
		})
	})

	Context("StateHolder", func() {
		It("keeps the last error across status changes", func() {
			h := NewStateHolder("tcp://localhost:1883")
			Expect(h.Status()).To(Equal(Disconnected))

			h.Set(Reconnecting, errors.New("EOF"))
			h.Set(Connected, nil)

			state := h.Snapshot()
			Expect(state.Status).To(Equal(Connected))
			Expect(state.LastError).To(MatchError("EOF"))
		})

		It("renders as JSON", func() {
			state := LinkState{Status: Subscribed, BrokerAddress: "tcp://mosquitto:1883"}

			data, err := json.Marshal(state)
			Expect(err).ToNot(HaveOccurred())
			Expect(data).To(MatchJSON(`{"status":"subscribed","broker_address":"tcp://mosquitto:1883","last_error":""}`))
		})

		It("renders errors with control characters and invalid UTF-8", func() {
			state := LinkState{Status: Reconnecting, LastError: errors.New("bad \x07 \xff")}

			data, err := json.Marshal(state)
			Expect(err).ToNot(HaveOccurred())

			decoded := map[string]string{}
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded["status"]).To(Equal("reconnecting"))
			Expect(decoded["last_error"]).To(Equal("bad \a �"))
		})
	})

	Context("DeliveryHandle", func() {
		var token *mqttfakes.FakeToken
		var done chan struct{}

		BeforeEach(func() {
			done = make(chan struct{})
			token = &mqttfakes.FakeToken{}
			token.DoneReturns(done)
		})

		It("returns the token error once complete", func() {
			token.ErrorReturns(errors.New("publish failed"))
			close(done)

			h := NewDeliveryHandle("rfid/scan", AtLeastOnce, token)
			Expect(h.Wait(context.Background(), time.Second)).To(MatchError("publish failed"))
		})

		It("times out", func() {
			h := NewDeliveryHandle("rfid/scan", AtLeastOnce, token)
			Expect(h.Wait(context.Background(), 10*time.Millisecond)).To(Equal(ErrPublishTimeout))
		})

		It("is abandoned when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			h := NewDeliveryHandle("rfid/scan", AtLeastOnce, token)
			err := h.Wait(ctx, 0)
			Expect(errors.Cause(err)).To(Equal(context.Canceled))
		})

		It("reports a missing token", func() {
			var h *DeliveryHandle
			Expect(h.Wait(context.Background(), time.Second)).To(Equal(ErrMissingToken))
			Expect(h.MessageID()).To(Equal(uint16(0)))
		})
	})
})
