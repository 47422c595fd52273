package supervisor_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
	"github.com/batchcorp/mqtt-relay/supervisor"
	"github.com/batchcorp/mqtt-relay/supervisor/supervisorfakes"
)

var _ = Describe("Supervisor", func() {
	var (
		source      *supervisorfakes.FakeISource
		destination *supervisorfakes.FakeIDestination
		sup         *supervisor.Supervisor

		// messages seen by the registered handler
		handled   []*types.RelayMessage
		handledMu sync.Mutex

		// order in which lifecycle calls were made
		calls   []string
		callsMu sync.Mutex
	)

	record := func(name string) {
		callsMu.Lock()
		defer callsMu.Unlock()

		calls = append(calls, name)
	}

	recorded := func() []string {
		callsMu.Lock()
		defer callsMu.Unlock()

		return append([]string{}, calls...)
	}

	handler := func(_ context.Context, msg *types.RelayMessage) {
		handledMu.Lock()
		defer handledMu.Unlock()

		handled = append(handled, msg)
	}

	BeforeEach(func() {
		calls = nil
		handled = nil

		source = &supervisorfakes.FakeISource{}
		destination = &supervisorfakes.FakeIDestination{}

		destination.ConnectStub = func(context.Context) error {
			record("destination.connect")
			return nil
		}
		destination.DisconnectStub = func() {
			record("destination.disconnect")
		}
		source.ConnectStub = func(context.Context) error {
			record("source.connect")
			return nil
		}
		source.DisconnectStub = func() {
			record("source.disconnect")
		}
		source.RunStub = func(ctx context.Context) error {
			record("source.run")
			<-ctx.Done()
			return nil
		}

		var err error

		sup, err = supervisor.New(&supervisor.Config{
			Source:      source,
			Destination: destination,
			Handler:     handler,
		})
		Expect(err).ToNot(HaveOccurred())
	})

	Context("New", func() {
		It("validates config", func() {
			_, err := supervisor.New(nil)
			Expect(errors.Cause(err)).To(Equal(supervisor.ErrMissingConfig))

			_, err = supervisor.New(&supervisor.Config{Destination: destination, Handler: handler})
			Expect(errors.Cause(err)).To(Equal(supervisor.ErrMissingSource))

			_, err = supervisor.New(&supervisor.Config{Source: source, Handler: handler})
			Expect(errors.Cause(err)).To(Equal(supervisor.ErrMissingDestination))

			_, err = supervisor.New(&supervisor.Config{Source: source, Destination: destination})
			Expect(errors.Cause(err)).To(Equal(supervisor.ErrMissingHandler))
		})
	})

	Context("Run", func() {
		It("never connects the source when the destination fails", func() {
			destination.ConnectStub = nil
			destination.ConnectReturns(errors.New("connection refused"))

			err := sup.Run(context.Background())
			Expect(errors.Cause(err)).To(Equal(supervisor.ErrDestinationConnect))
			Expect(err.Error()).To(ContainSubstring("connection refused"))

			Expect(source.ConnectCallCount()).To(Equal(0))
			Expect(source.RunCallCount()).To(Equal(0))
		})

		It("releases the destination when the source fails", func() {
			source.ConnectStub = nil
			source.ConnectReturns(errors.New("not authorized"))

			err := sup.Run(context.Background())
			Expect(errors.Cause(err)).To(Equal(supervisor.ErrSourceConnect))

			Expect(destination.DisconnectCallCount()).To(Equal(1))
			Expect(source.RunCallCount()).To(Equal(0))
		})

		It("connects destination before source", func() {
			ctx, cancel := context.WithCancel(context.Background())

			done := make(chan error, 1)
			go func() {
				done <- sup.Run(ctx)
			}()

			Eventually(recorded).Should(Equal([]string{"destination.connect", "source.connect", "source.run"}))

			cancel()
			Eventually(done).Should(Receive(BeNil()))
		})

		It("disconnects source before destination on shutdown", func() {
			ctx, cancel := context.WithCancel(context.Background())

			done := make(chan error, 1)
			go func() {
				done <- sup.Run(ctx)
			}()

			Eventually(recorded).Should(HaveLen(3))
			cancel()
			Eventually(done).Should(Receive(BeNil()))

			Expect(recorded()).To(Equal([]string{
				"destination.connect",
				"source.connect",
				"source.run",
				"source.disconnect",
				"destination.disconnect",
			}))
		})

		It("registers the handler as the message callback", func() {
			payload := []byte(`{"tag_id":"TEST123","timestamp":1700000000}`)

			source.RunStub = func(ctx context.Context) error {
				registered := source.OnMessageArgsForCall(0)
				registered(ctx, types.NewRelayMessage("rfid/scan", payload, 1))
				registered(ctx, types.NewRelayMessage("rfid/scan", []byte("2"), 1))
				return nil
			}

			Expect(sup.Run(context.Background())).To(Succeed())

			Expect(source.OnMessageCallCount()).To(Equal(1))
			Expect(handled).To(HaveLen(2))
			Expect(handled[0].Topic).To(Equal("rfid/scan"))
			Expect(handled[0].Payload).To(Equal(payload))
			Expect(string(handled[1].Payload)).To(Equal("2"))
		})

		It("registers the handler before connecting the source", func() {
			source.ConnectStub = func(context.Context) error {
				Expect(source.OnMessageCallCount()).To(Equal(1))
				return nil
			}
			source.RunStub = nil

			Expect(sup.Run(context.Background())).To(Succeed())
		})
	})
})
