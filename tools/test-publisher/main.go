// test-publisher sends sample RFID scan records to the source broker so the
// relay can be checked end-to-end without scanner hardware.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/batchcorp/mqtt-relay/backends/mqtt"
	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
	"github.com/batchcorp/mqtt-relay/options"
)

var (
	hostFlag    = kingpin.Flag("host", "Source broker hostname").Default("localhost").String()
	portFlag    = kingpin.Flag("port", "Source broker port").Default("1883").Int()
	topicFlag   = kingpin.Flag("topic", "Topic to publish to").Default(options.DefaultTopic).String()
	tagFlag     = kingpin.Flag("tag", "RFID tag ID to include in the payload").Default("TEST123").String()
	qosFlag     = kingpin.Flag("qos", "QoS level (0, 1, 2)").Default("1").Int()
	countFlag   = kingpin.Flag("count", "Number of messages to publish").Short('c').Default("1").Int()
	timeoutFlag = kingpin.Flag("timeout", "How long to wait for the broker").Default("5s").Duration()
)

type scanRecord struct {
	TagID     string `json:"tag_id"`
	Timestamp int64  `json:"timestamp"`
}

func main() {
	kingpin.Parse()

	p, err := mqtt.NewPublisher(&mqtt.PublisherConfig{
		Conn: &mqtt.ConnConfig{
			Name:           "test-publisher",
			Address:        mqtt.BrokerAddress(*hostFlag, *portFlag, false),
			ClientID:       fmt.Sprintf("test-publisher-%s", uuid.New().String()[0:8]),
			ConnectTimeout: *timeoutFlag,
		},
	})
	if err != nil {
		logrus.Fatalf("Invalid configuration: %s", err)
	}

	ctx := context.Background()

	if err := p.Connect(ctx); err != nil {
		fmt.Printf("Error: cannot connect to %s:%d - %s\n", *hostFlag, *portFlag, err)
		os.Exit(1)
	}

	defer p.Disconnect()

	for i := 0; i < *countFlag; i++ {
		payload, err := json.Marshal(&scanRecord{
			TagID:     *tagFlag,
			Timestamp: time.Now().Unix(),
		})
		if err != nil {
			logrus.Fatalf("Unable to marshal payload: %s", err)
		}

		handle, err := p.Publish(*topicFlag, payload, types.ParseQoS(byte(*qosFlag)))
		if err != nil {
			logrus.Fatalf("Unable to publish: %s", err)
		}

		if err := handle.Wait(ctx, *timeoutFlag); err != nil {
			logrus.Fatalf("Publish was not acknowledged: %s", err)
		}

		fmt.Printf("Published to '%s': %s\n", *topicFlag, payload)
	}
}
