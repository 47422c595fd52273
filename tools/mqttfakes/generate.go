// Package mqttfakes holds generated fakes for the paho client interfaces
package mqttfakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o fake_client.go github.com/eclipse/paho.mqtt.golang.Client
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o fake_token.go github.com/eclipse/paho.mqtt.golang.Token
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o fake_message.go github.com/eclipse/paho.mqtt.golang.Message
