package mqtt

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io/ioutil"
	"math/big"
	"path/filepath"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/mqtt-relay/tools/mqttfakes"
)

func discardLog() *logrus.Entry {
	return logrus.NewEntry(&logrus.Logger{Out: ioutil.Discard})
}

// doneToken returns a token that has already completed with err
func doneToken(err error) *mqttfakes.FakeToken {
	done := make(chan struct{})
	close(done)

	return &mqttfakes.FakeToken{
		DoneStub: func() <-chan struct{} {
			return done
		},
		ErrorStub: func() error {
			return err
		},
	}
}

// pendingToken returns a token that never completes
func pendingToken() *mqttfakes.FakeToken {
	return &mqttfakes.FakeToken{
		DoneStub: func() <-chan struct{} {
			return make(chan struct{})
		},
	}
}

func newTestConnConfig(name string) *ConnConfig {
	return &ConnConfig{
		Name:           name,
		Address:        "tcp://localhost:1883",
		ClientID:       "relay-test-" + name,
		ConnectTimeout: 100 * time.Millisecond,
	}
}

// writeTestCerts generates a self-signed CA certificate and a key pair in dir
func writeTestCerts(dir string) (caFile, certFile, keyFile string) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	Expect(err).ToNot(HaveOccurred())

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "relay-test"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	Expect(err).ToNot(HaveOccurred())

	keyDER, err := x509.MarshalECPrivateKey(key)
	Expect(err).ToNot(HaveOccurred())

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})

	caFile = filepath.Join(dir, "ca.crt")
	certFile = filepath.Join(dir, "client.crt")
	keyFile = filepath.Join(dir, "client.key")

	Expect(ioutil.WriteFile(caFile, certPEM, 0600)).To(Succeed())
	Expect(ioutil.WriteFile(certFile, certPEM, 0600)).To(Succeed())
	Expect(ioutil.WriteFile(keyFile, keyPEM, 0600)).To(Succeed())

	return caFile, certFile, keyFile
}

// captureOptions returns a client constructor that records the options it
// was built with and hands back fake
func captureOptions(fake pahomqtt.Client, into **pahomqtt.ClientOptions) func(*pahomqtt.ClientOptions) pahomqtt.Client {
	return func(o *pahomqtt.ClientOptions) pahomqtt.Client {
		*into = o
		return fake
	}
}
