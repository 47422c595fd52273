package api

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/mqtt-relay/backends/mqtt/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . ILink
type ILink interface {
	Name() string
	State() types.LinkState
}

type API struct {
	Version       string
	ListenAddress string
	Source        ILink
	Destination   ILink
	log           *logrus.Entry
}

type ResponseJSON struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Values  map[string]string `json:"values,omitempty"`
	Errors  string            `json:"errors,omitempty"`
}

type HealthResponse struct {
	Healthy bool                       `json:"healthy"`
	Links   map[string]types.LinkState `json:"links"`
}

func New(listenAddress, version string, source, destination ILink) *API {
	return &API{
		Version:       version,
		ListenAddress: listenAddress,
		Source:        source,
		Destination:   destination,
		log:           logrus.WithField("pkg", "api"),
	}
}

// Router returns the handler serving every API route
func (a *API) Router() http.Handler {
	router := httprouter.New()

	router.HandlerFunc("GET", "/health-check", a.healthCheckHandler)
	router.HandlerFunc("GET", "/version", a.versionHandler)

	router.Handler("GET", "/metrics", promhttp.Handler())

	return router
}

// Start serves the API in the background. Call Shutdown on the returned
// server to stop it.
func (a *API) Start() *http.Server {
	a.log.Debugf("starting API server on %s", a.ListenAddress)

	srv := &http.Server{
		Addr:    a.ListenAddress,
		Handler: a.Router(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				a.log.Errorf("unable to srv.ListenAndServe: %s", err)
			}
		}
	}()

	return srv
}

// healthCheckHandler reports 200 only while the relay can move messages:
// the destination is connected and the source subscription is active.
func (a *API) healthCheckHandler(rw http.ResponseWriter, r *http.Request) {
	source := a.Source.State()
	destination := a.Destination.State()

	resp := &HealthResponse{
		Healthy: source.Status == types.Subscribed && destination.Status == types.Connected,
		Links: map[string]types.LinkState{
			a.Source.Name():      source,
			a.Destination.Name(): destination,
		},
	}

	status := http.StatusOK
	if !resp.Healthy {
		status = http.StatusServiceUnavailable
	}

	WriteJSON(status, resp, rw)
}

func (a *API) versionHandler(rw http.ResponseWriter, r *http.Request) {
	response := &ResponseJSON{Status: http.StatusOK, Message: "batchcorp/mqtt-relay " + a.Version}

	WriteJSON(http.StatusOK, response, rw)
}

func WriteJSON(statusCode int, data interface{}, w http.ResponseWriter) {
	w.Header().Add("Content-type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(500)
		logrus.Errorf("Unable to marshal data in WriteJSON: %s", err)
		return
	}

	w.WriteHeader(statusCode)

	if _, err := w.Write(jsonData); err != nil {
		logrus.Errorf("Unable to write response data: %s", err)
		return
	}
}
