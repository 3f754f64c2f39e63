package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"
	"github.com/mittwald/writeprobe/internal/config"
	log "github.com/sirupsen/logrus"
)

const DefaultTimeout = 1 * time.Second

type Handler struct {
	cfg     *config.Ignition
	probes  map[string]Probe
	timeout time.Duration
}

// RunAll executes every probe concurrently. Probes that do not finish within
// the handler timeout are reported as failed. The returned error aggregates
// all probes that did not meet their expectation.
func (h *Handler) RunAll() (map[string]*ProbeResult, error) {
	response := make(map[string]*ProbeResult, len(h.probes))

	results := make(chan *ProbeResult, len(h.probes))
	timeout := time.NewTimer(h.timeout)
	defer timeout.Stop()

	for i := range h.probes {
		response[i] = timedOutResult(i, h.probes[i])

		go func(p Probe, name string) {
			results <- resultFromExec(name, p, p.Exec())
		}(h.probes[i], i)
	}

wait:
	for i := 0; i < len(h.probes); i++ {
		select {
		case result := <-results:
			response[result.Name] = result
		case <-timeout.C:
			log.WithFields(log.Fields{"kind": "probe"}).Error("timed out")
			break wait
		}
	}

	var result *multierror.Error
	for name, res := range response {
		if !res.OK {
			result = multierror.Append(result, fmt.Errorf("probe %q: %s", name, res.Message))
		}
	}

	return response, result.ErrorOrNil()
}

func (h *Handler) HandleStatus(res http.ResponseWriter, req *http.Request) {
	probes, err := h.RunAll()
	response := StatusResponse{Probes: probes}

	res.Header().Set("Content-Type", "application/json")

	if err != nil {
		log.WithFields(log.Fields{"kind": "probe", "err": err}).Warn("status check failed")
		res.WriteHeader(http.StatusServiceUnavailable)
	}

	_ = json.NewEncoder(res).Encode(&response)
}

func NewProbeHandler(cfg *config.Ignition, timeout time.Duration) (*Handler, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	probes, err := buildProbesFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Handler{cfg: cfg, probes: probes, timeout: timeout}, nil
}

func NewRouter(ph *Handler) *mux.Router {
	m := mux.NewRouter()
	m.Path("/status").Methods(http.MethodGet).HandlerFunc(ph.HandleStatus)
	return m
}

func RunProbeServer(ph *Handler, signals chan os.Signal, listenPort int) error {
	server := http.Server{
		Addr:              fmt.Sprintf(":%d", listenPort),
		Handler:           NewRouter(ph),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case s := <-signals:
				if s == syscall.SIGINT || s == syscall.SIGTERM {
					log.WithField("receivedSignal", s.String()).Info("shutting down probe server")
					_ = server.Shutdown(context.Background())
					return
				}
			case <-done:
				return
			}
		}
	}()

	err := server.ListenAndServe()
	if err != http.ErrServerClosed {
		return err
	}

	return nil
}

func buildProbesFromConfig(cfg *config.Ignition) (map[string]Probe, error) {
	result := make(map[string]Probe)
	for i := range cfg.Probes {
		if cfg.Probes[i].Target == "" {
			return nil, fmt.Errorf("probe %q has no target", cfg.Probes[i].Name)
		}
		result[cfg.Probes[i].Name] = NewWriteProbe(&cfg.Probes[i])
	}
	return result, nil
}
