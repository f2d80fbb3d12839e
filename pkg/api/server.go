// Package api pkg/api/server.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vitalsim/vitalsim/pkg/history"
	"github.com/vitalsim/vitalsim/pkg/models"
	"github.com/vitalsim/vitalsim/pkg/simulator"
	"github.com/vitalsim/vitalsim/pkg/stream"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 120 * time.Second
)

// Server exposes the vital sign feed over HTTP.
type Server struct {
	addr       string
	collector  simulator.Collector
	history    history.SampleManager
	hub        *stream.Hub
	router     *mux.Router
	httpServer *http.Server
	errCh      chan error
	log        *zap.Logger
}

// NewServer creates the HTTP server for the given simulation.
func NewServer(addr string, collector simulator.Collector, hist history.SampleManager, hub *stream.Hub, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		addr:      addr,
		collector: collector,
		history:   hist,
		hub:       hub,
		router:    mux.NewRouter(),
		errCh:     make(chan error, 1),
		log:       log,
	}
	s.setupRoutes()

	return s
}

// Router returns the configured handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	// Add CORS middleware
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	s.router.HandleFunc("/api/vitals", s.getVitals).Methods("GET")
	s.router.HandleFunc("/api/vitals/{name}", s.getVital).Methods("GET")
	s.router.HandleFunc("/api/vitals/{name}/history", s.getVitalHistory).Methods("GET")
	s.router.HandleFunc("/api/status", s.getStatus).Methods("GET")

	s.router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		stream.ServeWS(s.hub, w, r)
	})
}

func (s *Server) getVitals(w http.ResponseWriter, _ *http.Request) {
	status := s.collector.Status()

	readings := make([]models.VitalReading, 0, len(status.Vitals))
	for _, reading := range status.Vitals {
		readings = append(readings, reading)
	}

	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Name < readings[j].Name
	})

	s.writeJSON(w, VitalsResponse{
		PatientID: status.PatientID,
		LastTick:  status.LastTick,
		Vitals:    readings,
	})
}

func (s *Server) getVital(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	status := s.collector.Status()

	reading, ok := status.Vitals[name]
	if !ok {
		http.Error(w, "Vital not found", http.StatusNotFound)
		return
	}

	s.writeJSON(w, reading)
}

func (s *Server) getVitalHistory(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	samples := s.history.History(name)
	if samples == nil {
		http.Error(w, "Vital not found", http.StatusNotFound)
		return
	}

	s.writeJSON(w, HistoryResponse{Name: name, Samples: samples})
}

func (s *Server) getStatus(w http.ResponseWriter, _ *http.Request) {
	status := s.collector.Status()

	resp := ServiceStatus{
		PatientID:  status.PatientID,
		StartTime:  status.StartTime,
		UpTime:     time.Since(status.StartTime).Truncate(time.Second).String(),
		LastTick:   status.LastTick,
		TickCount:  status.TickCount,
		VitalCount: len(status.Vitals),
	}
	if s.hub != nil {
		resp.StreamClients = s.hub.ClientCount()
	}

	s.writeJSON(w, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Start begins serving. The listener is opened synchronously so bind
// errors surface to the caller.
func (s *Server) Start(_ context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.router,
		// No WriteTimeout: /ws connections are long-lived.
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	go func() {
		s.log.Info("http server listening", zap.String("addr", s.addr))

		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case s.errCh <- err:
			default:
				s.log.Error("http server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Errors surfaces asynchronous serve failures.
func (s *Server) Errors() <-chan error {
	return s.errCh
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}
