package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/booster-catch/engine"
)

// TelemetryView is the JSON body of GET /telemetry
type TelemetryView struct {
	Tick            int     `json:"tick"`
	Time            float64 `json:"time_s"`
	Phase           string  `json:"phase"`
	Done            bool    `json:"done"`
	Altitude        float64 `json:"rocket_altitude_m"`
	Velocity        float64 `json:"rocket_velocity_mps"`
	Fuel            float64 `json:"fuel_percent"`
	BoosterAltitude float64 `json:"booster_altitude_m"`
	BoosterVisible  bool    `json:"booster_visible"`
	LeftArm         float64 `json:"left_arm_x"`
	RightArm        float64 `json:"right_arm_x"`
	Text            string  `json:"text"`
}

// NewTelemetryView flattens a snapshot for JSON
func NewTelemetryView(s engine.Snapshot) TelemetryView {
	return TelemetryView{
		Tick:            s.Tick,
		Time:            s.Time,
		Phase:           s.Phase.String(),
		Done:            s.Done,
		Altitude:        s.Rocket.Pos.Y(),
		Velocity:        s.Rocket.Vel.Y(),
		Fuel:            s.DisplayFuel(),
		BoosterAltitude: s.Booster.Pos.Y(),
		BoosterVisible:  s.Booster.Visible,
		LeftArm:         s.LeftArm.Offset,
		RightArm:        s.RightArm.Offset,
		Text:            engine.Telemetry(s),
	}
}

// Server exposes metrics and live telemetry over HTTP
type Server struct {
	rec  *Recorder
	http *http.Server
	ln   net.Listener
	done chan error
}

// NewRouter builds the HTTP routes for a recorder
func NewRouter(rec *Recorder) *mux.Router {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(rec.Registry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/telemetry", telemetryHandler(rec)).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	return router
}

func telemetryHandler(rec *Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		snap, ok := rec.Latest()
		if !ok {
			http.Error(w, "simulation not started", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(NewTelemetryView(snap)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Listen binds addr and serves in the background
func Listen(addr string, rec *Recorder) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen %s: %w", addr, err)
	}

	s := &Server{
		rec: rec,
		http: &http.Server{
			Handler:           NewRouter(rec),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:   ln,
		done: make(chan error, 1),
	}

	go func() {
		log.Printf("Metrics server listening at %s", ln.Addr())
		err := s.http.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()
	return s, nil
}

// Addr returns the bound address
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	return <-s.done
}
