package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/booster-catch/engine"
)

const namespace = "booster_catch"

// Recorder mirrors simulation snapshots into Prometheus gauges on its own registry
// Safe for concurrent use: the run loop observes while the HTTP server reads
type Recorder struct {
	registry *prometheus.Registry

	altitudeGauge        prometheus.Gauge
	velocityGauge        prometheus.Gauge
	fuelGauge            prometheus.Gauge
	boosterAltitudeGauge prometheus.Gauge
	phaseGauge           prometheus.Gauge
	ticksCounter         prometheus.Counter
	transitionsCounter   *prometheus.CounterVec

	mu     sync.RWMutex
	latest engine.Snapshot
	seen   bool
}

// NewRecorder creates and registers the flight metrics
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		altitudeGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "rocket_altitude_meters",
			Help: "Current altitude of the upper stage (in meters)",
		}),
		velocityGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "rocket_velocity_mps",
			Help: "Current vertical velocity of the upper stage (in m/s)",
		}),
		fuelGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "fuel_percent",
			Help: "Remaining fuel (percent)",
		}),
		boosterAltitudeGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "booster_altitude_meters",
			Help: "Current altitude of the booster (in meters)",
		}),
		phaseGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "phase",
			Help: "Flight phase: 1 ascending, 2 separated, 3 descending, 4 catching, 5 caught",
		}),
		ticksCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "ticks_total",
			Help: "Simulation ticks observed",
		}),
		transitionsCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "phase_transitions_total",
			Help: "Phase transitions by entered phase",
		}, []string{"phase"}),
	}

	r.registry.MustRegister(
		r.altitudeGauge, r.velocityGauge, r.fuelGauge, r.boosterAltitudeGauge,
		r.phaseGauge, r.ticksCounter, r.transitionsCounter,
	)
	return r
}

// Registry exposes the private registry for handlers and tests
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records one stepped snapshot
func (r *Recorder) Observe(s engine.Snapshot) {
	r.altitudeGauge.Set(s.Rocket.Pos.Y())
	r.velocityGauge.Set(s.Rocket.Vel.Y())
	r.fuelGauge.Set(s.DisplayFuel())
	r.boosterAltitudeGauge.Set(s.Booster.Pos.Y())
	r.phaseGauge.Set(float64(s.Phase))
	r.ticksCounter.Inc()

	r.mu.Lock()
	r.latest = s
	r.seen = true
	r.mu.Unlock()
}

// ObservePhase counts a phase transition; suitable for Simulation.OnPhase
func (r *Recorder) ObservePhase(c engine.PhaseChange) {
	r.transitionsCounter.WithLabelValues(c.To.String()).Inc()
}

// Latest returns the most recent snapshot, false before the first Observe
func (r *Recorder) Latest() (engine.Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest, r.seen
}
