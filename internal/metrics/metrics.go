// Package metrics records per-invocation Prometheus metrics and writes them
// as a node_exporter textfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns a private registry so each process reports only its own run.
type Recorder struct {
	reg      *prometheus.Registry
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	tasks    *prometheus.GaugeVec
}

// New creates a Recorder with all metrics registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		commands: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "todo_commands_total",
				Help: "Number of commands run, by command and result",
			},
			[]string{"command", "result"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "todo_command_duration_seconds",
				Help:    "Duration of a command including load and save",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		tasks: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "todo_tasks",
				Help: "Tasks in the list after the command, by status",
			},
			[]string{"status"},
		),
	}
}

// ObserveCommand records one command run. ok selects the result label.
func (r *Recorder) ObserveCommand(command string, ok bool, elapsed time.Duration) {
	result := "success"
	if !ok {
		result = "error"
	}
	r.commands.WithLabelValues(command, result).Inc()
	r.duration.WithLabelValues(command).Observe(elapsed.Seconds())
}

// SetTasks records the number of completed and pending tasks.
func (r *Recorder) SetTasks(done, pending int) {
	r.tasks.WithLabelValues("done").Set(float64(done))
	r.tasks.WithLabelValues("pending").Set(float64(pending))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// WriteFile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
