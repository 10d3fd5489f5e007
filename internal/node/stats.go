package node

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	messagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdisgw_messages_total",
			Help: "Total messages processed by a node, by direction",
		},
		[]string{"node", "direction"},
	)
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdisgw_errors_total",
			Help: "Total processing errors by node",
		},
		[]string{"node"},
	)
	droppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdisgw_dropped_total",
			Help: "Total messages dropped because a subscriber's channel was full",
		},
		[]string{"node"},
	)
)

func init() {
	prometheus.MustRegister(messagesTotal, errorsTotal, droppedTotal)
}

// Stats tracks one node's message/error counts, mirroring the teacher's
// per-client connection counters but aggregated and logged on a timer
// instead of per-request (spec.md §4.11).
type Stats struct {
	name string

	in      atomic.Int64
	out     atomic.Int64
	errs    atomic.Int64
	dropped atomic.Int64

	// Each ticker keeps its own snapshot of the running totals so the
	// Prometheus push (aggregate) and the structured log line (log) each
	// report their own interval's delta independently.
	promIn, promOut                   int64
	logIn, logOut, logErrs, logDropped int64
}

// NewStats returns a zeroed Stats for the named node.
func NewStats(name string) *Stats { return &Stats{name: name} }

func (s *Stats) incoming()         { s.in.Add(1) }
func (s *Stats) outgoing()         { s.out.Add(1) }
func (s *Stats) error()            { s.errs.Add(1); errorsTotal.WithLabelValues(s.name).Inc() }
func (s *Stats) addDropped(n int)  { s.dropped.Add(int64(n)); droppedTotal.WithLabelValues(s.name).Add(float64(n)) }

// aggregate pushes the current totals into the Prometheus counters. Called
// from the node's aggregate-stats ticker.
func (s *Stats) aggregate() {
	in, out := s.in.Load(), s.out.Load()
	messagesTotal.WithLabelValues(s.name, "in").Add(float64(in - s.promIn))
	messagesTotal.WithLabelValues(s.name, "out").Add(float64(out - s.promOut))
	s.promIn, s.promOut = in, out
}

// log emits a structured summary of activity since the last log call.
// Called from the node's output-stats ticker.
func (s *Stats) log(logger *zap.SugaredLogger) {
	in, out, errs, dropped := s.in.Load(), s.out.Load(), s.errs.Load(), s.dropped.Load()
	deltaIn, deltaOut := in-s.logIn, out-s.logOut
	deltaErrs, deltaDropped := errs-s.logErrs, dropped-s.logDropped
	if deltaIn == 0 && deltaOut == 0 && deltaErrs == 0 && deltaDropped == 0 {
		return
	}
	logger.Infof("node %s: +%d in, +%d out, +%d errors, +%d dropped", s.name, deltaIn, deltaOut, deltaErrs, deltaDropped)
	s.logIn, s.logOut, s.logErrs, s.logDropped = in, out, errs, dropped
}
