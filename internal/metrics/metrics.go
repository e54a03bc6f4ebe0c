package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the settlement engine collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	betsSettled    *prometheus.CounterVec
	betsFailed     prometheus.Counter
	booksCompleted prometheus.Counter
	errorsBy       *prometheus.CounterVec
	ledgerAppends  *prometheus.CounterVec
	runDuration    prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		betsSettled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_bets_settled_total",
			Help: "bets whose settlement was applied, by outcome",
		}, []string{"outcome"}),
		betsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "settlement_bets_failed_total",
			Help: "bets left SETTLING after a run",
		}),
		booksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "settlement_books_completed_total",
			Help: "books moved ACTIVE to COMPLETED",
		}),
		errorsBy: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_errors_total",
			Help: "errors by stage",
		}, []string{"stage"}),
		ledgerAppends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_appends_total",
			Help: "ledger transactions written, by type",
		}, []string{"type"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "settlement_run_duration_seconds",
			Help:    "duration of a scheduler run",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.betsSettled, m.betsFailed, m.booksCompleted, m.errorsBy, m.ledgerAppends, m.runDuration)
	return m
}

func (m *Metrics) BetSettled(outcome string) {
	if m == nil {
		return
	}
	m.betsSettled.WithLabelValues(outcome).Inc()
}

func (m *Metrics) BetsFailed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.betsFailed.Add(float64(n))
}

func (m *Metrics) BookCompleted() {
	if m == nil {
		return
	}
	m.booksCompleted.Inc()
}

func (m *Metrics) Error(stage string) {
	if m == nil {
		return
	}
	m.errorsBy.WithLabelValues(stage).Inc()
}

func (m *Metrics) LedgerAppend(txType string) {
	if m == nil {
		return
	}
	m.ledgerAppends.WithLabelValues(txType).Inc()
}

func (m *Metrics) ObserveRun(d time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.Observe(d.Seconds())
}
