package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Export holds the collectors for the render and export pipeline. A nil
// *Export is valid and records nothing.
type Export struct {
	renders        *prometheus.CounterVec
	exports        *prometheus.CounterVec
	exportDuration *prometheus.HistogramVec
	fallbacks      *prometheus.CounterVec
}

// NewExport creates the collectors and registers them on reg.
func NewExport(reg prometheus.Registerer) (*Export, error) {
	m := &Export{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_renders_total",
				Help: "HTML renders by template and kind (html, thumbnail).",
			},
			[]string{"template", "kind"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_pdf_exports_total",
				Help: "PDF exports by template and outcome.",
			},
			[]string{"template", "outcome"},
		),
		exportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resume_pdf_export_duration_seconds",
				Help:    "Time spent transcoding HTML to PDF.",
				Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
			},
			[]string{"template"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_fallbacks_total",
				Help: "Requests served with fallback resume data, by reason.",
			},
			[]string{"reason"},
		),
	}

	for _, c := range []prometheus.Collector{m.renders, m.exports, m.exportDuration, m.fallbacks} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Export) Rendered(template, kind string) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(template, kind).Inc()
}

func (m *Export) Exported(template string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.exports.WithLabelValues(template, outcome).Inc()
	m.exportDuration.WithLabelValues(template).Observe(d.Seconds())
}

func (m *Export) FellBack(reason string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(reason).Inc()
}
