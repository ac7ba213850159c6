package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is the metric sink of the CA service
type Recorder interface {
	// CamSent is called once per transmitted CAM with its encoded length
	CamSent(bytes int)
	// CamReceived is called once per decoded peer CAM
	CamReceived(valid bool)
}

// Prometheus records CA service signals as Prometheus series
type Prometheus struct {
	sent      prometheus.Counter
	sentBytes prometheus.Histogram
	received  *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them on reg.
// A nil reg uses the default registerer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &Prometheus{
		sent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "castation",
			Name:      "cam_sent_total",
			Help:      "CAMs handed to the transport layer",
		}),
		sentBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "castation",
			Name:      "cam_sent_bytes",
			Help:      "Encoded size of transmitted CAMs",
			Buckets:   prometheus.LinearBuckets(32, 16, 8),
		}),
		received: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "castation",
			Name:      "cam_received_total",
			Help:      "Decoded CAMs received from neighbors",
		}, []string{"valid"}),
	}

	reg.MustRegister(p.sent, p.sentBytes, p.received)
	return p
}

func (p *Prometheus) CamSent(bytes int) {
	p.sent.Inc()
	p.sentBytes.Observe(float64(bytes))
}

func (p *Prometheus) CamReceived(valid bool) {
	label := "false"
	if valid {
		label = "true"
	}
	p.received.WithLabelValues(label).Inc()
}

// Nop discards all signals
type Nop struct{}

func (Nop) CamSent(int)      {}
func (Nop) CamReceived(bool) {}
