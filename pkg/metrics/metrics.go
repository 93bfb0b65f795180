package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	WillsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "elatco", Name: "wills_created_total", Help: "Number of will records created."},
	)
	PDFsRendered = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "elatco", Name: "pdfs_rendered_total", Help: "Number of will PDFs rendered."},
	)
	ArtifactsRegenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "elatco", Name: "artifacts_regenerated_total", Help: "Number of PDF artifacts regenerated after going missing from storage."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "elatco", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "elatco", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(WillsCreated)
	reg.MustRegister(PDFsRendered)
	reg.MustRegister(ArtifactsRegenerated)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
