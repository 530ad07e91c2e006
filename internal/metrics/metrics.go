package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for transcription requests.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Recorder tracks transcription request counts and relay latency.
type Recorder struct {
	transcriptions *prometheus.CounterVec
	duration       prometheus.Histogram
	uploadBytes    prometheus.Histogram
}

// NewRecorder registers the scribe metrics on the given registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		transcriptions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scribe_transcriptions_total",
			Help: "Transcription requests by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "scribe_transcription_duration_seconds",
			Help:    "Wall time of the downstream transcription call.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
		uploadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "scribe_upload_size_bytes",
			Help:    "Size of accepted audio uploads.",
			Buckets: prometheus.ExponentialBuckets(16*1024, 4, 8),
		}),
	}
}

// RecordOutcome counts one finished transcription request.
func (r *Recorder) RecordOutcome(outcome string) {
	r.transcriptions.WithLabelValues(outcome).Inc()
}

// ObserveDuration records how long the downstream call took.
func (r *Recorder) ObserveDuration(d time.Duration) {
	r.duration.Observe(d.Seconds())
}

// ObserveUploadSize records the size of an accepted upload.
func (r *Recorder) ObserveUploadSize(bytes int64) {
	r.uploadBytes.Observe(float64(bytes))
}
