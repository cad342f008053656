package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetadataNotifications counts metadata-changed signals delivered to sessions.
	MetadataNotifications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nowplaying_metadata_notifications_total",
		Help: "Total number of metadata change notifications received by sessions",
	})

	// Presentations counts presenter calls by result.
	Presentations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nowplaying_presentations_total",
		Help: "Total number of now-playing presentations by result",
	}, []string{"result"})

	// SessionsActive tracks sessions currently registered.
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nowplaying_sessions_active",
		Help: "Number of media sessions currently registered",
	})
)

// IncMetadataNotification records one delivered notification.
func IncMetadataNotification() {
	MetadataNotifications.Inc()
}

// ObservePresentation records a presenter outcome.
func ObservePresentation(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	Presentations.WithLabelValues(result).Inc()
}

// SessionOpened records a session registered.
func SessionOpened() { SessionsActive.Inc() }

// SessionClosed records a session unregistered.
func SessionClosed() { SessionsActive.Dec() }
