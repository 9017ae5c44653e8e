package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "joyjuncture_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "joyjuncture_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PointsAwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "joyjuncture_points_awarded_total",
			Help: "Total Joy Points awarded, by trigger",
		},
		[]string{"trigger"},
	)

	WalletTransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "joyjuncture_wallet_transactions_total",
			Help: "Total number of wallet transactions recorded",
		},
		[]string{"kind"},
	)

	WelcomeBonusesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "joyjuncture_welcome_bonuses_total",
			Help: "Total number of welcome bonuses granted",
		},
	)

	EventRegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "joyjuncture_event_registrations_total",
			Help: "Total number of event registrations",
		},
	)

	PurchasesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "joyjuncture_purchases_total",
			Help: "Total number of product purchases",
		},
	)

	GamesSolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "joyjuncture_games_solved_total",
			Help: "Total number of mini-games solved",
		},
		[]string{"game"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "joyjuncture_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "joyjuncture_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPointsAwarded(trigger string, points int) {
	PointsAwardedTotal.WithLabelValues(trigger).Add(float64(points))
}

func RecordWalletTransaction(kind string) {
	WalletTransactionsTotal.WithLabelValues(kind).Inc()
}

func RecordWelcomeBonus() {
	WelcomeBonusesTotal.Inc()
}

func RecordEventRegistration() {
	EventRegistrationsTotal.Inc()
}

func RecordPurchase() {
	PurchasesTotal.Inc()
}

func RecordGameSolved(game string) {
	GamesSolvedTotal.WithLabelValues(game).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
