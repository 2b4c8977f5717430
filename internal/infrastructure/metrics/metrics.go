package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ruralconnect_messages_sent_total",
			Help: "Total messages persisted",
		},
	)

	MessagesDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ruralconnect_messages_delivered_total",
			Help: "Total live deliveries to websocket connections",
		},
	)

	LiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ruralconnect_live_connections",
			Help: "Currently attached websocket connections",
		},
	)

	AccountsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ruralconnect_accounts_registered_total",
			Help: "Total accounts registered",
		},
	)
)
