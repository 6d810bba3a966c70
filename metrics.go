package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "navigation_queries_total",
		Help: "Total number of route and nearest facility queries by outcome.",
	}, []string{"kind", "status"})

	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "navigation_query_seconds",
		Help:    "Time spent answering a query, shortest path search included.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "navigation_graph_nodes",
		Help: "Number of nodes in the loaded road graph.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "navigation_graph_edges",
		Help: "Number of edges in the loaded road graph.",
	})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "navigation_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter.",
	})
)
