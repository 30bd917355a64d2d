package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	createdCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskboard_tasks_created_total",
			Help: "Total number of Create operations",
		},
		[]string{"status"},
	)

	updatedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskboard_tasks_updated_total",
			Help: "Total number of Update operations",
		},
		[]string{"status"},
	)

	deletedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskboard_tasks_deleted_total",
			Help: "Total number of successful Delete operations",
		},
	)

	createDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "taskboard_create_duration_seconds",
			Help:    "Duration of Create operation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
