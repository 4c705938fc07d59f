// Package metrics defines the custom Prometheus metrics for the gallery
// API. It is the single source of truth for metric names, labels, and
// help strings; request-level metrics come from the echoprometheus
// middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gallery"

// RegistrationsTotal counts account registrations by outcome.
// Label:
//   - result: "created", "duplicate", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionResolutionsTotal counts session token resolutions.
// Label:
//   - result: "ok", "invalid_token", "revoked", or "unknown_user"
var SessionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of session resolutions, by result.",
	},
	[]string{"result"},
)

// ImagesSavedTotal counts successfully stored images.
var ImagesSavedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_saved_total",
		Help:      "Total number of images written to the artifact store.",
	},
)

// ImageSaveBytes observes the size of stored images.
var ImageSaveBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "image_save_bytes",
		Help:      "Size distribution of stored images.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB .. 16GiB
	},
)

// OrphanedArtifactsTotal counts files left behind when the metadata
// append failed after a successful disk write. Each increment has a
// matching reconciliation log line carrying the orphaned key.
var OrphanedArtifactsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orphaned_artifacts_total",
		Help:      "Total number of stored files whose metadata append failed.",
	},
)

// ArtworksCreatedTotal counts gallery entries created.
var ArtworksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artworks_created_total",
		Help:      "Total number of gallery artwork entries created.",
	},
)
