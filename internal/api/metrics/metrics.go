// Package metrics defines and registers all custom Prometheus metrics for
// the agency API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "connecta"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login form submissions.
// Label:
//   - result: "success" or "failure" (credential rejections of any kind)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionsRevokedTotal counts explicit logouts that revoked a live token.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of session tokens revoked by explicit logout.",
	},
)

// ── Blob store metrics ────────────────────────────────────────────────────────

// FilesUploadedTotal counts files stored through the upload endpoint or
// the contract flow.
var FilesUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_uploaded_total",
		Help:      "Total number of files written to the blob store.",
	},
)

// FilesDownloadedTotal counts successful blob downloads.
var FilesDownloadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_downloaded_total",
		Help:      "Total number of files read back from the blob store.",
	},
)

// ContractIntegrityFailuresTotal counts contract downloads whose bytes no
// longer match the hash recorded at upload time. Any nonzero value needs
// investigation.
var ContractIntegrityFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contract_integrity_failures_total",
		Help:      "Total number of contract downloads failing the stored-hash check.",
	},
)
