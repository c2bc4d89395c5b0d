// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for generation and
// embedding runs. Each Registry owns a private prometheus.Registry; the CLI
// writes it to a textfile at exit instead of serving it.
package metrics
