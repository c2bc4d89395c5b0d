// SPDX-License-Identifier: MIT

// Package report assembles the CLI's run record (run ID, generated graphs,
// hardware summary, embedding outcome, layout positions) and encodes it as
// JSON, YAML or MessagePack for a downstream renderer.
package report
