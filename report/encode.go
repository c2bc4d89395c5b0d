// SPDX-License-Identifier: MIT
// Package: qubogrid/report
//
// encode.go — JSON, YAML and MessagePack encodings.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a format other than json, yaml or msgpack.
var ErrUnknownFormat = errors.New("report: unknown format")

// Encode writes r to w in format.
func Encode(w io.Writer, format string, r *Report) error {
	var err error
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	case "msgpack":
		err = msgpack.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("Encode: %q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Encode %s: %w", format, err)
	}

	return nil
}

// Decode reads a report written by Encode.
func Decode(rd io.Reader, format string) (*Report, error) {
	r := new(Report)
	var err error
	switch format {
	case "json":
		err = json.NewDecoder(rd).Decode(r)
	case "yaml":
		err = yaml.NewDecoder(rd).Decode(r)
	case "msgpack":
		err = msgpack.NewDecoder(rd).Decode(r)
	default:
		return nil, fmt.Errorf("Decode: %q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("Decode %s: %w", format, err)
	}

	return r, nil
}
