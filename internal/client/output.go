// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/kasa/models"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cells ...string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func printSalts(w io.Writer, salts []models.SaltInfo) error {
	tw := newTable(w, "ID", "METHOD", "VALUE", "CREATED")
	for _, s := range salts {
		row(tw, id(s.ID), s.Method.String(), s.ValuePreview, formatTime(s.CreatedAt))
	}
	return tw.Flush()
}

func printCiphers(w io.Writer, ciphers []models.CipherInfo) error {
	tw := newTable(w, "ID", "NAME", "METHOD", "SALT", "UPDATED")
	for _, c := range ciphers {
		row(tw, id(c.ID), c.Name, c.Method.String(), id(c.SaltID), formatTime(c.UpdatedAt))
	}
	return tw.Flush()
}

func printSuggestions(w io.Writer, suggestions []models.Suggestion) error {
	tw := newTable(w, "ID", "NAME", "METHOD")
	for _, s := range suggestions {
		row(tw, id(s.ID), s.Name, s.Method.String())
	}
	return tw.Flush()
}

func parseID(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return v, nil
}
