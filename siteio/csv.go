// File: csv.go
// Role: the 8-column CSV variant of the site format — same per-row
// fields as the text format's [parts] section, no header/footer
// sections at all.
package siteio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/halvorsen/spinlat/system"
)

// LoadCSV reads 8-column rows (id, x, y, z, mx, my, mz, state) with the
// same semantics as Load's [parts] section, and returns a System already
// set to the saved spin configuration.
func LoadCSV(r io.Reader) (*system.System, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = partsFieldCount

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("siteio: csv: %w", err)
	}

	sites := make([]system.Site, 0, len(records))
	state := make([]bool, 0, len(records))
	for _, record := range records {
		site, down, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("siteio: csv: %w", err)
		}
		sites = append(sites, site)
		state = append(state, down)
	}

	sys, err := system.NewSystem(sites)
	if err != nil {
		return nil, fmt.Errorf("siteio: csv: %w", err)
	}
	if err := sys.SetState(state); err != nil {
		return nil, fmt.Errorf("siteio: csv: %w", err)
	}

	return sys, nil
}

// SaveCSV writes sys as one 8-column row per site, in the same field
// order and moment-inversion convention as Save.
func SaveCSV(w io.Writer, sys *system.System) error {
	writer := csv.NewWriter(w)

	state := sys.State()
	for i, site := range sys.Sites() {
		fields := formatFields(i, site, state[i])
		if err := writer.Write(fields[:]); err != nil {
			return fmt.Errorf("siteio: csv: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("siteio: csv: %w", err)
	}

	return nil
}
