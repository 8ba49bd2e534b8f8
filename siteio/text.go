// File: text.go
// Role: the line-oriented text format ([header]/[parts] sections), read
// with a bufio.Scanner doing line-by-line dispatch on a marker line.
package siteio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/halvorsen/spinlat/system"
)

// Load reads the line-oriented text format from r: lines before [parts]
// are skipped (including the [header] section itself, which this reader
// does not validate beyond its presence being implied by reaching
// [parts]), then every non-blank line after [parts] is parsed as one
// site row. Returns a System already set to the saved spin configuration.
func Load(r io.Reader) (*system.System, error) {
	scanner := bufio.NewScanner(r)

	inParts := false
	var sites []system.Site
	var state []bool

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "[parts]" {
			inParts = true
			continue
		}
		if !inParts {
			continue
		}

		site, down, err := parseRow(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("siteio: text: %w", err)
		}
		sites = append(sites, site)
		state = append(state, down)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("siteio: text: %w", err)
	}
	if !inParts {
		return nil, fmt.Errorf("siteio: text: %w", ErrMalformedHeader)
	}

	sys, err := system.NewSystem(sites)
	if err != nil {
		return nil, fmt.Errorf("siteio: text: %w", err)
	}
	if err := sys.SetState(state); err != nil {
		return nil, fmt.Errorf("siteio: text: %w", err)
	}

	return sys, nil
}

// Save writes sys in the line-oriented text format: a [header] section
// with the site count and the current state as an N-character '0'/'1'
// string, then a [parts] section with one row per site.
func Save(w io.Writer, sys *system.System) error {
	var b strings.Builder

	n := sys.Size()
	state := sys.State()

	b.WriteString("[header]\n")
	b.WriteString("dimensions=2\n")
	fmt.Fprintf(&b, "size=%d\n", n)
	b.WriteString("state=")
	b.WriteString(stateString(state))
	b.WriteString("\n[parts]\n")

	sites := sys.Sites()
	for i, site := range sites {
		fields := formatFields(i, site, state[i])
		b.WriteString(strings.Join(fields[:], "\t"))
		b.WriteString("\n")
	}

	_, err := w.Write([]byte(b.String()))
	if err != nil {
		return fmt.Errorf("siteio: text: %w", err)
	}

	return nil
}

// stateString renders a spin vector as an N-character string of '0'
// (up) / '1' (down).
func stateString(state []bool) string {
	b := make([]byte, len(state))
	for i, down := range state {
		if down {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}

	return string(b)
}
