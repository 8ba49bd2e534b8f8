// File: row.go
// Role: the per-site row codec shared by the text [parts] section and
// the CSV variant — both carry the same 8 fields in the same order.
package siteio

import (
	"fmt"
	"strconv"

	"github.com/halvorsen/spinlat/system"
)

// parseRow decodes one 8-field row (id, x, y, z, mx, my, mz, state) into
// a Site holding the recovered "up" moment and the spin implied by the
// state flag. id and the two unused z fields are validated as numbers
// but otherwise discarded; the site's position in the output sequence is
// its index, not the id field.
func parseRow(fields []string) (system.Site, bool, error) {
	if len(fields) != partsFieldCount {
		return system.Site{}, false, ErrTruncatedParts
	}

	var nums [7]float64
	// fields[0] is id, fields[1..6] are x,y,z,mx,my,mz.
	for i := 0; i < 7; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return system.Site{}, false, fmt.Errorf("%w: %q", ErrBadField, fields[i])
		}
		nums[i] = v
	}

	switch fields[7] {
	case "0":
	case "1":
	default:
		return system.Site{}, false, ErrBadStateFlag
	}
	down := fields[7] == "1"

	x, y := nums[1], nums[2]
	mx, my := nums[4], nums[5]
	if down {
		mx, my = -mx, -my
	}

	site := system.Site{
		Position: system.Vec2{X: x, Y: y},
		Moment:   system.Vec2{X: mx, Y: my},
	}

	return site, down, nil
}

// formatFields encodes site i's position, its moment as actually
// realized under down (inverted when down), and the state flag, as the
// 8 fields (id, x, y, z, mx, my, mz, state) shared by the text and CSV
// formats.
func formatFields(id int, site system.Site, down bool) [partsFieldCount]string {
	sign := 1.0
	state := "0"
	if down {
		sign = -1.0
		state = "1"
	}

	return [partsFieldCount]string{
		fmt.Sprintf("%d", id),
		fmt.Sprintf("%g", site.Position.X),
		fmt.Sprintf("%g", site.Position.Y),
		"0.0",
		fmt.Sprintf("%g", site.Moment.X*sign),
		fmt.Sprintf("%g", site.Moment.Y*sign),
		"0.0",
		state,
	}
}
