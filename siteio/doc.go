// Package siteio reads and writes spin-lattice configurations in the two
// external formats: a line-oriented text format with [header]/[parts]
// sections, and an 8-column CSV variant with the same per-row fields.
// Both share the same moment-inversion convention: a site whose spin is
// down is written with its moment already multiplied by -1, so loaders
// must invert it back to recover the site's fixed "up" moment.
package siteio
