// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping lisa.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lisa
var script string //nolint:gochecknoglobals

// Script returns the boot script for lisa.
func Script() string {
	return script
}
