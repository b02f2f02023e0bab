// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package terminal

// Width returns the width in columns of the terminal fd. Zero means unknown.
func Width(fd int) int {
	return 0
}
