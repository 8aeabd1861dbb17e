//go:build !geometry_noassert

package geometry

const checkInvariants = true
