//go:build goarrays_debug

package contract

// Enabled reports whether assertions are compiled in.
const Enabled = true
