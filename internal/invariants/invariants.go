// Package invariants reports whether expensive self-checks are compiled
// in. Build with -tags invariants (or -race) to enable them.
package invariants
