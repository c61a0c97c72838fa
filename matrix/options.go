// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering.
// This file defines:
//   - RenderOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRenderOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision selects Go's shortest round-trip formatting
	// (strconv 'g' with precision -1): 22 renders as "22", 0.1 as "0.1".
	DefaultPrecision = -1

	// DefaultSeparator is placed between values of one row; never after the last.
	DefaultSeparator = " "
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
	panicSeparatorEmpty   = "matrix: WithSeparator: separator must be non-empty"
)

// RenderOption mutates render options. Safe to apply repeatedly.
type RenderOption func(*renderOptions)

// renderOptions stores the effective configuration after applying RenderOption setters.
type renderOptions struct {
	precision int    // -1 ⇒ shortest round-trip ('g'); >=0 ⇒ fixed decimals ('f')
	separator string // between values of one row
}

// WithPrecision switches rendering to fixed-decimal notation with p digits
// after the point. p == -1 restores the shortest round-trip default.
// Panics when p < -1.
func WithPrecision(p int) RenderOption {
	if p < DefaultPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *renderOptions) { o.precision = p }
}

// WithSeparator overrides the value separator. Panics on an empty separator,
// which would make the rendered values ambiguous.
func WithSeparator(sep string) RenderOption {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *renderOptions) { o.separator = sep }
}

// defaultRenderOptions returns the documented defaults.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		precision: DefaultPrecision,
		separator: DefaultSeparator,
	}
}

// gatherRenderOptions applies user setters over the defaults in order; later wins.
func gatherRenderOptions(user ...RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
