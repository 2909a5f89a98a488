// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"
	"strings"
)

// Strategy selects how MultipleLinear solves for β.
type Strategy int

const (
	// PseudoInverse computes β = pinv(X)·Y through an SVD. No dimension limit.
	PseudoInverse Strategy = iota
	// NormalEquation computes β = (XᵀX)⁻¹XᵀY. Because the inverse is closed-form
	// for 2×2/3×3 only, it fails with ErrCapacity beyond three coefficients.
	NormalEquation
)

// DefaultStrategy is the strategy used when WithStrategy is not given.
const DefaultStrategy = PseudoInverse

// DefaultIntercept prepends a bias column so β[0] is the intercept.
const DefaultIntercept = true

const panicStrategyInvalid = "regression: WithStrategy: unknown strategy"

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case PseudoInverse:
		return "pinv"
	case NormalEquation:
		return "normal"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "pinv"/"pseudo-inverse" and "normal"/"normal-equation"
// (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pinv", "pseudo-inverse", "pseudoinverse":
		return PseudoInverse, nil
	case "normal", "normal-equation", "normal-equations":
		return NormalEquation, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", s, ErrUnknownStrategy)
	}
}

// Option configures MultipleLinear.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strategy  Strategy
	intercept bool
}

// WithStrategy selects the solver. Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != PseudoInverse && s != NormalEquation {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithNoIntercept fits through the origin: no bias column, β has one entry per feature.
func WithNoIntercept() Option {
	return func(o *Options) { o.intercept = false }
}

// gatherOptions applies user setters over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{strategy: DefaultStrategy, intercept: DefaultIntercept}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
