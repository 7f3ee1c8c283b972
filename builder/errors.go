// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Every argument sentinel wraps core.ErrInvalidArgument.
//   • Implementations attach context with `%w`.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// ErrNilGraph indicates a nil *core.Graph was handed to a generator.
var ErrNilGraph = fmt.Errorf("%w: builder: graph is nil", core.ErrInvalidArgument)

// ErrInvalidMaxWeight indicates a weight ceiling that is not positive.
var ErrInvalidMaxWeight = fmt.Errorf("%w: builder: max weight must be positive", core.ErrInvalidArgument)

// ErrInvalidDegreeCap indicates a negative primary cap or an empty/negative secondary range.
var ErrInvalidDegreeCap = fmt.Errorf("%w: builder: invalid degree cap", core.ErrInvalidArgument)

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = fmt.Errorf("%w: builder: probability out of range", core.ErrInvalidArgument)

// ErrConstructFailed indicates BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
