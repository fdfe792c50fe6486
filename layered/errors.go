// SPDX-License-Identifier: MIT

package layered

import (
	"errors"
	"fmt"
)

// ErrGeometry is returned by New under WithGeometryCheck when b + t differs
// from d beyond the configured relative tolerance.
var ErrGeometry = errors.New("layered: emitter offsets b + t must equal cavity thickness d")

// layeredErrorf tags err with the originating call site.
func layeredErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
