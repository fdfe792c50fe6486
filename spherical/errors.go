// SPDX-License-Identifier: MIT

package spherical

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite is returned alongside the computed array when at least one
	// sample is NaN or ±Inf. The array is still fully populated.
	ErrNonFinite = errors.New("spherical: non-finite result")

	// ErrSingularShell marks samples where n_shell² − 1 vanishes (ε_shell = 1),
	// making the reflection coefficient undefined. It is always reported
	// together with ErrNonFinite.
	ErrSingularShell = errors.New("spherical: shell refractive index n = 1 is singular")
)

// sphericalErrorf tags err with the originating call site.
func sphericalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
