// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// IsSymmetric reports whether m is square and m[i][j] equals m[j][i] for
// every i < j, using the field's equality (tolerance-based for Float).
// Non-square input reports false. Errors: ErrNilMatrix.
func IsSymmetric[T scalar.Field[T]](m *Dense[T]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("IsSymmetric", err)
	}
	if !m.IsSquare() {
		return false, nil
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !m.data[i*n+j].Equal(m.data[j*n+i]) {
				return false, nil
			}
		}
	}

	return true, nil
}
