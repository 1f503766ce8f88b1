// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for row primitives and the options snapshot.
//
// Purpose:
//   - Expose unexported row operations and the resolved Options to matrix_test ONLY.
//   - The file ends in _test.go, so none of this reaches production builds.

import "github.com/katalvlaran/lvlinalg/scalar"

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicQRIterationsInvalid_TestOnly       = panicQRIterationsInvalid
	PanicDedupToleranceInvalid_TestOnly     = panicDedupToleranceInvalid
	PanicComponentThresholdInvalid_TestOnly = panicComponentThresholdInvalid
	PanicMaxDenominatorInvalid_TestOnly     = panicMaxDenominatorInvalid
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	QRIterations       int
	DedupTol           float64
	ComponentThreshold float64
	MaxDenominator     int64
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		QRIterations:       o.qrIterations,
		DedupTol:           o.dedupTol,
		ComponentThreshold: o.componentThreshold,
		MaxDenominator:     o.maxDenominator,
	}
}

// SwapRows_TestOnly applies swapRows to a clone and returns it.
func SwapRows_TestOnly[T scalar.Field[T]](m *Dense[T], i, k int) *Dense[T] {
	out := m.Clone()
	out.swapRows(i, k)

	return out
}

// ScaleRow_TestOnly applies scaleRow to a clone and returns it.
func ScaleRow_TestOnly[T scalar.Field[T]](m *Dense[T], i int, f T) *Dense[T] {
	out := m.Clone()
	out.scaleRow(i, f)

	return out
}

// AddMultipleOfRow_TestOnly applies addMultipleOfRow to a clone and returns it.
func AddMultipleOfRow_TestOnly[T scalar.Field[T]](m *Dense[T], dst, src int, f T) *Dense[T] {
	out := m.Clone()
	out.addMultipleOfRow(dst, src, f)

	return out
}

// InverseUncapped_TestOnly runs the augmented reduction without the det check.
func InverseUncapped_TestOnly[T scalar.Field[T]](m *Dense[T]) (*Dense[T], error) {
	return m.inverseUnchecked()
}
