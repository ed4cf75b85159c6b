// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported constants to matrix_test without widening
// the production API.

// PanicPivotToleranceInvalid mirrors the WithPivotTolerance panic message.
const PanicPivotToleranceInvalid = panicPivotToleranceInvalid
