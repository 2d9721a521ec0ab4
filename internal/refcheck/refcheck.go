/*
 * Copyright Weighted Math Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package refcheck is a test-only arbitrary-precision oracle for the
// transcendental kernel. It has no business being imported outside _test.go
// files: production code never needs more precision than the 18/36-decimal
// fixed-point the library itself carries, but the tests want an independent
// high-precision ln/exp/pow to bound the kernel's approximation error
// against, the same role the teacher's fix64_testdata.go/fix128_testdata.go
// decimal helpers play for its binary-scaled rounding tests.
package refcheck

import (
	"math/big"

	"github.com/ericlagergren/decimal"
	decmath "github.com/ericlagergren/decimal/math"

	"github.com/flowfoundation/weightedmath/fixedpoint"
)

// Precision is the number of significant decimal digits the oracle carries,
// comfortably beyond the 36 decimals the kernel itself ever needs.
const Precision = 80

// Dec builds a fresh, high-precision decimal.Big.
func Dec() *decimal.Big {
	return decimal.WithPrecision(Precision)
}

// FromFixed18 converts an unsigned 18-decimal fixed-point value into its
// exact decimal representation.
func FromFixed18(x fixedpoint.Fixed18) *decimal.Big {
	return new(decimal.Big).SetBigMantScale(x.Raw().ToBig(), 18)
}

// FromSFixed18 converts a signed 18-decimal fixed-point value into its
// exact decimal representation.
func FromSFixed18(x fixedpoint.SFixed18) *decimal.Big {
	abs, sign := x.Raw().Abs()
	d := new(decimal.Big).SetBigMantScale(abs.ToBig(), 18)
	if sign < 0 {
		d.Neg(d)
	}
	return d
}

// ToSFixed18Raw rounds a decimal value to the nearest representable
// 18-decimal raw integer, for comparing an oracle result against a kernel
// result at the kernel's own precision.
func ToSFixed18Raw(d *decimal.Big) *big.Int {
	shifted := Dec().Mul(d, pow10(18))
	rounded := shifted.RoundToInt()
	out := new(big.Int)
	rounded.Int(out)
	return out
}

func pow10(n int) *decimal.Big {
	return Dec().SetMantScale(1, -n)
}

// Ln computes ln(x) to Precision significant digits.
func Ln(x *decimal.Big) *decimal.Big {
	return decmath.Log(Dec(), x)
}

// Exp computes e^x to Precision significant digits.
func Exp(x *decimal.Big) *decimal.Big {
	return decmath.Exp(Dec(), x)
}

// Pow computes base^exp = exp(exp*ln(base)) to Precision significant
// digits, mirroring how the kernel itself composes Pow from Ln and Exp
// (rather than using decmath.Pow directly) so the oracle exercises the same
// identity the implementation relies on.
func Pow(base, exp *decimal.Big) *decimal.Big {
	l := Ln(base)
	prod := Dec().Mul(exp, l)
	return Exp(prod)
}

// AbsDiff returns |a-b|.
func AbsDiff(a, b *decimal.Big) *decimal.Big {
	diff := Dec().Sub(a, b)
	return Dec().Abs(diff)
}
