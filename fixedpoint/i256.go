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

package fixedpoint

// I256 is a signed 256-bit integer in the range [-2^255, 2^255-1],
// represented as sign + magnitude over U256 rather than two's complement.
// This mirrors the Abs()/ApplySign() split the teacher's Fix64/Fix128 types
// use: every recursive identity in the transcendental kernel (ln's
// reciprocal case, exp's negation case) branches on sign directly, which
// sign-magnitude exposes for free.
//
// The zero value of I256 is a valid representation of 0.
type I256 struct {
	neg bool
	abs U256
}

// I256MaxAbs is the magnitude of the most negative representable I256
// (2^255), one more than the magnitude of the largest positive value.
var I256MaxAbs = func() U256 {
	one := NewU256(1)
	// 2^255 = 1 << 255, built via repeated doubling to avoid depending on
	// any particular big.Int shift helper being exposed.
	v := one
	for i := 0; i < 255; i++ {
		var err error
		v, err = v.Add(v)
		if err != nil {
			panic("fixedpoint: 2^255 overflowed U256, which cannot happen")
		}
	}
	return v
}()

// I256Zero is the additive identity.
var I256Zero = I256{}

// NewI256 builds an I256 from an int64.
func NewI256(x int64) I256 {
	if x < 0 {
		return I256{neg: true, abs: NewU256(uint64(-x))}
	}
	return I256{neg: false, abs: NewU256(uint64(x))}
}

// newI256FromAbs builds a signed value from an explicit sign and magnitude,
// normalizing magnitude-zero to the canonical (non-negative) zero and
// checking the result is representable.
func newI256FromAbs(neg bool, abs U256) (I256, error) {
	if abs.IsZero() {
		return I256Zero, nil
	}
	if neg {
		if abs.Gt(I256MaxAbs) {
			return I256Zero, ErrUnderflow
		}
	} else {
		maxPos, err := I256MaxAbs.SubUint64(1)
		if err != nil {
			return I256Zero, err
		}
		if abs.Gt(maxPos) {
			return I256Zero, ErrOverflow
		}
	}
	return I256{neg: neg, abs: abs}, nil
}

// IsZero reports whether a is 0.
func (a I256) IsZero() bool { return a.abs.IsZero() }

// IsNeg reports whether a is strictly negative.
func (a I256) IsNeg() bool { return a.neg && !a.abs.IsZero() }

// Abs returns the magnitude of a together with its sign, expressed as +1 or
// -1 (0 is treated as positive).
func (a I256) Abs() (U256, int64) {
	if a.IsNeg() {
		return a.abs, -1
	}
	return a.abs, 1
}

// Neg returns -a, or OverflowError if a is the most negative representable
// value (whose negation would not fit).
func (a I256) Neg() (I256, error) {
	if a.abs.IsZero() {
		return I256Zero, nil
	}
	return newI256FromAbs(!a.neg, a.abs)
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a I256) Cmp(b I256) int {
	aNeg, bNeg := a.IsNeg(), b.IsNeg()
	switch {
	case aNeg && !bNeg:
		return -1
	case !aNeg && bNeg:
		return 1
	case !aNeg && !bNeg:
		return a.abs.Cmp(b.abs)
	default: // both negative: larger magnitude sorts smaller
		return b.abs.Cmp(a.abs)
	}
}

// Lt reports whether a < b.
func (a I256) Lt(b I256) bool { return a.Cmp(b) < 0 }

// Lte reports whether a <= b.
func (a I256) Lte(b I256) bool { return a.Cmp(b) <= 0 }

// Gt reports whether a > b.
func (a I256) Gt(b I256) bool { return a.Cmp(b) > 0 }

// Gte reports whether a >= b.
func (a I256) Gte(b I256) bool { return a.Cmp(b) >= 0 }

// Add returns a+b, or an overflow error if the (signed) sum does not fit.
func (a I256) Add(b I256) (I256, error) {
	if a.neg == b.neg {
		sum, err := a.abs.Add(b.abs)
		if err != nil {
			return I256Zero, err
		}
		return newI256FromAbs(a.neg, sum)
	}
	// Opposite signs: subtract the smaller magnitude from the larger; the
	// result takes the sign of the larger-magnitude operand.
	if a.abs.Gte(b.abs) {
		diff, _ := a.abs.Sub(b.abs)
		return newI256FromAbs(a.neg, diff)
	}
	diff, _ := b.abs.Sub(a.abs)
	return newI256FromAbs(b.neg, diff)
}

// Sub returns a-b.
func (a I256) Sub(b I256) (I256, error) {
	negB, err := b.Neg()
	if err != nil {
		return I256Zero, err
	}
	return a.Add(negB)
}

// Mul returns a*b.
func (a I256) Mul(b I256) (I256, error) {
	prod, err := a.abs.Mul(b.abs)
	if err != nil {
		return I256Zero, err
	}
	return newI256FromAbs(a.neg != b.neg, prod)
}

// Div returns the truncated (round-toward-zero) quotient of a/b.
func (a I256) Div(b I256) (I256, error) {
	quo, err := a.abs.Div(b.abs)
	if err != nil {
		return I256Zero, err
	}
	return newI256FromAbs(a.neg != b.neg, quo)
}

// ToU256 returns the unsigned value of a, or OverflowError if a is
// negative.
func (a I256) ToU256() (U256, error) {
	if a.IsNeg() {
		return U256Zero, ErrOverflow
	}
	return a.abs, nil
}

// I256FromU256 builds a non-negative I256 from a U256, or OverflowError if
// the value does not fit the positive I256 range.
func I256FromU256(x U256) (I256, error) {
	return newI256FromAbs(false, x)
}
