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

// Fixed18 is an unsigned 18-decimal fixed-point number: the U256 value X
// represents the real number X / 1e18.
type Fixed18 struct {
	raw U256
}

// FixedZero is 0.0.
var FixedZero = Fixed18{}

// FixedOne is 1.0.
var FixedOne = Fixed18{raw: ONE}

// NewFixed18 wraps a raw U256 scaled value (i.e. raw == x * 1e18).
func NewFixed18(raw U256) Fixed18 { return Fixed18{raw: raw} }

// Raw returns the underlying scaled integer value.
func (a Fixed18) Raw() U256 { return a.raw }

// IsZero reports whether a is 0.
func (a Fixed18) IsZero() bool { return a.raw.IsZero() }

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a Fixed18) Cmp(b Fixed18) int { return a.raw.Cmp(b.raw) }

func (a Fixed18) Lt(b Fixed18) bool  { return a.Cmp(b) < 0 }
func (a Fixed18) Lte(b Fixed18) bool { return a.Cmp(b) <= 0 }
func (a Fixed18) Gt(b Fixed18) bool  { return a.Cmp(b) > 0 }
func (a Fixed18) Gte(b Fixed18) bool { return a.Cmp(b) >= 0 }

// Add returns a+b, or OverflowError on overflow.
func (a Fixed18) Add(b Fixed18) (Fixed18, error) {
	r, err := a.raw.Add(b.raw)
	return Fixed18{raw: r}, err
}

// Sub returns a-b, or UnderflowError if b > a.
func (a Fixed18) Sub(b Fixed18) (Fixed18, error) {
	r, err := a.raw.Sub(b.raw)
	return Fixed18{raw: r}, err
}

// MulDown returns floor(a*b / 1e18), the rounded-toward-zero product.
// Fails with OverflowError if a*b >= 2^256.
func (a Fixed18) MulDown(b Fixed18) (Fixed18, error) {
	prod, err := a.raw.Mul(b.raw)
	if err != nil {
		return FixedZero, err
	}
	r, err := prod.Div(ONE)
	if err != nil {
		return FixedZero, err
	}
	return Fixed18{raw: r}, nil
}

// MulUp returns the ceiling of a*b / 1e18. Returns 0 if a*b == 0, otherwise
// floor((a*b-1)/1e18) + 1. Fails with OverflowError on the same conditions
// as MulDown.
func (a Fixed18) MulUp(b Fixed18) (Fixed18, error) {
	prod, err := a.raw.Mul(b.raw)
	if err != nil {
		return FixedZero, err
	}
	if prod.IsZero() {
		return FixedZero, nil
	}
	numerator, err := prod.SubUint64(1)
	if err != nil {
		return FixedZero, err
	}
	q, err := numerator.Div(ONE)
	if err != nil {
		return FixedZero, err
	}
	r, err := q.AddUint64(1)
	if err != nil {
		return FixedZero, err
	}
	return Fixed18{raw: r}, nil
}

// DivDown returns floor(a*1e18 / b). Returns 0 if a == 0. Fails with
// DivByZeroError if b == 0.
func (a Fixed18) DivDown(b Fixed18) (Fixed18, error) {
	if a.IsZero() {
		if b.IsZero() {
			return FixedZero, ErrDivByZero
		}
		return FixedZero, nil
	}
	r, err := a.raw.MulDiv(ONE, b.raw)
	if err != nil {
		return FixedZero, err
	}
	return Fixed18{raw: r}, nil
}

// DivUp returns the ceiling of a*1e18 / b. Returns 0 if a == 0. Fails with
// DivByZeroError if b == 0.
func (a Fixed18) DivUp(b Fixed18) (Fixed18, error) {
	if b.IsZero() {
		return FixedZero, ErrDivByZero
	}
	if a.IsZero() {
		return FixedZero, nil
	}
	numerator, err := a.raw.Mul(ONE)
	if err != nil {
		return FixedZero, err
	}
	numerator, err = numerator.SubUint64(1)
	if err != nil {
		return FixedZero, err
	}
	q, err := numerator.Div(b.raw)
	if err != nil {
		return FixedZero, err
	}
	r, err := q.AddUint64(1)
	if err != nil {
		return FixedZero, err
	}
	return Fixed18{raw: r}, nil
}

// Complement returns 1e18 - x when x < 1e18, else 0. Never fails.
func (a Fixed18) Complement() Fixed18 {
	if a.raw.Gte(ONE) {
		return FixedZero
	}
	r, _ := ONE.Sub(a.raw)
	return Fixed18{raw: r}
}

// SFixed18 is a signed 18-decimal fixed-point number.
type SFixed18 struct {
	raw I256
}

// SFixedZero is 0.0.
var SFixedZero = SFixed18{}

// SFixedOne is 1.0.
var SFixedOne = SFixed18{raw: ONE_I}

// NewSFixed18 wraps a raw I256 scaled value.
func NewSFixed18(raw I256) SFixed18 { return SFixed18{raw: raw} }

// FromFixed18 reinterprets an unsigned fixed-point value as a (necessarily
// non-negative) signed one.
func FromFixed18(a Fixed18) (SFixed18, error) {
	s, err := I256FromU256(a.raw)
	return SFixed18{raw: s}, err
}

// ToFixed18 converts a non-negative signed value to its unsigned
// counterpart, or OverflowError if a is negative.
func (a SFixed18) ToFixed18() (Fixed18, error) {
	u, err := a.raw.ToU256()
	return Fixed18{raw: u}, err
}

// Raw returns the underlying scaled signed integer value.
func (a SFixed18) Raw() I256 { return a.raw }

// IsZero reports whether a is 0.
func (a SFixed18) IsZero() bool { return a.raw.IsZero() }

// IsNeg reports whether a is strictly negative.
func (a SFixed18) IsNeg() bool { return a.raw.IsNeg() }

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a SFixed18) Cmp(b SFixed18) int { return a.raw.Cmp(b.raw) }

func (a SFixed18) Lt(b SFixed18) bool  { return a.Cmp(b) < 0 }
func (a SFixed18) Lte(b SFixed18) bool { return a.Cmp(b) <= 0 }
func (a SFixed18) Gt(b SFixed18) bool  { return a.Cmp(b) > 0 }
func (a SFixed18) Gte(b SFixed18) bool { return a.Cmp(b) >= 0 }

// Neg returns -a.
func (a SFixed18) Neg() (SFixed18, error) {
	r, err := a.raw.Neg()
	return SFixed18{raw: r}, err
}

// Add returns a+b.
func (a SFixed18) Add(b SFixed18) (SFixed18, error) {
	r, err := a.raw.Add(b.raw)
	return SFixed18{raw: r}, err
}

// Sub returns a-b.
func (a SFixed18) Sub(b SFixed18) (SFixed18, error) {
	r, err := a.raw.Sub(b.raw)
	return SFixed18{raw: r}, err
}
