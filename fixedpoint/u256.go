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

import (
	"math/big"

	"github.com/holiman/uint256"
)

// U256 is an unsigned 256-bit integer in the range [0, 2^256-1]. Every
// arithmetic operation is checked: overflow is reported as an error rather
// than wrapping, unlike the raw EVM opcodes uint256.Int otherwise models.
//
// The zero value of U256 is a valid representation of 0.
type U256 struct {
	v uint256.Int
}

// U256Zero is the additive identity.
var U256Zero = U256{}

// NewU256 builds a U256 from a uint64.
func NewU256(x uint64) U256 {
	var u U256
	u.v.SetUint64(x)
	return u
}

// U256FromBig builds a U256 from a big.Int, returning OverflowError if x is
// negative or does not fit in 256 bits.
func U256FromBig(x *big.Int) (U256, error) {
	if x.Sign() < 0 {
		return U256Zero, ErrOverflow
	}
	v, overflow := uint256.FromBig(x)
	if overflow {
		return U256Zero, ErrOverflow
	}
	return U256{v: *v}, nil
}

// ToBig returns the value as a big.Int.
func (a U256) ToBig() *big.Int {
	return a.v.ToBig()
}

// String renders the decimal representation of a.
func (a U256) String() string {
	return a.v.String()
}

// IsZero reports whether a is 0.
func (a U256) IsZero() bool {
	return a.v.IsZero()
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a U256) Cmp(b U256) int {
	return a.v.Cmp(&b.v)
}

// Lt reports whether a < b.
func (a U256) Lt(b U256) bool { return a.Cmp(b) < 0 }

// Lte reports whether a <= b.
func (a U256) Lte(b U256) bool { return a.Cmp(b) <= 0 }

// Gt reports whether a > b.
func (a U256) Gt(b U256) bool { return a.Cmp(b) > 0 }

// Gte reports whether a >= b.
func (a U256) Gte(b U256) bool { return a.Cmp(b) >= 0 }

// Add returns a+b, or OverflowError if the sum does not fit in 256 bits.
func (a U256) Add(b U256) (U256, error) {
	var res uint256.Int
	_, overflow := res.AddOverflow(&a.v, &b.v)
	if overflow {
		return U256Zero, ErrOverflow
	}
	return U256{v: res}, nil
}

// Sub returns a-b, or UnderflowError if b > a.
func (a U256) Sub(b U256) (U256, error) {
	var res uint256.Int
	_, underflow := res.SubOverflow(&a.v, &b.v)
	if underflow {
		return U256Zero, ErrUnderflow
	}
	return U256{v: res}, nil
}

// Mul returns a*b, or OverflowError if the product does not fit in 256 bits.
func (a U256) Mul(b U256) (U256, error) {
	var res uint256.Int
	_, overflow := res.MulOverflow(&a.v, &b.v)
	if overflow {
		return U256Zero, ErrOverflow
	}
	return U256{v: res}, nil
}

// Div returns floor(a/b), or DivByZeroError if b is 0.
func (a U256) Div(b U256) (U256, error) {
	if b.IsZero() {
		return U256Zero, ErrDivByZero
	}
	var res uint256.Int
	res.Div(&a.v, &b.v)
	return U256{v: res}, nil
}

// MulDiv returns floor(a*b/c) computed without intermediate overflow (the
// product a*b may exceed 256 bits even when the final quotient does not).
// Returns DivByZeroError if c is 0, OverflowError if the (unrounded)
// quotient itself does not fit in 256 bits.
func (a U256) MulDiv(b, c U256) (U256, error) {
	if c.IsZero() {
		return U256Zero, ErrDivByZero
	}
	var res uint256.Int
	_, overflow := res.MulDivOverflow(&a.v, &b.v, &c.v)
	if overflow {
		return U256Zero, ErrOverflow
	}
	return U256{v: res}, nil
}

// AddUint64 returns a+b where b is a small integer constant, or
// OverflowError on overflow.
func (a U256) AddUint64(b uint64) (U256, error) {
	return a.Add(NewU256(b))
}

// SubUint64 returns a-b where b is a small integer constant, or
// UnderflowError on underflow.
func (a U256) SubUint64(b uint64) (U256, error) {
	return a.Sub(NewU256(b))
}

// MulUint64 returns a*b where b is a small integer constant, or
// OverflowError on overflow. Used internally for the decomposition loops in
// the transcendental kernel, where b is always a small loop-carried
// constant and can never itself overflow a uint64.
func (a U256) MulUint64(b uint64) (U256, error) {
	return a.Mul(NewU256(b))
}

// DivUint64 returns floor(a/b) where b is a small integer constant, or
// DivByZeroError if b is 0.
func (a U256) DivUint64(b uint64) (U256, error) {
	return a.Div(NewU256(b))
}
