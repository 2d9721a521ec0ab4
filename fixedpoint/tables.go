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

import "math/big"

func mustU256FromDecimal(s string) U256 {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("fixedpoint: bad decimal literal " + s)
	}
	u, err := U256FromBig(v)
	if err != nil {
		panic(err)
	}
	return u
}

func mustI256FromDecimal(s string) I256 {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("fixedpoint: bad decimal literal " + s)
	}
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	u, err := U256FromBig(abs)
	if err != nil {
		panic(err)
	}
	r, err := newI256FromAbs(neg, u)
	if err != nil {
		panic(err)
	}
	return r
}

// Fixed-point scale constants, per spec.md §3.
var (
	// ONE represents 1.0 in 18-decimal fixed point.
	ONE = mustU256FromDecimal("1000000000000000000")
	// HUNDRED represents 1.0 in 20-decimal fixed point (used internally by
	// the ln/exp decomposition, which carries two extra decimals of
	// precision during its running sums).
	HUNDRED = mustU256FromDecimal("100000000000000000000")
	// WUMBO represents 1.0 in 36-decimal fixed point (used by ln36).
	WUMBO = mustU256FromDecimal("1000000000000000000000000000000000000")

	// ONE_I, HUNDRED_I are the signed counterparts, used throughout the
	// transcendental kernel which operates on signed intermediates.
	ONE_I     = mustI256FromDecimal("1000000000000000000")
	HUNDRED_I = mustI256FromDecimal("100000000000000000000")
)

// Signed exponent domain bounds for exp(), per spec.md §3.
var (
	MAX_EXP = mustI256FromDecimal("130000000000000000000")  // 130 * 1e18
	MIN_EXP = mustI256FromDecimal("-41000000000000000000")  // -41 * 1e18
)

// ln() routing bounds, per spec.md §3: within (LN_LOWER, LN_UPPER) the
// 36-decimal ln36 kernel is used directly instead of the decomposition
// loop.
var (
	LN_LOWER = mustI256FromDecimal("900000000000000000")   // 0.9 * 1e18
	LN_UPPER = mustI256FromDecimal("11000000000000000000") // 11 * 1e18

	// Unsigned counterparts: ln()'s decomposition branch operates entirely
	// on non-negative magnitudes (see logexp.go), so it compares against
	// these instead of converting back and forth through I256.
	lnLowerU = mustU256FromDecimal("900000000000000000")
	lnUpperU = mustU256FromDecimal("11000000000000000000")
)

// MILD_EXPONENT_BOUND is 2^254 / HUNDRED: the largest exponent pow() will
// accept without risking overflow when multiplied by a signed ln() result
// at 20-decimal precision.
var MILD_EXPONENT_BOUND = func() U256 {
	one := NewU256(1)
	v := one
	for i := 0; i < 254; i++ {
		var err error
		v, err = v.Add(v)
		if err != nil {
			panic("fixedpoint: 2^254 overflowed U256")
		}
	}
	q, err := v.Div(HUNDRED)
	if err != nil {
		panic(err)
	}
	return q
}()

// lnTableEntry is one row of the precomputed decomposition table used by
// both ln() (all 12 rows) and exp() (rows 2..9 plus the X0/X1 greedy step).
// x_n = 2^(7-n) * 1e18 (n=0,1 carried as plain integers; n>=2 carried at
// 20-decimal scale, i.e. multiplied by an additional 100). a_n = e^(x_n),
// stored at 0 decimals for n=0,1 and 20 decimals for n=2..11, per spec.md §3.
type lnTableEntry struct {
	x U256 // x_n
	a U256 // a_n = e^(x_n)
}

// These are the classic Balancer V2 LogExpMath decomposition constants: the
// same 12-row (x_n, a_n) table spec.md §3 specifies by formula.
var lnTable = [12]lnTableEntry{
	{ // n=0: x0 = 128e18 (plain integer), a0 = e^128 (plain integer)
		x: mustU256FromDecimal("128000000000000000000"),
		a: mustU256FromDecimal("38877084059945950922200000000000000000000000000000000000"),
	},
	{ // n=1: x1 = 64e18 (plain integer), a1 = e^64 (plain integer)
		x: mustU256FromDecimal("64000000000000000000"),
		a: mustU256FromDecimal("6235149080811616882910000000"),
	},
	{ // n=2: x2 = 32e18 at 20-decimal scale, a2 = e^32 at 20-decimal scale
		x: mustU256FromDecimal("3200000000000000000000"),
		a: mustU256FromDecimal("7896296018268069516100000000000000"),
	},
	{ // n=3: x3 = 16e18 at 20-decimal scale
		x: mustU256FromDecimal("1600000000000000000000"),
		a: mustU256FromDecimal("888611052050787263676000000"),
	},
	{ // n=4: x4 = 8e18 at 20-decimal scale
		x: mustU256FromDecimal("800000000000000000000"),
		a: mustU256FromDecimal("298095798704172827474000"),
	},
	{ // n=5: x5 = 4e18 at 20-decimal scale
		x: mustU256FromDecimal("400000000000000000000"),
		a: mustU256FromDecimal("5459815003314423907810"),
	},
	{ // n=6: x6 = 2e18 at 20-decimal scale
		x: mustU256FromDecimal("200000000000000000000"),
		a: mustU256FromDecimal("738905609893065022723"),
	},
	{ // n=7: x7 = 1e18 at 20-decimal scale
		x: mustU256FromDecimal("100000000000000000000"),
		a: mustU256FromDecimal("271828182845904523536"),
	},
	{ // n=8: x8 = 0.5e18 at 20-decimal scale
		x: mustU256FromDecimal("50000000000000000000"),
		a: mustU256FromDecimal("164872127070012814685"),
	},
	{ // n=9: x9 = 0.25e18 at 20-decimal scale
		x: mustU256FromDecimal("25000000000000000000"),
		a: mustU256FromDecimal("128402541668774148407"),
	},
	{ // n=10: x10 = 0.125e18 at 20-decimal scale (ln only)
		x: mustU256FromDecimal("12500000000000000000"),
		a: mustU256FromDecimal("113314845306682631683"),
	},
	{ // n=11: x11 = 0.0625e18 at 20-decimal scale (ln only)
		x: mustU256FromDecimal("6250000000000000000"),
		a: mustU256FromDecimal("106449445891785942956"),
	},
}

// ln2_20 is ln(2) at 20-decimal scale, used nowhere directly (the
// decomposition table's x_n/a_n pairs already encode powers of two via
// e^(x_n) rather than via an explicit ln(2) constant, unlike the teacher's
// binary-scaled Ln() which adds back k*ln(2)); kept for documentation
// parity with the teacher and potential future binary-scaled conversions.
var ln2_20 = mustU256FromDecimal("69314718055994530942")
