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

// Ln returns the natural logarithm of a, scaled at 18 decimals. Returns
// DomainError if a <= 0.
//
// Three regimes, matching the greedy decomposition the LogExpMath family of
// contracts popularized:
//
//  1. a within (LN_LOWER, LN_UPPER): handled directly by ln36, which carries
//     18 extra decimal digits through its Taylor series before truncating
//     back down.
//  2. a < 1e18: ln(a) = -ln(1e36/a). The reciprocal is itself >= 1e18 and
//     recurses into regime 1 or 3.
//  3. Otherwise: greedy decomposition against the precomputed (x_n, a_n)
//     table, finishing with the same Taylor series ln36 uses.
func Ln(a SFixed18) (SFixed18, error) {
	if a.IsNeg() || a.IsZero() {
		return SFixedZero, ErrDomain
	}
	aRaw, err := a.raw.ToU256()
	if err != nil {
		return SFixedZero, err
	}
	raw, err := lnRaw(aRaw)
	if err != nil {
		return SFixedZero, err
	}
	return SFixed18{raw: raw}, nil
}

func lnRaw(aRaw U256) (I256, error) {
	if aRaw.Gt(lnLowerU) && aRaw.Lt(lnUpperU) {
		l36, err := ln36(aRaw)
		if err != nil {
			return I256Zero, err
		}
		// l36 is at 36-decimal scale; truncate (round toward zero, matching
		// the sign-magnitude division below) back to 18 decimals.
		return l36.Div(ONE_I)
	}
	if aRaw.Lt(ONE) {
		b, err := WUMBO.Div(aRaw)
		if err != nil {
			return I256Zero, err
		}
		inner, err := lnRaw(b)
		if err != nil {
			return I256Zero, err
		}
		return inner.Neg()
	}
	mag, err := lnDecompose(aRaw)
	if err != nil {
		return I256Zero, err
	}
	return I256FromU256(mag)
}

// lnDecompose computes ln(aRaw) for aRaw >= 1e18, returning a non-negative
// 18-decimal result. aRaw is always >= ONE here: the only callers are Ln's
// top-level decomposition branch (which requires a >= LN_UPPER > ONE) and
// its reciprocal branch (whose reciprocal reaches this function only when it
// is itself >= LN_UPPER; smaller reciprocals go to ln36).
func lnDecompose(aRaw U256) (U256, error) {
	var err error
	sum := U256Zero
	a := aRaw

	// Greedy match against x0=128e18, x1=64e18 (both stored as plain
	// integers, not yet rescaled to 20 decimals).
	for n := 0; n < 2; n++ {
		entry := lnTable[n]
		threshold, err2 := entry.a.Mul(ONE)
		if err2 != nil {
			return U256Zero, err2
		}
		if a.Gte(threshold) {
			if a, err = a.Div(entry.a); err != nil {
				return U256Zero, err
			}
			if sum, err = sum.Add(entry.x); err != nil {
				return U256Zero, err
			}
		}
	}

	// Everything from here carries two extra decimals of precision (20
	// decimals total) until the final truncation back to 18.
	if sum, err = sum.MulUint64(100); err != nil {
		return U256Zero, err
	}
	if a, err = a.MulUint64(100); err != nil {
		return U256Zero, err
	}

	for n := 2; n < 12; n++ {
		entry := lnTable[n]
		if a.Gte(entry.a) {
			if a, err = a.MulDiv(HUNDRED, entry.a); err != nil {
				return U256Zero, err
			}
			if sum, err = sum.Add(entry.x); err != nil {
				return U256Zero, err
			}
		}
	}

	series, err := lnSeries20(a)
	if err != nil {
		return U256Zero, err
	}
	total, err := sum.Add(series)
	if err != nil {
		return U256Zero, err
	}
	return total.DivUint64(100)
}

// lnSeries20 evaluates the odd-power Taylor series 2*(z + z^3/3 + ... +
// z^11/11) at 20-decimal scale, for a remainder a known to lie in
// [HUNDRED, lnTable[11].a) after full decomposition.
func lnSeries20(a U256) (U256, error) {
	numerator, err := a.Sub(HUNDRED)
	if err != nil {
		return U256Zero, err
	}
	denominator, err := a.Add(HUNDRED)
	if err != nil {
		return U256Zero, err
	}
	z, err := numerator.MulDiv(HUNDRED, denominator)
	if err != nil {
		return U256Zero, err
	}
	z2, err := z.MulDiv(z, HUNDRED)
	if err != nil {
		return U256Zero, err
	}

	term := z
	series := z
	for _, divisor := range [5]uint64{3, 5, 7, 9, 11} {
		if term, err = term.MulDiv(z2, HUNDRED); err != nil {
			return U256Zero, err
		}
		part, err := term.DivUint64(divisor)
		if err != nil {
			return U256Zero, err
		}
		if series, err = series.Add(part); err != nil {
			return U256Zero, err
		}
	}
	return series.MulUint64(2)
}

// ln36 computes ln(a) at 36-decimal precision for a in (LN_LOWER, LN_UPPER),
// returning a signed I256 (the result is negative whenever a < 1e18). Every
// term in the underlying series is an odd power of z, so the series shares
// a single sign with z; the whole computation below is carried out on
// magnitudes and the sign applied once at the end, mirroring the
// sign-magnitude split I256 itself uses.
func ln36(aRaw U256) (I256, error) {
	a36, err := aRaw.Mul(ONE)
	if err != nil {
		return I256Zero, err
	}

	var negZ bool
	var numAbs U256
	if a36.Gte(WUMBO) {
		numAbs, err = a36.Sub(WUMBO)
		negZ = false
	} else {
		numAbs, err = WUMBO.Sub(a36)
		negZ = true
	}
	if err != nil {
		return I256Zero, err
	}
	den, err := a36.Add(WUMBO)
	if err != nil {
		return I256Zero, err
	}
	zAbs, err := numAbs.MulDiv(WUMBO, den)
	if err != nil {
		return I256Zero, err
	}
	z2Abs, err := zAbs.MulDiv(zAbs, WUMBO)
	if err != nil {
		return I256Zero, err
	}

	term := zAbs
	series := zAbs
	for _, divisor := range [7]uint64{3, 5, 7, 9, 11, 13, 15} {
		if term, err = term.MulDiv(z2Abs, WUMBO); err != nil {
			return I256Zero, err
		}
		part, err := term.DivUint64(divisor)
		if err != nil {
			return I256Zero, err
		}
		if series, err = series.Add(part); err != nil {
			return I256Zero, err
		}
	}
	series, err = series.MulUint64(2)
	if err != nil {
		return I256Zero, err
	}
	return newI256FromAbs(negZ, series)
}

// Exp returns e^x, scaled at 18 decimals. Returns UnderflowError if x is
// below MIN_EXP, OverflowError if x exceeds MAX_EXP.
func Exp(x SFixed18) (SFixed18, error) {
	if x.raw.Lt(MIN_EXP) {
		return SFixedZero, ErrUnderflow
	}
	if x.raw.Gt(MAX_EXP) {
		return SFixedZero, ErrOverflow
	}
	if x.IsNeg() {
		negX, err := x.Neg()
		if err != nil {
			return SFixedZero, err
		}
		posResult, err := Exp(negX)
		if err != nil {
			return SFixedZero, err
		}
		posRaw, _ := posResult.raw.ToU256()
		recip, err := WUMBO.Div(posRaw)
		if err != nil {
			return SFixedZero, err
		}
		raw, err := I256FromU256(recip)
		if err != nil {
			return SFixedZero, err
		}
		return SFixed18{raw: raw}, nil
	}
	xRaw, err := x.raw.ToU256()
	if err != nil {
		return SFixedZero, err
	}
	resultRaw, err := expPositive(xRaw)
	if err != nil {
		return SFixedZero, err
	}
	raw, err := I256FromU256(resultRaw)
	if err != nil {
		return SFixedZero, err
	}
	return SFixed18{raw: raw}, nil
}

// expPositive computes e^x for x >= 0, following the same greedy
// decomposition the ln kernel uses in reverse: peel off the largest
// whole-number exponents first via table lookup, then sum the remainder's
// Taylor series.
func expPositive(x U256) (U256, error) {
	var err error
	firstAN := NewU256(1)

	x0, a0 := lnTable[0].x, lnTable[0].a
	x1, a1 := lnTable[1].x, lnTable[1].a
	switch {
	case x.Gte(x0):
		if x, err = x.Sub(x0); err != nil {
			return U256Zero, err
		}
		firstAN = a0
	case x.Gte(x1):
		if x, err = x.Sub(x1); err != nil {
			return U256Zero, err
		}
		firstAN = a1
	}

	if x, err = x.MulUint64(100); err != nil {
		return U256Zero, err
	}

	product := HUNDRED
	for n := 2; n < 10; n++ {
		entry := lnTable[n]
		if x.Gte(entry.x) {
			if x, err = x.Sub(entry.x); err != nil {
				return U256Zero, err
			}
			prod, err2 := product.MulDiv(entry.a, HUNDRED)
			if err2 != nil {
				return U256Zero, err2
			}
			product = prod
		}
	}

	series := HUNDRED
	term := x
	series, err = series.Add(term)
	if err != nil {
		return U256Zero, err
	}
	for _, divisor := range [11]uint64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12} {
		t, err2 := term.MulDiv(x, HUNDRED)
		if err2 != nil {
			return U256Zero, err2
		}
		t, err2 = t.DivUint64(divisor)
		if err2 != nil {
			return U256Zero, err2
		}
		term = t
		if series, err = series.Add(term); err != nil {
			return U256Zero, err
		}
	}

	scaled, err := product.MulDiv(series, HUNDRED)
	if err != nil {
		return U256Zero, err
	}
	scaled, err = scaled.Mul(firstAN)
	if err != nil {
		return U256Zero, err
	}
	return scaled.DivUint64(100)
}
