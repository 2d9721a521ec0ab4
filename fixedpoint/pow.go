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

// TwoFixed and FourFixed are the 2.0 and 4.0 fast-path exponents PowDown and
// PowUp special-case instead of routing through the transcendental kernel.
var (
	TwoFixed  = Fixed18{raw: mustU256FromDecimal("2000000000000000000")}
	FourFixed = Fixed18{raw: mustU256FromDecimal("4000000000000000000")}
)

// maxPowRelativeError bounds the correction PowDown/PowUp apply to Pow's raw
// exp(y*ln(x)) result: a relative error of 1e-4, i.e. 1e14 raw 18-decimal
// units.
var maxPowRelativeError = mustU256FromDecimal("100000000000000")

// Pow returns x^y for x >= 0, computed as exp(y*ln(x)). Returns FixedOne
// for y == 0 (including x == 0, by convention 0^0 = 1) and FixedZero for
// x == 0 with y != 0. Returns DomainError if y >= MILD_EXPONENT_BOUND or if
// the intermediate y*ln(x) falls outside [MIN_EXP, MAX_EXP].
func Pow(x, y Fixed18) (Fixed18, error) {
	if y.IsZero() {
		return FixedOne, nil
	}
	if x.IsZero() {
		return FixedZero, nil
	}
	if y.raw.Gte(MILD_EXPONENT_BOUND) {
		return FixedZero, ErrDomain
	}

	yI, err := I256FromU256(y.raw)
	if err != nil {
		return FixedZero, err
	}

	var logXTimesY I256
	if x.raw.Gt(lnLowerU) && x.raw.Lt(lnUpperU) {
		ln36x, err := ln36(x.raw)
		if err != nil {
			return FixedZero, err
		}
		hi, err := ln36x.Div(ONE_I)
		if err != nil {
			return FixedZero, err
		}
		hiScaled, err := hi.Mul(ONE_I)
		if err != nil {
			return FixedZero, err
		}
		lo, err := ln36x.Sub(hiScaled)
		if err != nil {
			return FixedZero, err
		}
		hiTerm, err := hi.Mul(yI)
		if err != nil {
			return FixedZero, err
		}
		loTerm, err := lo.Mul(yI)
		if err != nil {
			return FixedZero, err
		}
		loTerm, err = loTerm.Div(ONE_I)
		if err != nil {
			return FixedZero, err
		}
		logXTimesY, err = hiTerm.Add(loTerm)
		if err != nil {
			return FixedZero, err
		}
	} else {
		lnx, err := lnRaw(x.raw)
		if err != nil {
			return FixedZero, err
		}
		logXTimesY, err = lnx.Mul(yI)
		if err != nil {
			return FixedZero, err
		}
	}
	logXTimesY, err = logXTimesY.Div(ONE_I)
	if err != nil {
		return FixedZero, err
	}

	if logXTimesY.Lt(MIN_EXP) || logXTimesY.Gt(MAX_EXP) {
		return FixedZero, ErrDomain
	}

	signed, err := Exp(SFixed18{raw: logXTimesY})
	if err != nil {
		return FixedZero, err
	}
	return signed.ToFixed18()
}

// PowDown returns a rounded-down (floor, corrected for the kernel's
// approximation error) x^y. y == 1, 2, and 4 are special-cased to exact
// repeated multiplication instead of routing through Pow.
func PowDown(x, y Fixed18) (Fixed18, error) {
	switch {
	case y.Cmp(FixedOne) == 0:
		return x, nil
	case y.Cmp(TwoFixed) == 0:
		return x.MulDown(x)
	case y.Cmp(FourFixed) == 0:
		square, err := x.MulDown(x)
		if err != nil {
			return FixedZero, err
		}
		return square.MulDown(square)
	}

	raw, err := Pow(x, y)
	if err != nil {
		return FixedZero, err
	}
	errBound, err := raw.MulUp(Fixed18{raw: maxPowRelativeError})
	if err != nil {
		return FixedZero, err
	}
	maxError, err := errBound.Add(Fixed18{raw: NewU256(1)})
	if err != nil {
		return FixedZero, err
	}
	if raw.Lt(maxError) {
		return FixedZero, nil
	}
	return raw.Sub(maxError)
}

// PowUp returns a rounded-up (ceiling, corrected for the kernel's
// approximation error) x^y. Same y == 1, 2, 4 fast paths as PowDown.
func PowUp(x, y Fixed18) (Fixed18, error) {
	switch {
	case y.Cmp(FixedOne) == 0:
		return x, nil
	case y.Cmp(TwoFixed) == 0:
		return x.MulUp(x)
	case y.Cmp(FourFixed) == 0:
		square, err := x.MulUp(x)
		if err != nil {
			return FixedZero, err
		}
		return square.MulUp(square)
	}

	raw, err := Pow(x, y)
	if err != nil {
		return FixedZero, err
	}
	errBound, err := raw.MulUp(Fixed18{raw: maxPowRelativeError})
	if err != nil {
		return FixedZero, err
	}
	maxError, err := errBound.Add(Fixed18{raw: NewU256(1)})
	if err != nil {
		return FixedZero, err
	}
	return raw.Add(maxError)
}
