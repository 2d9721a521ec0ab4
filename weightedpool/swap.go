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

package weightedpool

import "github.com/flowfoundation/weightedmath/fixedpoint"

// OutGivenIn prices a swap of aI units of the input token for units of the
// output token:
//
//	aO = bO * (1 - (bI / (bI + aI))^(wI/wO))
//
// Rounded so that the pool never pays out more than the exact formula
// would. Fails MaxInRatio if aI exceeds 30% of bI.
func OutGivenIn(bI, wI, bO, wO, aI Balance) (Balance, error) {
	maxIn, err := bI.MulDown(MaxInRatio)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	if aI.Gt(maxIn) {
		return fixedpoint.FixedZero, ErrMaxInRatio
	}

	denom, err := bI.Add(aI)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	base, err := bI.DivUp(denom)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	exponent, err := wI.DivDown(wO)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	power, err := fixedpoint.PowUp(base, exponent)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	return bO.MulDown(power.Complement())
}

// InGivenOut prices a swap that must deliver exactly aO units of the output
// token:
//
//	aI = bI * ((bO / (bO - aO))^(wO/wI) - 1)
//
// Rounded so that the pool never accepts less than the exact formula would
// require. Fails MaxOutRatio if aO exceeds 30% of bO, Underflow if aO >= bO.
func InGivenOut(bI, wI, bO, wO, aO Balance) (Balance, error) {
	maxOut, err := bO.MulDown(MaxOutRatio)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	if aO.Gt(maxOut) {
		return fixedpoint.FixedZero, ErrMaxOutRatio
	}
	if aO.Gte(bO) {
		return fixedpoint.FixedZero, fixedpoint.ErrUnderflow
	}

	denom, err := bO.Sub(aO)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	base, err := bO.DivUp(denom)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	exponent, err := wO.DivUp(wI)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	power, err := fixedpoint.PowUp(base, exponent)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	ratio, err := power.Sub(fixedpoint.FixedOne)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	return bI.MulUp(ratio)
}
