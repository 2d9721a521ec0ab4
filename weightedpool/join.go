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

// BptOutGivenExactTokensIn prices an arbitrary-ratio multi-token join: the
// caller names exact amountsIn for every token and this returns the LP
// tokens minted.
//
// Per token, the ratio rᵢ = (bᵢ+aᵢ)/bᵢ is computed, and the weighted
// average R = Σ wᵢ·rᵢ gives the fee-inclusive invariant growth a
// proportional deposit would have produced. Any token deposited in excess
// of its proportional share (rᵢ > R) has that excess taxed at swapFee
// before being folded back into the invariant, so that only balanced
// deposits are fee-free.
func BptOutGivenExactTokensIn(
	balances, weights, amountsIn []Balance,
	supply PoolShares,
	swapFee fixedpoint.Fixed18,
) (PoolShares, error) {
	n := len(balances)
	if len(weights) != n || len(amountsIn) != n {
		return fixedpoint.FixedZero, ErrWeightOutOfRange
	}

	ratiosWithFee := make([]fixedpoint.Fixed18, n)
	invariantRatioWithFees := fixedpoint.FixedZero
	for i := 0; i < n; i++ {
		sum, err := balances[i].Add(amountsIn[i])
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		ratio, err := sum.DivDown(balances[i])
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		ratiosWithFee[i] = ratio

		weighted, err := ratio.MulDown(weights[i])
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		if invariantRatioWithFees, err = invariantRatioWithFees.Add(weighted); err != nil {
			return fixedpoint.FixedZero, err
		}
	}

	invariantRatio := fixedpoint.FixedOne
	for i := 0; i < n; i++ {
		amountInWithoutFee := amountsIn[i]
		if ratiosWithFee[i].Gt(invariantRatioWithFees) {
			excess, err := invariantRatioWithFees.Sub(fixedpoint.FixedOne)
			if err != nil {
				return fixedpoint.FixedZero, err
			}
			nonTaxable, err := balances[i].MulDown(excess)
			if err != nil {
				return fixedpoint.FixedZero, err
			}
			taxable, err := amountsIn[i].Sub(nonTaxable)
			if err != nil {
				return fixedpoint.FixedZero, err
			}
			fee, err := taxable.MulUp(swapFee)
			if err != nil {
				return fixedpoint.FixedZero, err
			}
			afterFee, err := taxable.Sub(fee)
			if err != nil {
				return fixedpoint.FixedZero, err
			}
			if amountInWithoutFee, err = nonTaxable.Add(afterFee); err != nil {
				return fixedpoint.FixedZero, err
			}
		}

		sum, err := balances[i].Add(amountInWithoutFee)
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		tokenRatio, err := sum.DivDown(balances[i])
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		powTerm, err := fixedpoint.PowDown(tokenRatio, weights[i])
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		if invariantRatio, err = invariantRatio.MulDown(powTerm); err != nil {
			return fixedpoint.FixedZero, err
		}
	}

	if invariantRatio.Gt(fixedpoint.FixedOne) {
		excess, err := invariantRatio.Sub(fixedpoint.FixedOne)
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		return supply.MulDown(excess)
	}
	return fixedpoint.FixedZero, nil
}

// TokenInGivenExactBptOut prices a single-token join that must mint exactly
// bptOut LP tokens. Fails MaxInvariantRatio if the implied invariant growth
// exceeds MaxInvariantRatio.
func TokenInGivenExactBptOut(b, w, bptOut, supply PoolShares, swapFee fixedpoint.Fixed18) (Balance, error) {
	sum, err := supply.Add(bptOut)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	invariantRatio, err := sum.DivUp(supply)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	if invariantRatio.Gt(MaxInvariantRatio) {
		return fixedpoint.FixedZero, ErrMaxInvariantRatio
	}

	invW, err := fixedpoint.FixedOne.DivUp(w)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	balanceRatio, err := fixedpoint.PowUp(invariantRatio, invW)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	growth, err := balanceRatio.Sub(fixedpoint.FixedOne)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	amountWithoutFee, err := b.MulUp(growth)
	if err != nil {
		return fixedpoint.FixedZero, err
	}

	taxable, err := amountWithoutFee.MulUp(w.Complement())
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	nonTaxable, err := amountWithoutFee.Sub(taxable)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	taxableWithFees, err := taxable.DivUp(swapFee.Complement())
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	return nonTaxable.Add(taxableWithFees)
}

// AllTokensInGivenExactBptOut prices a fully proportional join: every token
// contributes the same bptRatio = bptOut/supply of its balance.
func AllTokensInGivenExactBptOut(balances []Balance, bptOut, supply PoolShares) ([]Balance, error) {
	bptRatio, err := bptOut.DivUp(supply)
	if err != nil {
		return nil, err
	}
	amounts := make([]Balance, len(balances))
	for i, b := range balances {
		amt, err := b.MulUp(bptRatio)
		if err != nil {
			return nil, err
		}
		amounts[i] = amt
	}
	return amounts, nil
}
