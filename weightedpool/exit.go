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

// BptInGivenExactTokensOut prices an arbitrary-ratio multi-token exit: the
// caller names exact amountsOut for every token and this returns the LP
// tokens burned. Symmetric to BptOutGivenExactTokensIn: tokens withdrawn in
// excess of their proportional share are taxed at swapFee.
func BptInGivenExactTokensOut(
	balances, weights, amountsOut []Balance,
	supply PoolShares,
	swapFee fixedpoint.Fixed18,
) (PoolShares, error) {
	n := len(balances)
	if len(weights) != n || len(amountsOut) != n {
		return fixedpoint.FixedZero, ErrWeightOutOfRange
	}

	ratiosWithoutFee := make([]fixedpoint.Fixed18, n)
	invariantRatioWithoutFees := fixedpoint.FixedZero
	for i := 0; i < n; i++ {
		diff, err := balances[i].Sub(amountsOut[i])
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		ratio, err := diff.DivUp(balances[i])
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		ratiosWithoutFee[i] = ratio

		weighted, err := ratio.MulUp(weights[i])
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		if invariantRatioWithoutFees, err = invariantRatioWithoutFees.Add(weighted); err != nil {
			return fixedpoint.FixedZero, err
		}
	}

	invariantRatio := fixedpoint.FixedOne
	for i := 0; i < n; i++ {
		amountOutWithFee := amountsOut[i]
		if invariantRatioWithoutFees.Gt(ratiosWithoutFee[i]) {
			nonTaxable, err := balances[i].MulDown(invariantRatioWithoutFees.Complement())
			if err != nil {
				return fixedpoint.FixedZero, err
			}
			taxable, err := amountsOut[i].Sub(nonTaxable)
			if err != nil {
				return fixedpoint.FixedZero, err
			}
			taxableWithFees, err := taxable.DivUp(swapFee.Complement())
			if err != nil {
				return fixedpoint.FixedZero, err
			}
			if amountOutWithFee, err = nonTaxable.Add(taxableWithFees); err != nil {
				return fixedpoint.FixedZero, err
			}
		}

		diff, err := balances[i].Sub(amountOutWithFee)
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		tokenRatio, err := diff.DivDown(balances[i])
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

	return supply.MulUp(invariantRatio.Complement())
}

// TokenOutGivenExactBptIn prices a single-token exit that must burn exactly
// bptIn LP tokens. Fails MinInvariantRatio if the implied invariant ratio
// (supply-bptIn)/supply falls below MinInvariantRatio.
func TokenOutGivenExactBptIn(b, w, bptIn, supply PoolShares, swapFee fixedpoint.Fixed18) (Balance, error) {
	diff, err := supply.Sub(bptIn)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	invariantRatio, err := diff.DivUp(supply)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	if invariantRatio.Lt(MinInvariantRatio) {
		return fixedpoint.FixedZero, ErrMinInvariantRatio
	}

	invW, err := fixedpoint.FixedOne.DivUp(w)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	balanceRatio, err := fixedpoint.PowUp(invariantRatio, invW)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	amountWithoutFee, err := b.MulDown(balanceRatio.Complement())
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
	taxableMinusFees, err := taxable.MulDown(swapFee.Complement())
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	return nonTaxable.Add(taxableMinusFees)
}

// TokensOutGivenExactBptIn prices a fully proportional exit: every token
// returns the same bptRatio = bptIn/supply of its balance.
func TokensOutGivenExactBptIn(balances []Balance, bptIn, supply PoolShares) ([]Balance, error) {
	bptRatio, err := bptIn.DivDown(supply)
	if err != nil {
		return nil, err
	}
	amounts := make([]Balance, len(balances))
	for i, b := range balances {
		amt, err := b.MulDown(bptRatio)
		if err != nil {
			return nil, err
		}
		amounts[i] = amt
	}
	return amounts, nil
}
