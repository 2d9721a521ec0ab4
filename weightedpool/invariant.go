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

// ValidateWeights checks that every weight is at least MinWeight, that the
// set is non-empty and no larger than MaxTokens, and that the weights sum
// exactly to one. Callers that already trust their pool configuration may
// skip this and call Invariant/swap/join/exit directly; it exists as the
// callable guard §7 requires.
func ValidateWeights(weights []Weight) error {
	if len(weights) == 0 || len(weights) > MaxTokens {
		return ErrWeightOutOfRange
	}
	sum := fixedpoint.FixedZero
	for _, w := range weights {
		if w.Lt(MinWeight) {
			return ErrWeightOutOfRange
		}
		var err error
		sum, err = sum.Add(w)
		if err != nil {
			return err
		}
	}
	if sum.Cmp(fixedpoint.FixedOne) != 0 {
		return ErrWeightOutOfRange
	}
	return nil
}

// Invariant returns I = Π bᵢ^wᵢ, the weighted geometric mean of balances
// the pool preserves under fee-less swaps. weights and balances must be the
// same length and share a common token index order. Fails WeightOutOfRange
// if weights don't check out (see ValidateWeights), ZeroInvariant if the
// product rounds to 0.
func Invariant(weights []Weight, balances []Balance) (fixedpoint.Fixed18, error) {
	if len(weights) != len(balances) {
		return fixedpoint.FixedZero, ErrWeightOutOfRange
	}
	if err := ValidateWeights(weights); err != nil {
		return fixedpoint.FixedZero, err
	}

	result := fixedpoint.FixedOne
	for i := range weights {
		factor, err := fixedpoint.PowDown(balances[i], weights[i])
		if err != nil {
			return fixedpoint.FixedZero, err
		}
		result, err = result.MulDown(factor)
		if err != nil {
			return fixedpoint.FixedZero, err
		}
	}
	if result.IsZero() {
		return fixedpoint.FixedZero, ErrZeroInvariant
	}
	return result, nil
}
