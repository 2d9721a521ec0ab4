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

// BptOutAddToken prices the LP tokens minted when a new token joins the
// pool at newWeight, diluting every existing holder proportionally: the
// other weights are rescaled down so the new set still sums to one, and the
// new token takes ownership equal to its weight of the enlarged pool.
//
// weightSumRatio = 1/(1-newWeight); returned LP = supply*(weightSumRatio-1).
// Fails Overflow if newWeight >= 1 (the new token cannot claim the whole
// pool or more).
func BptOutAddToken(supply PoolShares, newWeight Weight) (PoolShares, error) {
	if newWeight.Gte(fixedpoint.FixedOne) {
		return fixedpoint.FixedZero, fixedpoint.ErrOverflow
	}
	weightSumRatio, err := fixedpoint.FixedOne.DivDown(newWeight.Complement())
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	growth, err := weightSumRatio.Sub(fixedpoint.FixedOne)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	return supply.MulDown(growth)
}
