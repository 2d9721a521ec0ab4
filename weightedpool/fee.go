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

// BptForOwnership converts a protocol-fee ownership percentage into the LP
// share amount it corresponds to:
//
//	bpt_for_ownership(totalSupply, ownershipPct) =
//	    mul_div(totalSupply, ownershipPct, 1e18 - ownershipPct)
//
// floor-rounded. Fails DivByZero when ownershipPct >= 1e18 (a claim on the
// whole pool, or more, has no finite LP-token expression).
func BptForOwnership(totalSupply PoolShares, ownershipPct fixedpoint.Fixed18) (PoolShares, error) {
	if ownershipPct.Gte(fixedpoint.FixedOne) {
		return fixedpoint.FixedZero, fixedpoint.ErrDivByZero
	}
	denominator, err := fixedpoint.FixedOne.Sub(ownershipPct)
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	raw, err := totalSupply.Raw().MulDiv(ownershipPct.Raw(), denominator.Raw())
	if err != nil {
		return fixedpoint.FixedZero, err
	}
	return fixedpoint.NewFixed18(raw), nil
}
