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

package weightedpool_test

import (
	"testing"

	"github.com/flowfoundation/weightedmath/fixedpoint"
	"github.com/flowfoundation/weightedmath/weightedpool"
)

// FuzzSwapReversibility checks property 6 across randomly generated pool
// states: quoting aO for aI via OutGivenIn and then feeding aO back through
// InGivenOut must never return less than the original aI. A swap path that
// let a trader recover more value than they put in would be a mispriced
// pool.
func FuzzSwapReversibility(f *testing.F) {
	f.Add(uint64(10_000000000000000000), uint64(500000000000000000), uint64(10_000000000000000000), uint64(1_000000000000000000))
	f.Add(uint64(2_500000000000000000), uint64(200000000000000000), uint64(15_000000000000000000), uint64(50000000000000000))

	f.Fuzz(func(t *testing.T, bIraw, wIraw, bOraw, aIraw uint64) {
		if bIraw == 0 || bOraw == 0 {
			t.Skip("zero balance is not a valid pool state")
		}

		// Clamp wI into [MinWeight, 1-MinWeight] so wO = 1-wI is also valid.
		wIraw = wIraw%980_000000000000000 + 10_000000000000000
		wI := fixedpoint.NewFixed18(fixedpoint.NewU256(wIraw))
		wO, err := fixedpoint.FixedOne.Sub(wI)
		if err != nil {
			t.Skip("weight arithmetic out of range")
		}

		bI := fixedpoint.NewFixed18(fixedpoint.NewU256(bIraw))
		bO := fixedpoint.NewFixed18(fixedpoint.NewU256(bOraw))

		maxIn, err := bI.MulDown(weightedpool.MaxInRatio)
		if err != nil || maxIn.IsZero() {
			t.Skip("pool too small to accept any input")
		}
		aIraw = aIraw%maxIn.Raw().ToBig().Uint64() + 1
		aI := fixedpoint.NewFixed18(fixedpoint.NewU256(aIraw))

		aO, err := weightedpool.OutGivenIn(bI, wI, bO, wO, aI)
		if err != nil {
			t.Skipf("OutGivenIn rejected inputs: %v", err)
		}
		if aO.IsZero() {
			t.Skip("degenerate zero-output quote")
		}

		back, err := weightedpool.InGivenOut(bI, wI, bO, wO, aO)
		if err != nil {
			t.Skipf("InGivenOut rejected the round trip: %v", err)
		}

		if back.Lt(aI) {
			t.Fatalf("round trip gave back less than it took: InGivenOut(OutGivenIn(%v)) = %v", aI, back)
		}
	})
}
