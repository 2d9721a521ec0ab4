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

// Package weightedpool implements constant-weighted-product pool math:
// invariant, swap pricing, single- and multi-token joins/exits, and the
// token-addition dilution formula. Every routine is pure and built
// exclusively on the fixedpoint package's checked 18-decimal arithmetic —
// there is no custody, access control, or storage here, only the numeric
// core a pool contract or off-chain simulator calls into.
package weightedpool

import (
	"math/big"

	"github.com/flowfoundation/weightedmath/fixedpoint"
)

// Weight is a token's normalized share of the pool, as an 18-decimal
// fixed-point fraction. A pool's weights must sum to fixedpoint.FixedOne.
type Weight = fixedpoint.Fixed18

// Balance is a token's pool balance, as an 18-decimal fixed-point amount.
type Balance = fixedpoint.Fixed18

// PoolShares is an amount of LP tokens ("BPT"), as an 18-decimal fixed-point
// amount.
type PoolShares = fixedpoint.Fixed18

func mustFixed18(decimal string) fixedpoint.Fixed18 {
	v, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("weightedpool: bad decimal literal " + decimal)
	}
	u, err := fixedpoint.U256FromBig(v)
	if err != nil {
		panic(err)
	}
	return fixedpoint.NewFixed18(u)
}

var (
	// MinWeight is the smallest weight a single token may be assigned (1%).
	MinWeight = mustFixed18("10000000000000000")

	// MaxInRatio and MaxOutRatio bound a single swap to 30% of the
	// corresponding balance.
	MaxInRatio  = mustFixed18("300000000000000000")
	MaxOutRatio = MaxInRatio

	// MaxInvariantRatio and MinInvariantRatio bound how far a single
	// join/exit may move the pool invariant.
	MaxInvariantRatio = mustFixed18("3000000000000000000")
	MinInvariantRatio = mustFixed18("700000000000000000")
)

// MaxTokens is the largest number of tokens a pool may hold.
const MaxTokens = 100
