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

// ZeroInvariantError indicates the pool invariant evaluated to 0.
type ZeroInvariantError struct{}

var _ error = ZeroInvariantError{}

func (ZeroInvariantError) Error() string { return "weightedpool: invariant is zero" }

// MaxInRatioError indicates a swap's input amount exceeds MaxInRatio of the
// input token's balance.
type MaxInRatioError struct{}

var _ error = MaxInRatioError{}

func (MaxInRatioError) Error() string { return "weightedpool: swap amount exceeds max in ratio" }

// MaxOutRatioError indicates a swap's output amount exceeds MaxOutRatio of
// the output token's balance.
type MaxOutRatioError struct{}

var _ error = MaxOutRatioError{}

func (MaxOutRatioError) Error() string { return "weightedpool: swap amount exceeds max out ratio" }

// MaxInvariantRatioError indicates a join would move the invariant above
// MaxInvariantRatio.
type MaxInvariantRatioError struct{}

var _ error = MaxInvariantRatioError{}

func (MaxInvariantRatioError) Error() string {
	return "weightedpool: invariant ratio exceeds maximum"
}

// MinInvariantRatioError indicates an exit would move the invariant below
// MinInvariantRatio.
type MinInvariantRatioError struct{}

var _ error = MinInvariantRatioError{}

func (MinInvariantRatioError) Error() string {
	return "weightedpool: invariant ratio below minimum"
}

// WeightOutOfRangeError indicates a weight below MinWeight, or a set of
// weights that does not sum to one.
type WeightOutOfRangeError struct{}

var _ error = WeightOutOfRangeError{}

func (WeightOutOfRangeError) Error() string { return "weightedpool: weight out of range" }

// Package-level sentinels for errors.Is comparisons.
var (
	ErrZeroInvariant     error = ZeroInvariantError{}
	ErrMaxInRatio        error = MaxInRatioError{}
	ErrMaxOutRatio       error = MaxOutRatioError{}
	ErrMaxInvariantRatio error = MaxInvariantRatioError{}
	ErrMinInvariantRatio error = MinInvariantRatioError{}
	ErrWeightOutOfRange  error = WeightOutOfRangeError{}
)
