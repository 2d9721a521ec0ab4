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

// approxEqual reports whether a and b differ by no more than tolerance, an
// absolute Fixed18 bound (in raw 18-decimal ulps) the caller picks for the
// scale of the values under test.
func approxEqual(t *testing.T, a, b, tolerance fixedpoint.Fixed18) bool {
	t.Helper()
	var diff fixedpoint.Fixed18
	var err error
	if a.Gte(b) {
		diff, err = a.Sub(b)
	} else {
		diff, err = b.Sub(a)
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return !diff.Gt(tolerance)
}

// TestS2SwapOutGivenIn matches spec.md scenario S2.
func TestS2SwapOutGivenIn(t *testing.T) {
	t.Parallel()

	bI := fx("100000000000000000000")
	wI := fx("500000000000000000")
	bO := fx("100000000000000000000")
	wO := fx("500000000000000000")
	aI := fx("10000000000000000000")

	got, err := weightedpool.OutGivenIn(bI, wI, bO, wO, aI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fx("9090909090909090909") // ~9.0909090909e18
	tolerance := fx("1000000000000")  // loose envelope tolerance
	if !approxEqual(t, got, want, tolerance) {
		t.Fatalf("OutGivenIn = %v, want ~%v", got, want)
	}
}

// TestS3SwapInGivenOutIsInverseOfOutGivenIn matches spec.md scenario S3.
func TestS3SwapInGivenOutIsInverseOfOutGivenIn(t *testing.T) {
	t.Parallel()

	bI := fx("100000000000000000000")
	wI := fx("500000000000000000")
	bO := fx("100000000000000000000")
	wO := fx("500000000000000000")
	aI := fx("10000000000000000000")

	aO, err := weightedpool.OutGivenIn(bI, wI, bO, wO, aI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := weightedpool.InGivenOut(bI, wI, bO, wO, aO)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Property 6: never gives the swapper a free lunch.
	if back.Lt(aI) {
		t.Fatalf("InGivenOut(OutGivenIn(aI)) = %v, want >= %v", back, aI)
	}
	tolerance := fx("10000000000000000") // ~1e-2 absolute, i.e. within the envelope's relative error band
	if !approxEqual(t, back, aI, tolerance) {
		t.Fatalf("InGivenOut(OutGivenIn(aI)) = %v, too far from %v", back, aI)
	}
}

func TestOutGivenInRejectsExcessiveAmount(t *testing.T) {
	t.Parallel()

	bI := fx("100000000000000000000")
	wI := fx("500000000000000000")
	bO := fx("100000000000000000000")
	wO := fx("500000000000000000")
	aI := fx("40000000000000000000") // 40% of bI > MaxInRatio (30%)

	if _, err := weightedpool.OutGivenIn(bI, wI, bO, wO, aI); err != weightedpool.ErrMaxInRatio {
		t.Fatalf("expected ErrMaxInRatio, got %v", err)
	}
}

func TestInGivenOutRejectsExcessiveAmount(t *testing.T) {
	t.Parallel()

	bI := fx("100000000000000000000")
	wI := fx("500000000000000000")
	bO := fx("100000000000000000000")
	wO := fx("500000000000000000")
	aO := fx("40000000000000000000") // 40% of bO > MaxOutRatio (30%)

	if _, err := weightedpool.InGivenOut(bI, wI, bO, wO, aO); err != weightedpool.ErrMaxOutRatio {
		t.Fatalf("expected ErrMaxOutRatio, got %v", err)
	}
}

// TestInGivenOutRejectsFullDrain exercises a full-balance output request:
// it is already excluded by MaxOutRatio (30% of bO) long before the
// aO >= bO underflow check further down would ever fire.
func TestInGivenOutRejectsFullDrain(t *testing.T) {
	t.Parallel()

	bI := fx("100000000000000000000")
	wI := fx("500000000000000000")
	bO := fx("100000000000000000000")
	wO := fx("500000000000000000")

	if _, err := weightedpool.InGivenOut(bI, wI, bO, wO, bO); err != weightedpool.ErrMaxOutRatio {
		t.Fatalf("expected ErrMaxOutRatio, got %v", err)
	}
}
