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

package fixedpoint

import (
	"errors"
	"testing"
)

func TestI256AddOppositeSigns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, want int64
	}{
		{5, -3, 2},
		{-5, 3, -2},
		{-5, 5, 0},
		{5, -5, 0},
		{-3, -4, -7},
	}
	for _, c := range cases {
		got, err := NewI256(c.a).Add(NewI256(c.b))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Cmp(NewI256(c.want)) != 0 {
			t.Fatalf("%d+%d: got %v, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestI256NegMostNegativeOverflows(t *testing.T) {
	t.Parallel()

	mostNeg, err := newI256FromAbs(true, I256MaxAbs)
	if err != nil {
		t.Fatalf("unexpected error building most-negative value: %v", err)
	}
	if _, err := mostNeg.Neg(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestI256ZeroIsNeverNegative(t *testing.T) {
	t.Parallel()

	z, err := newI256FromAbs(true, U256Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.IsNeg() {
		t.Fatalf("zero must not report as negative regardless of sign flag")
	}
}

func TestI256CmpAcrossSigns(t *testing.T) {
	t.Parallel()

	if !NewI256(-1).Lt(NewI256(1)) {
		t.Fatalf("-1 should be less than 1")
	}
	if !NewI256(-5).Lt(NewI256(-3)) {
		t.Fatalf("-5 should be less than -3")
	}
	if NewI256(0).Cmp(NewI256(0)) != 0 {
		t.Fatalf("0 should equal 0")
	}
}

func TestI256MulDivSign(t *testing.T) {
	t.Parallel()

	prod, err := NewI256(-3).Mul(NewI256(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prod.Cmp(NewI256(-12)) != 0 {
		t.Fatalf("expected -12, got %v", prod)
	}

	quo, err := NewI256(-7).Div(NewI256(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Truncation toward zero: -7/2 = -3, not -4.
	if quo.Cmp(NewI256(-3)) != 0 {
		t.Fatalf("expected -3 (truncated toward zero), got %v", quo)
	}
}

func TestI256ToU256RejectsNegative(t *testing.T) {
	t.Parallel()

	if _, err := NewI256(-1).ToU256(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}
