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

// Package fixedpoint implements the checked 256-bit scalar primitive, the
// 18-decimal fixed-point layer, and the ln/exp/pow transcendental kernel
// that weighted-pool math is built on. Every operation is pure: it consumes
// its inputs and returns a value or an error, never mutates, never panics.
package fixedpoint

// OverflowError indicates a result whose magnitude exceeds the range of the
// destination type.
type OverflowError struct{}

var _ error = OverflowError{}

func (OverflowError) Error() string { return "fixedpoint: overflow" }

// UnderflowError indicates an unsigned subtraction with a larger subtrahend,
// or a signed exp() argument below MIN_EXP.
type UnderflowError struct{}

var _ error = UnderflowError{}

func (UnderflowError) Error() string { return "fixedpoint: underflow" }

// DivByZeroError indicates a zero divisor in a div_* or mul_div operation.
type DivByZeroError struct{}

var _ error = DivByZeroError{}

func (DivByZeroError) Error() string { return "fixedpoint: division by zero" }

// DomainError indicates an argument outside a function's domain: ln(a) with
// a <= 0, or pow() producing an intermediate outside [MIN_EXP, MAX_EXP].
type DomainError struct{}

var _ error = DomainError{}

func (DomainError) Error() string { return "fixedpoint: argument out of domain" }

// Package-level sentinels for errors.Is comparisons.
var (
	ErrOverflow  error = OverflowError{}
	ErrUnderflow error = UnderflowError{}
	ErrDivByZero error = DivByZeroError{}
	ErrDomain    error = DomainError{}
)
