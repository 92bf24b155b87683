// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp8

import (
	"math"
	"strconv"

	mu "github.com/avdva/fp8/internal/mathutil"
	"github.com/shopspring/decimal"
)

var (
	// JSONMode defines the way finite values are marshaled into json, see JSONMode* constants.
	// Infinities and NaN are always marshaled as strings.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeFloat
)

const (
	// JSONModeFloat marshals finite values as numbers, like `0.001953125`.
	JSONModeFloat = iota
	// JSONModeString marshals finite values as strings, like `"0.001953125"`.
	JSONModeString
)

const (
	strPosInf  = "+Inf"
	strNegInf  = "-Inf"
	strNaN     = "NaN"
	strNegZero = "-0"
)

var (
	nan = Value{kind: NaN}
)

// Kind tells which of the Value variants is active.
type Kind uint8

const (
	// Finite is a normal, subnormal or zero value.
	Finite Kind = iota
	// Infinity is a signed infinity.
	Infinity
	// NaN is not-a-number.
	NaN
)

func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Infinity:
		return "infinity"
	case NaN:
		return "nan"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Class is a finer classification of encodings than Kind.
type Class uint8

const (
	// ClassZero is +0 or -0.
	ClassZero Class = iota
	// ClassSubnormal has a zero exponent and a non-zero mantissa.
	ClassSubnormal
	// ClassNormal has an exponent in [1, 14] and an implicit leading 1.
	ClassNormal
	// ClassInfinite is +Inf or -Inf.
	ClassInfinite
	// ClassNaN has the exponent of all ones and a non-zero mantissa.
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInfinite:
		return "infinite"
	case ClassNaN:
		return "nan"
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Value is a decoded minifloat.
// A finite value is stored as sig * 2^exp with a separate sign,
// so that -0 stays distinguishable from +0.
// Values are comparable: all NaNs are equal to each other as Go values,
// use IsNaN to check for them.
type Value struct {
	kind Kind
	neg  bool
	sig  uint8
	exp  int8
}

// Kind returns the active variant.
func (v Value) Kind() Kind {
	return v.kind
}

// IsFinite reports whether v is neither an infinity nor NaN.
func (v Value) IsFinite() bool {
	return v.kind == Finite
}

// IsInf reports whether v is an infinity, according to sign.
// If sign > 0, IsInf reports whether v is positive infinity.
// If sign < 0, IsInf reports whether v is negative infinity.
// If sign == 0, IsInf reports whether v is either infinity.
func (v Value) IsInf(sign int) bool {
	return v.kind == Infinity && (sign == 0 || sign > 0 && !v.neg || sign < 0 && v.neg)
}

// IsNaN reports whether v is not-a-number.
func (v Value) IsNaN() bool {
	return v.kind == NaN
}

// IsZero reports whether v is +0 or -0.
func (v Value) IsZero() bool {
	return v.kind == Finite && v.sig == 0
}

// Signbit reports whether v is negative or negative zero.
// It is always false for NaN.
func (v Value) Signbit() bool {
	return v.neg
}

// Float64 returns v as a float64. The conversion is exact.
func (v Value) Float64() float64 {
	switch v.kind {
	case Infinity:
		return math.Inf(mu.Sign(v.neg))
	case NaN:
		return math.NaN()
	}
	return math.Copysign(math.Ldexp(float64(v.sig), int(v.exp)), float64(mu.Sign(v.neg)))
}

// Decimal returns the exact decimal expansion of a finite value.
// ok is false for infinities and NaN. The sign of zero is lost.
func (v Value) Decimal() (d decimal.Decimal, ok bool) {
	if v.kind != Finite {
		return decimal.Zero, false
	}
	m, e, _ := mu.DyadicToDecimal(uint64(v.sig), int(v.exp))
	d = decimal.New(int64(m), e)
	if v.neg {
		d = d.Neg()
	}
	return d, true
}

// String returns v in decimal notation, "+Inf", "-Inf" or "NaN".
func (v Value) String() string {
	switch v.kind {
	case Infinity:
		if v.neg {
			return strNegInf
		}
		return strPosInf
	case NaN:
		return strNaN
	}
	if v.sig == 0 && v.neg {
		return strNegZero
	}
	d, _ := v.Decimal()
	return d.String()
}

// MarshalJSON marshals value according to current JSONMode.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode), nil
}

func (v Value) toJSON(mode int) []byte {
	s := v.String()
	if v.kind == Finite && mode == JSONModeFloat {
		return []byte(s)
	}
	return []byte(strconv.Quote(s))
}
