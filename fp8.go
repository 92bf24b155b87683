// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fp8 decodes 8-bit minifloats in the 1-4-3 layout:
// one sign bit, four exponent bits with a bias of 7, and three mantissa bits.
//
//   7      0
//   seeeemmm
//
// Every one of the 256 bit patterns is a legal encoding: exponent 15 holds
// the infinities and NaNs, exponent 0 holds zero and the subnormal numbers.
package fp8

import (
	"errors"
	"fmt"
)

const (
	// ExponentBits is the width of the exponent field.
	ExponentBits = 4
	// MantissaBits is the width of the mantissa field.
	MantissaBits = 3
	// Bias is subtracted from the stored exponent.
	Bias = 1<<(ExponentBits-1) - 1

	// MaxExponent is the largest unbiased exponent of a normal number.
	MaxExponent = expMask - 1 - Bias
	// MinExponent is the smallest unbiased exponent of a normal number.
	// Subnormal numbers use it as well, without the implicit leading 1.
	MinExponent = 1 - Bias

	// MaxValue is the largest finite value, 0x77.
	MaxValue = (2 - 1.0/(1<<MantissaBits)) * (1 << MaxExponent)
	// SmallestNormal is the smallest positive normal value, 0x08.
	SmallestNormal = 1.0 / (1 << -MinExponent)
	// SmallestSubnormal is the smallest positive value, 0x01.
	SmallestSubnormal = SmallestNormal / (1 << MantissaBits)
)

const (
	signShift = ExponentBits + MantissaBits
	expShift  = MantissaBits

	expMask  = 1<<ExponentBits - 1
	mantMask = 1<<MantissaBits - 1

	// implicit leading 1 of normal numbers.
	hiddenBit = 1 << MantissaBits
)

var (
	// ErrOutOfRange is returned by DecodeInt for values that don't fit 8 bits.
	ErrOutOfRange = errors.New("value out of range")
)

func signOf(b uint8) uint8 {
	return b >> signShift & 1
}

func exp(b uint8) uint8 {
	return b >> expShift & expMask
}

func mant(b uint8) uint8 {
	return b & mantMask
}

// Split returns the sign, exponent and mantissa fields of b.
func Split(b uint8) (sign, exponent, mantissa uint8) {
	sign = signOf(b)
	exponent = exp(b)
	mantissa = mant(b)
	return sign, exponent, mantissa
}

// Decode returns the value encoded by b.
// It never fails: all the 8-bit patterns are valid minifloats.
func Decode(b uint8) Value {
	s, e, m := Split(b)
	neg := s == 1
	switch e {
	case expMask:
		if m == 0 {
			return Value{kind: Infinity, neg: neg}
		}
		// payload bits don't matter, there is only one NaN.
		return nan
	case 0:
		return Value{kind: Finite, neg: neg, sig: m, exp: MinExponent - MantissaBits}
	default:
		return Value{kind: Finite, neg: neg, sig: hiddenBit | m, exp: int8(e) - Bias - MantissaBits}
	}
}

// DecodeInt decodes b, which must be in [0, 255].
// Out-of-range values are rejected with ErrOutOfRange instead of being masked.
func DecodeInt(b int) (Value, error) {
	if b < 0 || b > 0xff {
		return nan, fmt.Errorf("decoding %d: %w", b, ErrOutOfRange)
	}
	return Decode(uint8(b)), nil
}

// Classify returns the class of the value encoded by b.
func Classify(b uint8) Class {
	_, e, m := Split(b)
	switch {
	case e == expMask && m == 0:
		return ClassInfinite
	case e == expMask:
		return ClassNaN
	case e == 0 && m == 0:
		return ClassZero
	case e == 0:
		return ClassSubnormal
	default:
		return ClassNormal
	}
}
