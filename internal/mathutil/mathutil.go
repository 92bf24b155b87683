package mathutil

import (
	"math/bits"
)

var (
	quinaryFactorTable = [...]uint64{ // up to 5^27
		1, 5, 25, 125, 625,
		3125, 15625, 78125, 390625, 1953125,
		9765625, 48828125, 244140625, 1220703125, 6103515625,
		30517578125, 152587890625, 762939453125, 3814697265625, 19073486328125,
		95367431640625, 476837158203125, 2384185791015625, 11920928955078125, 59604644775390625,
		298023223876953125, 1490116119384765625, 7450580596923828125,
	}
)

// Pow5 returns 5^pow, or 0 if the result does not fit a uint64.
func Pow5(pow int) uint64 {
	if pow < 0 || pow >= len(quinaryFactorTable) {
		return 0
	}
	return quinaryFactorTable[pow]
}

// DyadicToDecimal converts mant*2^exp into mant'*10^exp' without loss.
// 2^-k is 5^k * 10^-k, so negative binary exponents become decimal ones.
// ok is false if the result overflows a uint64.
func DyadicToDecimal(mant uint64, exp int) (m uint64, e int32, ok bool) {
	if mant == 0 {
		return 0, 0, true
	}
	if exp >= 0 {
		if BinaryDigits(mant)+exp > 64 {
			return 0, 0, false
		}
		return mant << uint(exp), 0, true
	}
	p := Pow5(-exp)
	if p == 0 {
		return 0, 0, false
	}
	hi, lo := bits.Mul64(mant, p)
	if hi > 0 {
		return 0, 0, false
	}
	m, e = TrimMantExp(lo, int32(exp), 0)
	return m, e, true
}

// BinaryDigits returns the number of significant bits in value.
func BinaryDigits(value uint64) int {
	return bits.Len64(value)
}

// TrimMantExp removes trailing decimal zeros from m while e < eMax.
func TrimMantExp(m uint64, e, eMax int32) (uint64, int32) {
	for e < eMax && m > 9 && m%10 == 0 {
		m /= 10
		e++
	}
	return m, e
}

// Sign returns -1 if neg is set, 1 otherwise.
func Sign(neg bool) int {
	return [...]int{1, -1}[b2i(neg)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
