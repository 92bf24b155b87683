package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow5(t *testing.T) {
	a := assert.New(t)
	p := uint64(1)
	for i := 0; i < len(quinaryFactorTable); i++ {
		a.Equal(p, Pow5(i), "5^%d", i)
		p *= 5
	}
	a.Equal(uint64(0), Pow5(-1))
	a.Equal(uint64(0), Pow5(len(quinaryFactorTable)))
}

func TestDyadicToDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mant uint64
		exp  int
		m    uint64
		e    int32
		ok   bool
	}{
		{0, -9, 0, 0, true},
		{1, 0, 1, 0, true},
		{15, 4, 240, 0, true},
		{1, -9, 1953125, -9, true},
		{8, -9, 15625, -6, true},
		{4, -1, 2, 0, true},
		{12, -3, 15, -1, true},
		{1, 63, 1 << 63, 0, true},
		{2, 63, 0, 0, false},
		{1, -30, 0, 0, false},
		{math.MaxUint64, -1, 0, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			m, e, ok := DyadicToDecimal(test.mant, test.exp)
			a.Equal(test.ok, ok)
			a.Equal(test.m, m)
			a.Equal(test.e, e)
		})
	}
}

func TestTrimMantExp(t *testing.T) {
	a := assert.New(t)
	m, e := TrimMantExp(1000, -3, 0)
	a.Equal(uint64(1), m)
	a.Equal(int32(0), e)
	m, e = TrimMantExp(1000, -1, 0)
	a.Equal(uint64(100), m)
	a.Equal(int32(0), e)
}

func TestSign(t *testing.T) {
	a := assert.New(t)
	a.Equal(1, Sign(false))
	a.Equal(-1, Sign(true))
}

func BenchmarkDyadicToDecimal(b *testing.B) {
	var dummy uint64
	for i := 0; i < b.N; i++ {
		m, _, _ := DyadicToDecimal(uint64(i&15), -(i & 7))
		dummy += m
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
