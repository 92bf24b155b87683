// Package table builds the decode table of all 256 minifloat encodings.
package table

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"runtime"
	"strconv"
	"text/tabwriter"

	"github.com/avdva/fp8"
	"golang.org/x/sync/errgroup"
)

// Size is the number of distinct encodings.
const Size = 1 << 8

var (
	csvHeader = []string{"bits", "binary", "sign", "exponent", "mantissa", "class", "kind", "value"}
)

// Row is a single decoded encoding.
type Row struct {
	Bits     uint8     `json:"bits"`
	Sign     uint8     `json:"sign"`
	Exponent uint8     `json:"exponent"`
	Mantissa uint8     `json:"mantissa"`
	Class    fp8.Class `json:"class"`
	Value    fp8.Value `json:"value"`
}

// NewRow decodes b.
func NewRow(b uint8) Row {
	s, e, m := fp8.Split(b)
	return Row{
		Bits:     b,
		Sign:     s,
		Exponent: e,
		Mantissa: m,
		Class:    fp8.Classify(b),
		Value:    fp8.Decode(b),
	}
}

// Table holds rows for every encoding, indexed by their bits.
type Table struct {
	Rows [Size]Row
}

// Buckets are rows partitioned by Kind.
type Buckets struct {
	Finite   []Row
	Infinite []Row
	NaN      []Row
}

// Build decodes all the encodings in parallel.
// It only returns an error if ctx is done before the table is complete.
func Build(ctx context.Context) (*Table, error) {
	t := &Table{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < Size; i++ {
		b := uint8(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t.Rows[b] = NewRow(b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building table: %w", err)
	}
	return t, nil
}

// Partition splits rows into finite, infinite and NaN buckets, keeping their order.
func (t *Table) Partition() Buckets {
	var result Buckets
	for _, r := range t.Rows {
		switch r.Value.Kind() {
		case fp8.Finite:
			result.Finite = append(result.Finite, r)
		case fp8.Infinity:
			result.Infinite = append(result.Infinite, r)
		case fp8.NaN:
			result.NaN = append(result.NaN, r)
		}
	}
	return result
}

// FiniteRange returns the smallest and the largest finite value.
// ok is false if there are no finite values.
func (t *Table) FiniteRange() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, r := range t.Rows {
		if !r.Value.IsFinite() {
			continue
		}
		f := r.Value.Float64()
		min, max, ok = math.Min(min, f), math.Max(max, f), true
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// WriteText writes the table as aligned columns.
func (t *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintln(tw, "BITS\tBINARY\tS\tE\tM\tCLASS\tVALUE")
	for _, r := range t.Rows {
		fmt.Fprintf(tw, "0x%02x\t%08b\t%d\t%d\t%d\t%s\t%s\n", r.Bits, r.Bits, r.Sign, r.Exponent, r.Mantissa, r.Class, r.Value)
	}
	return tw.Flush()
}

// WriteCSV writes the table as csv with a header line.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range t.Rows {
		record := []string{
			strconv.Itoa(int(r.Bits)),
			fmt.Sprintf("%08b", r.Bits),
			strconv.Itoa(int(r.Sign)),
			strconv.Itoa(int(r.Exponent)),
			strconv.Itoa(int(r.Mantissa)),
			r.Class.String(),
			r.Value.Kind().String(),
			r.Value.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as a json array.
func (t *Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.Rows[:])
}
