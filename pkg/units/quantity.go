package units

import (
	"math"
	"strconv"
	"strings"

	"grocer/pkg/serrors"
)

// Quantity is an amount of some material: a magnitude paired with a unit.
// Quantities are immutable values; arithmetic returns new ones.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Dimension returns the physical dimension of the quantity's unit.
func (q Quantity) Dimension() Dimension {
	return q.Unit.dim
}

// ConvertTo re-expresses the quantity in another unit of the same
// dimension. Converting across dimensions (e.g. cups to grams) is not a
// unit conversion and fails with ErrDimensionMismatch.
func (q Quantity) ConvertTo(to Unit) (Quantity, error) {
	if q.Unit.dim != to.dim {
		return Quantity{}, serrors.With(serrors.ErrDimensionMismatch,
			"cannot convert %s (%s) to %s (%s)", q.Unit.symbol, q.Unit.dim, to.symbol, to.dim)
	}

	return Quantity{Value: q.Value * q.Unit.scale / to.scale, Unit: to}, nil
}

// Add returns the sum of q and other, expressed in q's unit. The
// operands must share a dimension.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	conv, err := other.ConvertTo(q.Unit)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{Value: q.Value + conv.Value, Unit: q.Unit}, nil
}

// DivideBy divides the quantity by a conversion factor. The quantity
// must share a dimension with the factor's numerator; the result
// carries the factor's denominator unit. Dividing 1 cup by
// 0.002 cup/g yields 500 g.
func (q Quantity) DivideBy(f Factor) (Quantity, error) {
	qn, err := q.ConvertTo(f.Num)
	if err != nil {
		return Quantity{}, err
	}
	if f.Value == 0 {
		return Quantity{}, serrors.With(serrors.ErrUnregularizable,
			"cannot divide %s by zero factor %s/%s", q, f.Num.symbol, f.Den.symbol)
	}

	return Quantity{Value: qn.Value / f.Value, Unit: f.Den}, nil
}

// MultiplyBy multiplies the quantity by a conversion factor. The
// quantity must share a dimension with the factor's denominator; the
// result carries the factor's numerator unit.
func (q Quantity) MultiplyBy(f Factor) (Quantity, error) {
	qd, err := q.ConvertTo(f.Den)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{Value: qd.Value * f.Value, Unit: f.Num}, nil
}

// String renders the quantity at full precision, e.g. "1.5 cup".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " + q.Unit.symbol
}

// Format renders the quantity rounded to the given number of
// significant figures, e.g. "700 g" or "0.50 L". Values smaller than
// 1e-4 fall back to scientific notation.
func (q Quantity) Format(sigFigs int) string {
	return formatValue(q.Value, sigFigs) + " " + q.Unit.symbol
}

// ParseQuantity parses a "<value> <unit>" string such as "1.5 cup".
func ParseQuantity(s string) (Quantity, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Quantity{}, serrors.With(serrors.ErrMalformedRecord,
			"quantity %q is not of the form \"<value> <unit>\"", s)
	}

	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Quantity{}, serrors.Wrap(serrors.ErrMalformedRecord, err, "quantity %q has a malformed value", s)
	}

	u, err := Parse(strings.Join(fields[1:], " "))
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{Value: v, Unit: u}, nil
}

// Factor is a conversion rate between two dimensions: a magnitude
// paired with a ratio of units, e.g. 0.002 cup/g or 50 g/count.
type Factor struct {
	Value float64
	Num   Unit
	Den   Unit
}

// Inverse returns the reciprocal factor, e.g. 500 g/cup for
// 0.002 cup/g. The factor value must be non-zero.
func (f Factor) Inverse() Factor {
	return Factor{Value: 1 / f.Value, Num: f.Den, Den: f.Num}
}

// Validate reports whether the factor could plausibly appear in a
// material record: a positive, finite magnitude relating two distinct
// dimensions.
func (f Factor) Validate() error {
	if f.Value <= 0 || math.IsInf(f.Value, 0) || math.IsNaN(f.Value) {
		return serrors.With(serrors.ErrMalformedRecord, "factor %s has a non-positive or non-finite value", f)
	}
	if f.Num.dim == f.Den.dim {
		return serrors.With(serrors.ErrMalformedRecord,
			"factor %s relates two %s units and cannot convert anything", f, f.Num.dim)
	}

	return nil
}

// String renders the factor at full precision, e.g. "0.002 cup/g".
func (f Factor) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64) + " " + f.Num.symbol + "/" + f.Den.symbol
}

// ParseFactor parses a "<value> <num>/<den>" string such as
// "0.002 cup/g".
func ParseFactor(s string) (Factor, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Factor{}, serrors.With(serrors.ErrMalformedRecord,
			"factor %q is not of the form \"<value> <unit>/<unit>\"", s)
	}

	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Factor{}, serrors.Wrap(serrors.ErrMalformedRecord, err, "factor %q has a malformed value", s)
	}

	num, den, err := ParseRatio(strings.Join(fields[1:], " "))
	if err != nil {
		return Factor{}, err
	}

	return Factor{Value: v, Num: num, Den: den}, nil
}

// formatValue rounds v to sigFigs significant figures and renders it
// positionally where possible. Trailing zeros within the significant
// figures are kept, so 0.5 at two figures prints as "0.50".
func formatValue(v float64, sigFigs int) string {
	if sigFigs < 1 {
		sigFigs = 1
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	sci := strconv.FormatFloat(v, 'e', sigFigs-1, 64)
	mant, expStr, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expStr)

	sign := ""
	if strings.HasPrefix(mant, "-") {
		sign = "-"
		mant = mant[1:]
	}
	digits := strings.Replace(mant, ".", "", 1)

	if exp < -4 {
		return sci
	}

	var b strings.Builder
	b.WriteString(sign)
	switch {
	case exp >= len(digits)-1:
		b.WriteString(digits)
		for i := 0; i < exp-(len(digits)-1); i++ {
			b.WriteByte('0')
		}
	case exp >= 0:
		b.WriteString(digits[:exp+1])
		b.WriteByte('.')
		b.WriteString(digits[exp+1:])
	default:
		b.WriteString("0.")
		for i := 0; i < -exp-1; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	}

	return b.String()
}
