package units

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidValue is returned when a negative (or NaN) value is supplied to
// a non-negative quantity.
var ErrInvalidValue = errors.New("units: invalid value (expected a non-negative number)")

// Quantity is an arbitrary-sign value measured in unit U.
type Quantity[U Unit] struct {
	v float64
}

// Of wraps v as a quantity of unit U.
func Of[U Unit](v float64) Quantity[U] {
	return Quantity[U]{v: v}
}

func Zero[U Unit]() Quantity[U] { return Quantity[U]{} }
func One[U Unit]() Quantity[U]  { return Quantity[U]{v: 1} }

func (q Quantity[U]) Value() float64 { return q.v }

func (q Quantity[U]) Add(o Quantity[U]) Quantity[U] { return Quantity[U]{v: q.v + o.v} }
func (q Quantity[U]) Sub(o Quantity[U]) Quantity[U] { return Quantity[U]{v: q.v - o.v} }

// Scale multiplies by a dimensionless factor.
func (q Quantity[U]) Scale(f float64) Quantity[U] { return Quantity[U]{v: q.v * f} }

func (q Quantity[U]) Abs() Quantity[U] { return Quantity[U]{v: math.Abs(q.v)} }

func (q Quantity[U]) Floor() float64 { return math.Floor(q.v) }

// Powf raises the value to a real power. The result is a bare float64: the
// unit of q^exp is not U.
func (q Quantity[U]) Powf(exp float64) float64 { return math.Pow(q.v, exp) }

// Powi raises the value to an integer power by repeated multiplication.
func (q Quantity[U]) Powi(n int) float64 { return powi(q.v, n) }

func (q Quantity[U]) Less(o Quantity[U]) bool { return q.v < o.v }

func (q Quantity[U]) IsZero() bool { return q.v == 0 }

// NonNegative checks q and narrows it to a NonNegative.
func (q Quantity[U]) NonNegative() (NonNegative[U], error) {
	return NewNonNegative[U](q.v)
}

func (q Quantity[U]) Unit() U {
	var u U
	return u
}

func (q Quantity[U]) String() string {
	return format(q.v, q.Unit())
}

func (q Quantity[U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.v)
}

func (q *Quantity[U]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &q.v)
}

// NonNegative is a value in unit U that is known to be >= 0.
type NonNegative[U Unit] struct {
	v float64
}

// NewNonNegative validates v. Negative values and NaN are rejected with
// ErrInvalidValue.
func NewNonNegative[U Unit](v float64) (NonNegative[U], error) {
	if v < 0 || math.IsNaN(v) {
		var u U
		return NonNegative[U]{}, fmt.Errorf("%w: %g %s", ErrInvalidValue, v, u.Symbol())
	}
	return NonNegative[U]{v: v}, nil
}

// MustNonNegative is NewNonNegative for values known at compile time.
func MustNonNegative[U Unit](v float64) NonNegative[U] {
	n, err := NewNonNegative[U](v)
	if err != nil {
		panic(err)
	}
	return n
}

func NonNegativeZero[U Unit]() NonNegative[U] { return NonNegative[U]{} }
func NonNegativeOne[U Unit]() NonNegative[U]  { return NonNegative[U]{v: 1} }

func (n NonNegative[U]) Value() float64 { return n.v }

// Quantity widens n to an arbitrary-sign quantity.
func (n NonNegative[U]) Quantity() Quantity[U] { return Quantity[U]{v: n.v} }

func (n NonNegative[U]) Add(o NonNegative[U]) NonNegative[U] { return NonNegative[U]{v: n.v + o.v} }

// Sub may go negative, so the result is a plain Quantity.
func (n NonNegative[U]) Sub(o NonNegative[U]) Quantity[U] { return Quantity[U]{v: n.v - o.v} }

func (n NonNegative[U]) Floor() float64             { return math.Floor(n.v) }
func (n NonNegative[U]) Powf(exp float64) float64   { return math.Pow(n.v, exp) }
func (n NonNegative[U]) Powi(exp int) float64       { return powi(n.v, exp) }
func (n NonNegative[U]) Less(o NonNegative[U]) bool { return n.v < o.v }
func (n NonNegative[U]) IsZero() bool               { return n.v == 0 }

func (n NonNegative[U]) String() string {
	var u U
	return format(n.v, u)
}

func (n NonNegative[U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.v)
}

func (n *NonNegative[U]) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	checked, err := NewNonNegative[U](v)
	if err != nil {
		return err
	}
	*n = checked
	return nil
}

func powi(x float64, n int) float64 {
	if n < 0 {
		return 1 / powi(x, -n)
	}
	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

func format(v float64, u Unit) string {
	if sym := u.Symbol(); sym != "" {
		return fmt.Sprintf("%g %s", v, sym)
	}
	return fmt.Sprintf("%g", v)
}
