// Package units provides dimension-safe wrappers around float64 values.
//
// Every value carries a unit tag as a type parameter, so the compiler
// refuses to add a temperature to a distance:
//
//   - [Quantity]: arbitrary-sign value in unit U
//   - [NonNegative]: value in unit U that was checked to be >= 0
//   - [Unit]: tag interface implemented by empty structs such as [Megaparsec]
//
// Moving between units is always an explicit, named conversion
// ([MpcToKilometers], [KilogramsToJoules], ...). Raising a value to a power
// returns a bare float64 because the result no longer has the same unit.
//
// # Example
//
//	d := units.Of[units.Megaparsec](4282.7)
//	km := units.MpcToKilometers(d)
//	fmt.Println(km) // 1.3216e+23 km
package units
