/*
Package measure implements quantities tagged with units of measure.
Unit errors, such as adding meters to seconds, are caught by the Go
compiler, and conversions between units are exact wherever the
representation allows.

# Representation

A unit is named by a zero-size tag type implementing [Tag]:

	type Meter struct{}

	func (Meter) Unit() measure.Unit { return meter }

[Quantity] is a struct with a single field, the value, and carries its unit
as the type parameter T. A Quantity[units.Meter, int32] therefore has the
size of an int32, and quantities in different units are different Go types.

The unit itself is described by a [Unit] value:

  - Dimension: a vector of rational exponents over the base dimensions
    length, mass, time, current, temperature, amount, luminous intensity
    and angle. See [Dimension].
  - Magnitude: the exact size of the unit relative to the coherent unit of
    its dimension, stored as a product of rational powers of primes and π.
    See [Magnitude].
  - Origin: for affine units such as degrees Celsius, the position of the
    zero of the scale. Origins only affect [Point] conversions.
  - Label: the display symbol, such as "m" or "ohm". Labels are never used
    to decide whether two units are equal.

Magnitudes are canonical, so two units built in different ways, such as
meters per second and the inverse of seconds per meter, have equal
descriptors and convert to each other with a factor of exactly one.

# Composition

Derived units are generic tags over other tags:

  - [Product], [Quotient], [Inverse], [Squared], [Cubed], [SquareRoot],
    [CubeRoot].
  - [Scaled], which multiplies a unit by a magnitude named by a [MagTag].
  - SI prefixes from [Quetta] to [Quecto], and binary prefixes from
    [Kibi] to [Exbi].

[Mul] and [Div] accept quantities in any units and return quantities in the
product and quotient units. [Quantity.Add], [Quantity.Sub] and the
comparison methods require the same unit.

Units with an origin cannot be composed. A tag such as
Product[units.Celsius, units.Meter] is still a valid Go type, but using its
descriptor fails with [ErrAffineComposition]: [UnitOf] panics and the
conversion functions return the error. [Validate] reports the problem
without panicking.

# Conversions

The package provides functions for converting quantities:

  - to another unit:
    [As], [In].
  - to another unit and representation:
    [AsRep], [InRep].
  - accepting loss of information:
    [CoerceAs], [CoerceIn], [CoerceAsRep], [CoerceInRep].
  - with explicit rounding:
    [RoundAs], [FloorAs], [CeilAs].
  - of points:
    [PointAs], [PointIn], [PointAsRep], [CoercePointAs], [CoercePointAsRep].
  - of constants:
    [ConstantAs], [ConstantIn], [CoerceConstantAs], [ConstantInUnit].

Each conversion is performed according to a [Plan]:

 1. The value is cast to an intermediate representation: int64 or uint64
    if both sides are integral and the factor is a rational that fits,
    float64 otherwise.

 2. The factor is applied using the cheapest exact [Strategy]: a single
    multiplication or division, a multiplication followed by a division,
    or a split into quotient and remainder when the intermediate product
    would overflow.

 3. The result is cast to the destination representation.

Plans depend only on the pair of tags and representations, so they are
computed once and cached. [NewConversion] returns a [Conversion] that holds
its plan, so that [Conversion.Apply] performs only the arithmetic.

# Lossy conversions

A conversion is exact if it has neither of the following risks:

  - Truncation: the destination is integral and the factor is not an
    integer, or the source is floating-point, or a float64 is narrowed to
    float32.
  - Overflow: some value of magnitude up to 2147 would overflow the
    intermediate or the destination representation.

The default functions return [ErrLossyConversion] for conversions with any
risk. The Coerce variants perform them anyway, rounding integer results
half to even.

Since Go has no compile-time evaluation, a lossy conversion is detected
when it is first used. Creating the conversion at package initialization
with [MustConversion] makes a bad pair fail as soon as the program starts:

	var inchesToFeet = measure.MustConversion[units.Inch, int, units.Foot, int]() // panics

The residual risk of overflow for values above the threshold can be checked
at run time with [Conversion.Overflows], [Conversion.MinGood] and
[Conversion.MaxGood].

# Errors

Errors are returned in the following cases:

  - Dimension Mismatch.
    Converting or comparing units of different dimensions returns
    [ErrDimensionMismatch].

  - Lossy Conversion.
    See above.

  - Affine Composition.
    Multiplying, dividing or raising a unit with an origin returns
    [ErrAffineComposition].

  - Invalid Magnitude.
    [ValueOf] returns [ErrNonInteger] for a non-integer magnitude in an
    integral representation, [ErrMagnitudeRange] if the value does not
    fit, and [Magnitude.Rat] returns [ErrIrrational] for magnitudes
    involving π or roots.

Errors are wrapped with context and can be matched with [errors.Is].
*/
package measure
