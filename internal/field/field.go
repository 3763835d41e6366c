// Package field wraps the prime-field element type consumed by the
// evaluator as an opaque capability (spec §6): modulus, canonical
// non-negative conversion, +, -, *, equality, and exponentiation.
//
// Grounded on github.com/consensys/go-corset's use of gnark-crypto's
// fr.Element (pkg/ir/term.go imports
// "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"); this package
// is the Go-native equivalent of the Rust field crate that
// original_source/pil-analyzer/src/evaluator.rs treats as external.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element is a canonical member of the configured prime field, always
// represented in [0, Modulus()).
type Element struct {
	inner fr.Element
}

// Modulus returns the field's prime modulus.
func Modulus() *big.Int {
	m := fr.Modulus()
	return new(big.Int).Set(m)
}

// Zero is the additive identity.
func Zero() Element { return Element{} }

// One is the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// FromUint64 builds a field element from a non-negative machine integer.
func FromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// FromBigInt builds a field element from a non-negative arbitrary-precision
// integer. It reduces modulo the field's modulus, matching the original
// evaluator's "FieldElement::from" construction path.
func FromBigInt(v *big.Int) (Element, error) {
	if v.Sign() < 0 {
		return Element{}, fmt.Errorf("field: cannot build a field element from a negative integer %s", v.String())
	}
	var e Element
	e.inner.SetBigInt(v)
	return e, nil
}

// ToBigInt returns the canonical non-negative integer representative.
func (e Element) ToBigInt() *big.Int {
	var out big.Int
	e.inner.BigInt(&out)
	return &out
}

// Add returns e+other.
func (e Element) Add(other Element) Element {
	var r Element
	r.inner.Add(&e.inner, &other.inner)
	return r
}

// Sub returns e-other.
func (e Element) Sub(other Element) Element {
	var r Element
	r.inner.Sub(&e.inner, &other.inner)
	return r
}

// Mul returns e*other.
func (e Element) Mul(other Element) Element {
	var r Element
	r.inner.Mul(&e.inner, &other.inner)
	return r
}

// Neg returns -e.
func (e Element) Neg() Element {
	var r Element
	r.inner.Neg(&e.inner)
	return r
}

// Equal reports whether e and other denote the same field element.
func (e Element) Equal(other Element) bool {
	return e.inner.Equal(&other.inner)
}

// Exp returns e raised to a non-negative integer exponent, reduced modulo
// the field's multiplicative order as gnark-crypto's Exp already does
// internally.
func (e Element) Exp(exponent uint64) Element {
	var r Element
	var k big.Int
	k.SetUint64(exponent)
	r.inner.Exp(e.inner, &k)
	return r
}

// String renders the canonical decimal representation.
func (e Element) String() string {
	return e.inner.String()
}
