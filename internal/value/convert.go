package value

import (
	"math/big"

	"github.com/taikoonwang/powdr/internal/evalerror"
	"github.com/taikoonwang/powdr/internal/field"
)

// TryToFieldElement accepts a FieldElement directly, and an Integer if
// it is non-negative and less than the modulus (spec §4.2).
func TryToFieldElement(v Value) (field.Element, error) {
	switch vv := v.(type) {
	case FieldElement:
		return vv.Value, nil
	case Integer:
		if vv.Value.Sign() < 0 {
			return field.Element{}, evalerror.NewTypeError("cannot convert negative integer %s to a field element", vv.Value)
		}
		if vv.Value.Cmp(field.Modulus()) >= 0 {
			return field.Element{}, evalerror.NewTypeError("integer %s is not less than the field modulus", vv.Value)
		}
		fe, err := field.FromBigInt(vv.Value)
		if err != nil {
			return field.Element{}, evalerror.NewTypeError("%s", err)
		}
		return fe, nil
	default:
		return field.Element{}, evalerror.NewTypeError("cannot convert %s to a field element", v.TypeName())
	}
}

// TryToInteger accepts an Integer directly, and a FieldElement (lifted
// to its canonical non-negative integer representative) (spec §4.2).
func TryToInteger(v Value) (*big.Int, error) {
	switch vv := v.(type) {
	case Integer:
		return vv.Value, nil
	case FieldElement:
		return vv.Value.ToBigInt(), nil
	default:
		return nil, evalerror.NewTypeError("cannot convert %s to an integer", v.TypeName())
	}
}
