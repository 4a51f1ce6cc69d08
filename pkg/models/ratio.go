package models

import "encoding/json"

// Ratio is an efficiency or financial ratio that may have no finite value,
// e.g. COP of a passive door that draws no power, or payback with zero
// savings. The unbounded case is carried explicitly instead of as an IEEE
// infinity so consumers branch deliberately.
type Ratio struct {
	Value  float64
	Finite bool
}

// FiniteRatio returns a ratio with a defined value.
func FiniteRatio(v float64) Ratio { return Ratio{Value: v, Finite: true} }

// UnboundedRatio returns the "no finite ratio" sentinel.
func UnboundedRatio() Ratio { return Ratio{} }

// DivideRatio returns num/den, or the unbounded sentinel when den is zero.
func DivideRatio(num, den float64) Ratio {
	if den == 0 {
		return UnboundedRatio()
	}
	return FiniteRatio(num / den)
}

// MarshalJSON encodes a finite ratio as its number and an unbounded one as
// null, so JSON consumers never see IEEE infinities.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Finite {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON accepts a number or null.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = UnboundedRatio()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = FiniteRatio(v)
	return nil
}
