package xgeom

import "encoding/json"

// MarshalJSON encodes the point as a two-element [x, y] array.
func (p Point[T, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]T{p.X, p.Y})
}

// UnmarshalJSON decodes a two-element [x, y] array.
func (p *Point[T, U]) UnmarshalJSON(data []byte) error {
	var c [2]T
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	p.X, p.Y = c[0], c[1]
	return nil
}

// MarshalJSON encodes the box as a two-element [min, max] array.
func (b Box[T, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Point[T, U]{b.Min, b.Max})
}

// UnmarshalJSON decodes a two-element [min, max] array.
func (b *Box[T, U]) UnmarshalJSON(data []byte) error {
	var c [2]Point[T, U]
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	b.Min, b.Max = c[0], c[1]
	return nil
}
