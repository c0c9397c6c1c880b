package drawing

import (
	"encoding/json"
	"errors"
	"strconv"
)

// jsonState is used for serialization with the json/encoding package.
type jsonState struct {
	Shapes []Shape `json:"shapes"`
}

// MarshalJSON implements the encoding/json.Marshaler interface.
// The shapes are always written as an array, even when there are none.
func (s State) MarshalJSON() ([]byte, error) {
	j := jsonState{
		Shapes: s.Shapes,
	}
	if j.Shapes == nil {
		j.Shapes = []Shape{}
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface.
// The generator of the state is kept.
func (s *State) UnmarshalJSON(b []byte) error {
	var j jsonState
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	if j.Shapes == nil {
		j.Shapes = []Shape{}
	}
	for i, shape := range j.Shapes {
		if err := shape.validate(); err != nil {
			return errors.New("shape " + strconv.Itoa(i) + ": " + err.Error())
		}
	}
	s.Shapes = j.Shapes
	return nil
}

// ParseState decodes the json text of a state.
func ParseState(text []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(text, &s); err != nil {
		return nil, errors.New("parsing drawing state: " + err.Error())
	}
	return &s, nil
}

// Map converts the state into nested maps and slices of primitive values.
// The result can be passed to js.ValueOf.
func (s State) Map() map[string]interface{} {
	shapes := make([]interface{}, len(s.Shapes))
	for i, shape := range s.Shapes {
		shapes[i] = map[string]interface{}{
			"x":      shape.X,
			"y":      shape.Y,
			"radius": shape.Radius,
			"color":  shape.Color,
		}
	}
	m := map[string]interface{}{
		"shapes": shapes,
	}
	return m
}

// validate returns an error if the shape cannot be drawn.
func (s Shape) validate() error {
	switch {
	case s.Radius < 0:
		return errors.New("negative radius: " + strconv.FormatFloat(s.Radius, 'g', -1, 64))
	case len(s.Color) == 0:
		return errors.New("color required")
	}
	return nil
}
