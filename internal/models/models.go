package models

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// GestureConfig is one gesture class as it appears in a template library:
// a name and one or more strokes in "x,y;x,y;..." form. Command, when set,
// is run by the CLI after the gesture is recognized.
type GestureConfig struct {
	Name      string   `json:"name" yaml:"name"`
	Command   string   `json:"command,omitempty" yaml:"command,omitempty"`
	Templates []string `json:"templates" yaml:"templates"`
}
