package kino

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a declarative effect description loaded from YAML, so
// designers can tune transition behavior without recompiling:
//
//	effect: scale-segmented
//	point_duration: 0.5
//	expand: 6
//	curve: ease-out
//	stroke:
//	  from: {op: multiply, value: 1}
//	  to: {op: set, value: 3}
//
// Zero-valued fields leave the effect's defaults alone.
type Preset struct {
	// Effect names the transform: "scale-segmented", "morph-square" or
	// "unfold".
	Effect string `yaml:"effect"`

	PointDuration  float64 `yaml:"point_duration"`
	EffectDuration float64 `yaml:"effect_duration"`

	Expand int `yaml:"expand"`
	Bounce int `yaml:"bounce"`

	// Dot radii in pixels; zero disables the dot mode.
	EndAsDot   float64 `yaml:"end_as_dot"`
	StartAsDot float64 `yaml:"start_as_dot"`

	// Curve selects the per-point interpolation: "linear", "ease-in",
	// "ease-out" or "ease-in-out".
	Curve string `yaml:"curve"`

	Stroke *PresetStroke `yaml:"stroke"`

	// Unfold settings. Angle is in degrees; zero means random.
	Angle      float64 `yaml:"angle"`
	Groups     int     `yaml:"groups"`
	GroupDelay float64 `yaml:"group_delay"`
}

// PresetStroke is the animated stroke width section of a preset.
type PresetStroke struct {
	From PresetWidthOp `yaml:"from"`
	To   PresetWidthOp `yaml:"to"`
}

// PresetWidthOp is one stroke width endpoint: an operator name ("set",
// "multiply" or "add") and its operand.
type PresetWidthOp struct {
	Op    string  `yaml:"op"`
	Value float64 `yaml:"value"`
}

// ParsePreset decodes a YAML preset.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("kino: parse preset: %w", err)
	}
	if _, err := p.curveFunc(); err != nil {
		return nil, err
	}
	if p.Stroke != nil {
		if _, err := p.Stroke.From.widthOp(); err != nil {
			return nil, err
		}
		if _, err := p.Stroke.To.widthOp(); err != nil {
			return nil, err
		}
	}
	switch p.Effect {
	case "", "scale-segmented", "morph-square", "unfold":
	default:
		return nil, fmt.Errorf("kino: preset: unknown effect %q", p.Effect)
	}
	return &p, nil
}

// LoadPreset reads and decodes a YAML preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kino: load preset %s: %w", path, err)
	}
	p, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("kino: load preset %s: %w", path, err)
	}
	return p, nil
}

// Build constructs the preset's effect around a source reel. The frames
// carry the motion: fromFrame is where the source starts, toFrame where
// it lands. When own is set the built reel disposes the source with
// itself.
func (p *Preset) Build(from Reel, own bool, fromFrame, toFrame Rect) (Reel, error) {
	switch p.Effect {
	case "morph-square":
		return NewMorphSquareReel(from, own), nil
	case "unfold":
		u := NewUnfoldReel(from, own, fromFrame, p.binaryAngle(), p.Groups, Fixed32FromFloat(p.GroupDelay))
		if err := p.applyCommon(u.ScaleSegmentedReel); err != nil {
			return nil, err
		}
		return u, nil
	default: // scale-segmented
		s := NewScaleSegmentedReel(from, own, fromFrame, toFrame)
		if err := p.applyCommon(s); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// ApplyTo configures an existing segmented-scale reel from the preset's
// shared fields.
func (p *Preset) ApplyTo(s *ScaleSegmentedReel) error {
	return p.applyCommon(s)
}

func (p *Preset) applyCommon(s *ScaleSegmentedReel) error {
	if p.PointDuration > 0 {
		s.SetPointDuration(Fixed32FromFloat(p.PointDuration))
	}
	if p.EffectDuration > 0 {
		s.SetEffectDuration(Fixed32FromFloat(p.EffectDuration))
	}
	if p.Expand != 0 {
		s.SetExpand(p.Expand)
	}
	if p.Bounce != 0 {
		s.SetBounce(p.Bounce)
	}
	if p.EndAsDot > 0 {
		s.SetEndAsDot(Fixed16FromFloat(p.EndAsDot))
	}
	if p.StartAsDot > 0 {
		s.SetStartAsDot(Fixed16FromFloat(p.StartAsDot))
	}
	if fn, err := p.curveFunc(); err != nil {
		return err
	} else if fn != nil {
		s.SetInterpolate(fn)
	}
	if p.Stroke != nil {
		from, err := p.Stroke.From.widthOp()
		if err != nil {
			return err
		}
		to, err := p.Stroke.To.widthOp()
		if err != nil {
			return err
		}
		s.SetStrokeWidth(from, to)
	}
	return nil
}

// binaryAngle converts the preset's degree angle to Angle units.
func (p *Preset) binaryAngle() Angle {
	return Angle(p.Angle / 360 * float64(AngleMax))
}

// curveFunc resolves the curve name; an empty name returns nil so the
// effect's default survives.
func (p *Preset) curveFunc() (CurveFunc, error) {
	switch p.Curve {
	case "":
		return nil, nil
	case "linear":
		return CurveLinear.Func(), nil
	case "ease-in":
		return CurveEaseIn.Func(), nil
	case "ease-out":
		return CurveEaseOut.Func(), nil
	case "ease-in-out":
		return CurveEaseInOut.Func(), nil
	default:
		return nil, fmt.Errorf("kino: preset: unknown curve %q", p.Curve)
	}
}

// widthOp resolves a stroke endpoint to a WidthOp.
func (w PresetWidthOp) widthOp() (WidthOp, error) {
	var op StrokeWidthOp
	switch w.Op {
	case "set":
		op = StrokeWidthSet
	case "multiply":
		op = StrokeWidthMultiply
	case "add":
		op = StrokeWidthAdd
	default:
		return WidthOp{}, fmt.Errorf("kino: preset: unknown stroke op %q", w.Op)
	}
	return WidthOp{Op: op, Value: Fixed16FromFloat(w.Value)}, nil
}
