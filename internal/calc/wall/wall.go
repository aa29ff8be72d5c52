package wall

import "fmt"

const (
	// RequiredResistance is the required heat-transfer resistance of an external
	// wall for Saint Petersburg, m2·K/W.
	RequiredResistance = 2.99

	InteriorSurfaceResistance = 1 / 8.7
	ExteriorSurfaceResistance = 1 / 23.0
)

// Structure is what every wall kind can report.
type Structure interface {
	Area() float64
	MaterialVolumes() []Volume
}

type Wall struct {
	length float64
	height float64
	main   MainMaterial
}

func NewWall(length, height float64, main *MainMaterial) (*Wall, error) {
	if err := checkNumber("length", length); err != nil {
		return nil, err
	}
	if err := checkNumber("height", height); err != nil {
		return nil, err
	}
	if main == nil || !main.valid() {
		return nil, typeErr("main_material", "must be a MainMaterial built by NewMainMaterial")
	}
	return &Wall{length: length, height: height, main: *main}, nil
}

func (w *Wall) Length() float64            { return w.length }
func (w *Wall) Height() float64            { return w.height }
func (w *Wall) MainMaterial() MainMaterial { return w.main }

// Area in m2.
func (w *Wall) Area() float64 {
	return round2(w.length * w.height)
}

func (w *Wall) TotalMaterialVolume() Volume {
	return w.main.ComputeVolume(w.Area(), w.main.Thickness())
}

func (w *Wall) MaterialVolumes() []Volume {
	return []Volume{w.TotalMaterialVolume()}
}

func (w *Wall) String() string {
	return fmt.Sprintf("Wall, material %s, main layer thickness %g. Dimensions: length %g m, height %g m.",
		w.main.Name(), w.main.Thickness(), w.length, w.height)
}

func (w *Wall) GoString() string {
	return fmt.Sprintf("NewWall(%g, %g, %#v)", w.length, w.height, w.main)
}

type Option func(*InsulatedWall)

// WithRequiredResistance replaces RequiredResistance for a single wall,
// e.g. for a different climate zone.
func WithRequiredResistance(r float64) Option {
	return func(w *InsulatedWall) {
		w.required = r
	}
}

// InsulatedWall is a wall with an insulation layer sized to reach the
// required resistance.
type InsulatedWall struct {
	Wall
	insulator Material
	required  float64
}

func NewInsulatedWall(length, height float64, main *MainMaterial, insulator *Material, opts ...Option) (*InsulatedWall, error) {
	base, err := NewWall(length, height, main)
	if err != nil {
		return nil, err
	}
	if insulator == nil || !insulator.valid() {
		return nil, typeErr("insulator", "must be a Material built by NewMaterial")
	}
	w := &InsulatedWall{Wall: *base, insulator: *insulator, required: RequiredResistance}
	for _, opt := range opts {
		opt(w)
	}
	if err := checkPositive("required_resistance", w.required); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *InsulatedWall) Insulator() Material         { return w.insulator }
func (w *InsulatedWall) RequiredResistance() float64 { return w.required }

// ResistanceShortfall is the resistance, m2·K/W, the insulation layer has to
// add. Zero or negative means the main layer alone is enough.
func (w *InsulatedWall) ResistanceShortfall() float64 {
	return w.required - InteriorSurfaceResistance - w.main.ThermalResistance() - ExteriorSurfaceResistance
}

// RequiredInsulationThickness returns the insulation thickness in m.
// The result is negative when the main layer alone exceeds the requirement.
func (w *InsulatedWall) RequiredInsulationThickness() float64 {
	return round2(w.ResistanceShortfall() * w.insulator.ThermalConductivity())
}

func (w *InsulatedWall) InsulatorVolume() Volume {
	return w.insulator.ComputeVolume(w.Area(), w.RequiredInsulationThickness())
}

// TotalMaterialVolume returns the main layer volume followed by the insulator volume.
func (w *InsulatedWall) TotalMaterialVolume() []Volume {
	return []Volume{w.Wall.TotalMaterialVolume(), w.InsulatorVolume()}
}

func (w *InsulatedWall) MaterialVolumes() []Volume {
	return w.TotalMaterialVolume()
}

func (w *InsulatedWall) String() string {
	return fmt.Sprintf("%s Insulator: %s.", w.Wall.String(), w.insulator.Name())
}

func (w *InsulatedWall) GoString() string {
	s := fmt.Sprintf("NewInsulatedWall(%g, %g, %#v, %#v", w.length, w.height, w.main, w.insulator)
	if w.required != RequiredResistance {
		s += fmt.Sprintf(", WithRequiredResistance(%g)", w.required)
	}
	return s + ")"
}
