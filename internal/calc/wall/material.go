package wall

import "fmt"

// Volume maps a material name to its volume in m3.
type Volume map[string]float64

// Material is a named layer with a thermal conductivity in W/(m·K).
type Material struct {
	name         string
	conductivity float64
	constructed  bool
}

func NewMaterial(name string, thermalConductivity float64) (Material, error) {
	if err := validateName(name); err != nil {
		return Material{}, err
	}
	if err := checkPositive("thermal_conductivity", thermalConductivity); err != nil {
		return Material{}, err
	}
	return Material{name: name, conductivity: thermalConductivity, constructed: true}, nil
}

func validateName(name string) error {
	if name == "" {
		return rangeErr("name", "must not be empty")
	}
	return nil
}

func (m Material) Name() string                 { return m.name }
func (m Material) ThermalConductivity() float64 { return m.conductivity }

// WithName returns a copy of m renamed to name.
func (m Material) WithName(name string) (Material, error) {
	return NewMaterial(name, m.conductivity)
}

// WithThermalConductivity returns a copy of m with a new coefficient.
func (m Material) WithThermalConductivity(k float64) (Material, error) {
	return NewMaterial(m.name, k)
}

// ComputeVolume returns the volume of a slab of m with the given area (m2) and thickness (m).
func (m Material) ComputeVolume(area, thickness float64) Volume {
	return Volume{m.name: round2(area * thickness)}
}

func (m Material) valid() bool { return m.constructed }

func (m Material) String() string {
	return fmt.Sprintf("Material %s, thermal conductivity %g", m.name, m.conductivity)
}

func (m Material) GoString() string {
	return fmt.Sprintf("NewMaterial(%q, %g)", m.name, m.conductivity)
}

// MainMaterial is the load-bearing layer of a wall.
type MainMaterial struct {
	Material
	thickness float64
}

func NewMainMaterial(name string, thermalConductivity, thickness float64) (MainMaterial, error) {
	m, err := NewMaterial(name, thermalConductivity)
	if err != nil {
		return MainMaterial{}, err
	}
	if err := checkPositive("thickness", thickness); err != nil {
		return MainMaterial{}, err
	}
	return MainMaterial{Material: m, thickness: thickness}, nil
}

func (m MainMaterial) Thickness() float64 { return m.thickness }

// ThermalResistance is thickness / conductivity, m2·K/W.
func (m MainMaterial) ThermalResistance() float64 {
	return m.thickness / m.conductivity
}

func (m MainMaterial) WithName(name string) (MainMaterial, error) {
	return NewMainMaterial(name, m.conductivity, m.thickness)
}

func (m MainMaterial) WithThermalConductivity(k float64) (MainMaterial, error) {
	return NewMainMaterial(m.name, k, m.thickness)
}

func (m MainMaterial) WithThickness(thickness float64) (MainMaterial, error) {
	return NewMainMaterial(m.name, m.conductivity, thickness)
}

func (m MainMaterial) String() string {
	return fmt.Sprintf("%s, thickness %g m", m.Material.String(), m.thickness)
}

func (m MainMaterial) GoString() string {
	return fmt.Sprintf("NewMainMaterial(%q, %g, %g)", m.name, m.conductivity, m.thickness)
}
