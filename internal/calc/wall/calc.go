package wall

import (
	"fmt"
	"math"

	"Thermowall/internal/calc/climate"
)

type MaterialInput struct {
	Name         string  `json:"name"`
	Conductivity float64 `json:"conductivity"`
	ThicknessM   float64 `json:"thickness_m,omitempty"`
}

type Input struct {
	LengthM      float64        `json:"length_m"`
	HeightM      float64        `json:"height_m"`
	MainMaterial MaterialInput  `json:"main_material"`
	Insulator    *MaterialInput `json:"insulator,omitempty"`

	// Either an explicit resistance, or degree-days with a building type.
	RequiredResistance float64 `json:"required_resistance,omitempty"`
	DegreeDays         float64 `json:"degree_days,omitempty"`
	BuildingType       string  `json:"building_type,omitempty"`
	City               string  `json:"city,omitempty"`
}

// Cities looks up heating-period data by city name.
type Cities interface {
	City(name string) (climate.City, error)
}

// ResolveCity fills DegreeDays from the named city unless the caller set
// a resistance or degree-days explicitly.
func (in *Input) ResolveCity(cities Cities) error {
	if in.City == "" || in.RequiredResistance != 0 || in.DegreeDays != 0 {
		return nil
	}
	if cities == nil {
		return fmt.Errorf("invalid input: no city data available")
	}
	city, err := cities.City(in.City)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	in.DegreeDays = city.DegreeDays(climate.DefaultIndoorTemp)
	return nil
}

// Resolver completes an Input with climate data and the configured
// default resistance before it is calculated.
type Resolver struct {
	Cities Cities
	// DefaultResistance replaces RequiredResistance when an input names
	// neither a resistance nor a climate. Zero keeps RequiredResistance.
	DefaultResistance float64
}

func (r Resolver) Resolve(in *Input) error {
	if err := in.ResolveCity(r.Cities); err != nil {
		return err
	}
	if in.RequiredResistance == 0 && in.DegreeDays == 0 && r.DefaultResistance > 0 {
		in.RequiredResistance = r.DefaultResistance
	}
	return nil
}

type Result struct {
	AreaM2               float64  `json:"area_m2"`
	Volumes              []Volume `json:"volumes"`
	InsulationThicknessM *float64 `json:"insulation_thickness_m,omitempty"`
	RequiredResistance   float64  `json:"required_resistance,omitempty"`
	MainLayerResistance  float64  `json:"main_layer_resistance"`
	NoInsulationNeeded   bool     `json:"no_insulation_needed"`
	Description          string   `json:"description"`
	Notes                string   `json:"notes"`
}

// Build validates in and returns the wall it describes.
func Build(in Input) (Structure, error) {
	if in.LengthM <= 0 || in.HeightM <= 0 {
		return nil, fmt.Errorf("invalid input: wall dimensions must be positive")
	}
	main, err := NewMainMaterial(in.MainMaterial.Name, in.MainMaterial.Conductivity, in.MainMaterial.ThicknessM)
	if err != nil {
		return nil, fmt.Errorf("main material: %w", err)
	}
	rReq, err := in.TargetResistance()
	if err != nil {
		return nil, err
	}
	var s Structure
	if in.Insulator == nil {
		w, err := NewWall(in.LengthM, in.HeightM, &main)
		if err != nil {
			return nil, err
		}
		s = w
	} else {
		ins, err := NewMaterial(in.Insulator.Name, in.Insulator.Conductivity)
		if err != nil {
			return nil, fmt.Errorf("insulator: %w", err)
		}
		w, err := NewInsulatedWall(in.LengthM, in.HeightM, &main, &ins, WithRequiredResistance(rReq))
		if err != nil {
			return nil, err
		}
		s = w
	}
	if err := checkFinite(s); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	return s, nil
}

// checkFinite rejects walls so large that area or volumes overflow.
func checkFinite(s Structure) error {
	if a := s.Area(); math.IsInf(a, 0) || math.IsNaN(a) {
		return rangeErr("area", "wall is too large")
	}
	for _, v := range s.MaterialVolumes() {
		for name, m3 := range v {
			if math.IsInf(m3, 0) || math.IsNaN(m3) {
				return rangeErr("volume", fmt.Sprintf("%s volume is too large", name))
			}
		}
	}
	return nil
}

// TargetResistance resolves the required resistance: explicit value first,
// then degree-days, then RequiredResistance. Zero means unset; any other
// value must be positive.
func (in Input) TargetResistance() (float64, error) {
	if in.RequiredResistance != 0 {
		if err := checkPositive("required_resistance", in.RequiredResistance); err != nil {
			return 0, fmt.Errorf("invalid input: %w", err)
		}
		return in.RequiredResistance, nil
	}
	if in.DegreeDays != 0 {
		if err := checkPositive("degree_days", in.DegreeDays); err != nil {
			return 0, fmt.Errorf("invalid input: %w", err)
		}
		b, err := climate.ParseBuildingType(in.BuildingType)
		if err != nil {
			return 0, fmt.Errorf("invalid input: %w", err)
		}
		return climate.RequiredResistance(b, in.DegreeDays)
	}
	return RequiredResistance, nil
}

func Calculate(in Input) (Result, error) {
	s, err := Build(in)
	if err != nil {
		return Result{}, err
	}
	return Describe(s), nil
}

// Describe collects the figures of an already built wall.
func Describe(s Structure) Result {
	res := Result{
		AreaM2:  s.Area(),
		Volumes: s.MaterialVolumes(),
	}
	switch w := s.(type) {
	case *InsulatedWall:
		t := w.RequiredInsulationThickness()
		res.InsulationThicknessM = &t
		res.RequiredResistance = w.RequiredResistance()
		res.MainLayerResistance = w.MainMaterial().ThermalResistance()
		res.NoInsulationNeeded = w.ResistanceShortfall() <= 0
		res.Description = w.String()
		switch {
		case res.NoInsulationNeeded:
			res.Notes = "Main layer alone meets the required resistance; thickness left unclamped."
		case t <= 0:
			res.Notes = "Main layer falls short of the required resistance by less than the thinnest insulation layer (0.01 m)."
		default:
			res.Notes = "Insulation sized to reach the required heat-transfer resistance."
		}
	case *Wall:
		res.MainLayerResistance = w.MainMaterial().ThermalResistance()
		res.Description = w.String()
		res.Notes = "Uninsulated wall, main layer volume only."
	}
	return res
}
