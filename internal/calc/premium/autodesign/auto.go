package autodesign

import (
	"fmt"
	"math"

	wall "Thermowall/internal/calc/wall"
)

type MainLayerInput struct {
	Material     string  `json:"material"`
	Conductivity float64 `json:"conductivity"`
	LengthM      float64 `json:"length_m,omitempty"`
	HeightM      float64 `json:"height_m,omitempty"`

	RequiredResistance float64 `json:"required_resistance,omitempty"`
	DegreeDays         float64 `json:"degree_days,omitempty"`
	BuildingType       string  `json:"building_type,omitempty"`
	City               string  `json:"city,omitempty"`
}

type MainLayerResult struct {
	ThicknessM         float64     `json:"thickness_m"`
	RequiredResistance float64     `json:"required_resistance"`
	ActualResistance   float64     `json:"actual_resistance"`
	Volume             wall.Volume `json:"volume,omitempty"`
	Notes              string      `json:"notes"`
}

// MainLayer sizes a single-layer wall so that no insulation is needed:
// t = (R_req - 1/8.7 - 1/23) * k, rounded up to whole centimetres.
func MainLayer(in MainLayerInput, resolver wall.Resolver) (MainLayerResult, error) {
	target := wall.Input{
		RequiredResistance: in.RequiredResistance,
		DegreeDays:         in.DegreeDays,
		BuildingType:       in.BuildingType,
		City:               in.City,
	}
	if err := resolver.Resolve(&target); err != nil {
		return MainLayerResult{}, err
	}
	rReq, err := target.TargetResistance()
	if err != nil {
		return MainLayerResult{}, err
	}
	if _, err := wall.NewMaterial(in.Material, in.Conductivity); err != nil {
		return MainLayerResult{}, err
	}

	t := math.Ceil((rReq-wall.InteriorSurfaceResistance-wall.ExteriorSurfaceResistance)*in.Conductivity*100-1e-9) / 100
	if t <= 0 {
		return MainLayerResult{}, fmt.Errorf("required resistance %.2f is below surface resistances", rReq)
	}
	main, err := wall.NewMainMaterial(in.Material, in.Conductivity, t)
	if err != nil {
		return MainLayerResult{}, err
	}

	res := MainLayerResult{
		ThicknessM:         t,
		RequiredResistance: rReq,
		ActualResistance:   math.Round((wall.InteriorSurfaceResistance+main.ThermalResistance()+wall.ExteriorSurfaceResistance)*1000) / 1000,
		Notes:              "Main layer thickness with no insulation, rounded up to 1 cm.",
	}
	if in.LengthM > 0 && in.HeightM > 0 {
		w, err := wall.NewWall(in.LengthM, in.HeightM, &main)
		if err != nil {
			return MainLayerResult{}, err
		}
		res.Volume = w.TotalMaterialVolume()
	}
	return res, nil
}
