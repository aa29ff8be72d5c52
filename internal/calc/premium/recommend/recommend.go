package recommend

import (
	"fmt"
	"sort"

	"Thermowall/internal/calc/catalog"
	wall "Thermowall/internal/calc/wall"
)

type InsulatorRecommendInput struct {
	Wall  wall.Input `json:"wall"`
	Limit int        `json:"limit,omitempty"`
}

type Option struct {
	Insulator    string  `json:"insulator"`
	Conductivity float64 `json:"conductivity"`
	ThicknessM   float64 `json:"thickness_m"`
	VolumeM3     float64 `json:"volume_m3"`
}

type InsulatorRecommendResult struct {
	RequiredResistance float64  `json:"required_resistance"`
	NoInsulationNeeded bool     `json:"no_insulation_needed"`
	Options            []Option `json:"options"`
	Notes              string   `json:"notes"`
}

// Insulators sizes every candidate for the wall and orders them by volume,
// thinnest first.
func Insulators(in InsulatorRecommendInput, candidates []catalog.Entry) (InsulatorRecommendResult, error) {
	if len(candidates) == 0 {
		return InsulatorRecommendResult{}, fmt.Errorf("no insulators to compare")
	}
	var out InsulatorRecommendResult
	for _, c := range candidates {
		item := in.Wall
		item.Insulator = &wall.MaterialInput{Name: c.Name, Conductivity: c.Conductivity}
		s, err := wall.Build(item)
		if err != nil {
			return InsulatorRecommendResult{}, err
		}
		iw := s.(*wall.InsulatedWall)
		out.RequiredResistance = iw.RequiredResistance()
		if iw.ResistanceShortfall() <= 0 {
			out.NoInsulationNeeded = true
			out.Options = []Option{}
			out.Notes = "Main layer alone meets the required resistance."
			return out, nil
		}
		t := iw.RequiredInsulationThickness()
		if t <= 0 {
			// thinner than 0.01 m for this insulator
			continue
		}
		out.Options = append(out.Options, Option{
			Insulator:    c.Name,
			Conductivity: c.Conductivity,
			ThicknessM:   t,
			VolumeM3:     iw.InsulatorVolume()[c.Name],
		})
	}
	sort.SliceStable(out.Options, func(i, j int) bool {
		if out.Options[i].VolumeM3 != out.Options[j].VolumeM3 {
			return out.Options[i].VolumeM3 < out.Options[j].VolumeM3
		}
		return out.Options[i].Conductivity < out.Options[j].Conductivity
	})
	if in.Limit > 0 && len(out.Options) > in.Limit {
		out.Options = out.Options[:in.Limit]
	}
	if len(out.Options) == 0 {
		out.Options = []Option{}
		out.Notes = "Main layer falls short of the required resistance by less than 0.01 m of any insulator."
		return out, nil
	}
	out.Notes = "Insulators ordered by required volume."
	return out, nil
}
