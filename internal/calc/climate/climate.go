// Package climate derives the required heat-transfer resistance of external
// walls from heating-season degree-days (SP 50.13330, table 3).
package climate

import (
	"fmt"
	"math"
	"strings"
)

type BuildingType string

const (
	Residential BuildingType = "residential"
	Public      BuildingType = "public"
	Industrial  BuildingType = "industrial"
)

// DefaultIndoorTemp is the design indoor air temperature, °C.
const DefaultIndoorTemp = 20.0

type City struct {
	Name        string  `json:"name" yaml:"name"`
	HeatingTemp float64 `json:"heating_temp" yaml:"heating_temp"` // mean temperature of the heating period, °C
	HeatingDays float64 `json:"heating_days" yaml:"heating_days"`
}

// DegreeDays returns GSOP = (t_in - t_heat) * z_heat.
func (c City) DegreeDays(indoor float64) float64 {
	if indoor == 0 {
		indoor = DefaultIndoorTemp
	}
	return (indoor - c.HeatingTemp) * c.HeatingDays
}

func ParseBuildingType(s string) (BuildingType, error) {
	switch BuildingType(strings.ToLower(strings.TrimSpace(s))) {
	case "", Residential:
		return Residential, nil
	case Public:
		return Public, nil
	case Industrial:
		return Industrial, nil
	}
	return "", fmt.Errorf("unknown building type %q", s)
}

// RequiredResistance returns R_req = a*GSOP + b for walls, rounded to 0.01.
func RequiredResistance(b BuildingType, gsop float64) (float64, error) {
	if gsop <= 0 || math.IsNaN(gsop) || math.IsInf(gsop, 0) {
		return 0, fmt.Errorf("invalid degree-days %v", gsop)
	}
	a, c, err := factors(b)
	if err != nil {
		return 0, err
	}
	return math.Round((a*gsop+c)*100) / 100, nil
}

func factors(b BuildingType) (a, c float64, err error) {
	switch b {
	case Residential, "":
		return 0.00035, 1.4, nil
	case Public:
		return 0.0003, 1.2, nil
	case Industrial:
		return 0.0002, 1.0, nil
	default:
		return 0, 0, fmt.Errorf("unknown building type %q", b)
	}
}
