package importer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	wall "Thermowall/internal/calc/wall"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Walls"

var exportHeader = []any{
	"length_m", "height_m", "main_material", "insulator",
	"area_m2", "required_resistance", "insulation_thickness_m", "volumes", "notes",
}

// ExportWalls writes inputs with their results as an xlsx workbook.
func ExportWalls(out io.Writer, inputs []wall.Input, results []wall.Result) error {
	if len(inputs) != len(results) {
		return fmt.Errorf("inputs and results differ in length: %d != %d", len(inputs), len(results))
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, in := range inputs {
		res := results[i]
		insulator := ""
		if in.Insulator != nil {
			insulator = in.Insulator.Name
		}
		var thickness any = ""
		if res.InsulationThicknessM != nil {
			thickness = *res.InsulationThicknessM
		}
		var rReq any = ""
		if res.RequiredResistance > 0 {
			rReq = res.RequiredResistance
		}
		row := []any{
			in.LengthM, in.HeightM, in.MainMaterial.Name, insulator,
			res.AreaM2, rReq, thickness, formatVolumes(res.Volumes), res.Notes,
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cellRef, &row); err != nil {
			return err
		}
	}
	return f.Write(out)
}

func formatVolumes(vs []wall.Volume) string {
	var parts []string
	for _, v := range vs {
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s: %.2f m3", name, v[name]))
		}
	}
	return strings.Join(parts, "; ")
}
