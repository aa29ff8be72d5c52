package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	wall "Thermowall/internal/calc/wall"

	"github.com/xuri/excelize/v2"
)

// Column order of an import sheet; the first row is a header.
var Header = []string{
	"length_m", "height_m",
	"main_material", "main_conductivity", "main_thickness_m",
	"insulator", "insulator_conductivity",
	"required_resistance", "city",
}

type RowResult struct {
	Row    int          `json:"row"`
	Input  wall.Input   `json:"input"`
	Result *wall.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type WallImportResult struct {
	Count   int         `json:"count"`
	Failed  int         `json:"failed"`
	Results []RowResult `json:"results"`
}

// ImportWalls reads the first sheet of an xlsx workbook and calculates every row.
// Bad rows are reported, not fatal.
func ImportWalls(r io.Reader, resolver wall.Resolver) (WallImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return WallImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return WallImportResult{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return WallImportResult{}, fmt.Errorf("empty sheet")
	}

	var out WallImportResult
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		rr := RowResult{Row: i + 1}
		input, err := parseWallRow(row)
		if err == nil {
			err = resolver.Resolve(&input)
		}
		var res wall.Result
		if err == nil {
			res, err = wall.Calculate(input)
		}
		rr.Input = input
		if err != nil {
			rr.Error = err.Error()
			out.Failed++
		} else {
			rr.Result = &res
			out.Count++
		}
		out.Results = append(out.Results, rr)
	}
	return out, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseWallRow(row []string) (wall.Input, error) {
	if len(row) < 5 {
		return wall.Input{}, fmt.Errorf("expected at least 5 columns, got %d", len(row))
	}
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var in wall.Input
	var err error
	if in.LengthM, err = toFloat(Header[0], cell(0)); err != nil {
		return in, err
	}
	if in.HeightM, err = toFloat(Header[1], cell(1)); err != nil {
		return in, err
	}
	in.MainMaterial.Name = cell(2)
	if in.MainMaterial.Conductivity, err = toFloat(Header[3], cell(3)); err != nil {
		return in, err
	}
	if in.MainMaterial.ThicknessM, err = toFloat(Header[4], cell(4)); err != nil {
		return in, err
	}
	if name := cell(5); name != "" {
		k, err := toFloat(Header[6], cell(6))
		if err != nil {
			return in, err
		}
		in.Insulator = &wall.MaterialInput{Name: name, Conductivity: k}
	}
	if s := cell(7); s != "" {
		if in.RequiredResistance, err = toFloat(Header[7], s); err != nil {
			return in, err
		}
	}
	in.City = cell(8)
	return in, nil
}

// toFloat accepts both "0.51" and "0,51".
func toFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, &wall.ValidationError{Kind: wall.TypeKind, Field: field, Reason: fmt.Sprintf("%q is not a number", s)}
	}
	return v, nil
}
