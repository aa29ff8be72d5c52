package report

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	wall "Thermowall/internal/calc/wall"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

type Input struct {
	Project string     `json:"project"`
	Author  string     `json:"author"`
	Title   string     `json:"title"`
	Notes   string     `json:"notes"`
	Wall    wall.Input `json:"wall"`
}

type Handler struct {
	Resolver wall.Resolver
	Log      *zap.Logger
	Now      func() time.Time
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.Resolver.Resolve(&input.Wall); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := wall.Calculate(input.Wall)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"wall-report.pdf\"")
	if err := Write(w, input, res, now()); err != nil {
		if h.Log != nil {
			h.Log.Error("report generation", zap.Error(err))
		}
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// Write renders the PDF report for an already calculated wall.
func Write(out io.Writer, input Input, res wall.Result, date time.Time) error {
	if input.Title == "" {
		input.Title = "Wall Insulation Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Wall")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	w := input.Wall
	rows := [][2]string{
		{"Length, m", fmt.Sprintf("%g", w.LengthM)},
		{"Height, m", fmt.Sprintf("%g", w.HeightM)},
		{"Area, m2", fmt.Sprintf("%.2f", res.AreaM2)},
		{"Main material", fmt.Sprintf("%s, k=%g W/(m*K), t=%g m", w.MainMaterial.Name, w.MainMaterial.Conductivity, w.MainMaterial.ThicknessM)},
		{"Main layer resistance, m2*K/W", fmt.Sprintf("%.3f", res.MainLayerResistance)},
	}
	if w.Insulator != nil && res.InsulationThicknessM != nil {
		rows = append(rows,
			[2]string{"Insulator", fmt.Sprintf("%s, k=%g W/(m*K)", w.Insulator.Name, w.Insulator.Conductivity)},
			[2]string{"Required resistance, m2*K/W", fmt.Sprintf("%.2f", res.RequiredResistance)},
			[2]string{"Insulation thickness, m", fmt.Sprintf("%.2f", *res.InsulationThicknessM)},
		)
	}
	for _, row := range rows {
		pdf.CellFormat(80, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Material volumes")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, v := range res.Volumes {
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			pdf.CellFormat(80, 7, name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, fmt.Sprintf("%.2f m3", v[name]), "1", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(6)
	pdf.MultiCell(0, 6, res.Notes, "", "L", false)
	if input.Notes != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}
	return pdf.Output(out)
}
