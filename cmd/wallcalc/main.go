package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"Thermowall/internal/calc/catalog"
	"Thermowall/internal/calc/climate"
	wall "Thermowall/internal/calc/wall"

	"github.com/spf13/cobra"
)

type options struct {
	length, height float64
	main           string
	mainK, mainT   float64
	insulator      string
	insulatorK     float64
	required       float64
	degreeDays     float64
	city, building string
	catalogPath    string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "wallcalc",
		Short: "Insulation thickness and material volumes for an external wall",
		Long: `wallcalc sizes the insulation layer of an external wall so that its total
heat-transfer resistance reaches the required value, and reports material volumes.
Materials are looked up in the catalog when their conductivity is not given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, o)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&o.length, "length", 5, "wall length, m")
	f.Float64Var(&o.height, "height", 3.1, "wall height, m")
	f.StringVar(&o.main, "main", "brick", "main material name")
	f.Float64Var(&o.mainK, "main-k", 0, "main material conductivity, W/(m·K) (default from catalog)")
	f.Float64Var(&o.mainT, "main-thickness", 0, "main layer thickness, m (default from catalog)")
	f.StringVar(&o.insulator, "insulator", "", "insulator name; empty for an uninsulated wall")
	f.Float64Var(&o.insulatorK, "insulator-k", 0, "insulator conductivity, W/(m·K) (default from catalog)")
	f.Float64Var(&o.required, "required-resistance", 0, "required resistance, m2·K/W (default 2.99)")
	f.Float64Var(&o.degreeDays, "degree-days", 0, "heating degree-days (GSOP), °C·day; used with --building")
	f.StringVar(&o.city, "city", "", "derive the required resistance from a catalog city")
	f.StringVar(&o.building, "building", string(climate.Residential), "building type: residential, public, industrial")
	f.StringVar(&o.catalogPath, "catalog", "", "catalog YAML file (default built-in)")

	cmd.AddCommand(newMaterialsCmd(out, &o))
	return cmd
}

func newMaterialsCmd(out io.Writer, o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List catalog materials and cities",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(o.catalogPath)
			if err != nil {
				return err
			}
			for _, m := range cat.Materials {
				fmt.Fprintf(out, "%-10s %-25s %g\n", m.Kind, m.Name, m.Conductivity)
			}
			for _, c := range cat.Cities {
				fmt.Fprintf(out, "%-10s %-25s GSOP %.0f\n", "city", c.Name, c.DegreeDays(climate.DefaultIndoorTemp))
			}
			return nil
		},
	}
}

func run(out io.Writer, o options) error {
	cat, err := catalog.Load(o.catalogPath)
	if err != nil {
		return err
	}
	in := wall.Input{
		LengthM:            o.length,
		HeightM:            o.height,
		MainMaterial:       wall.MaterialInput{Name: o.main, Conductivity: o.mainK, ThicknessM: o.mainT},
		RequiredResistance: o.required,
		DegreeDays:         o.degreeDays,
		BuildingType:       o.building,
		City:               o.city,
	}
	if in.MainMaterial.Conductivity == 0 || in.MainMaterial.ThicknessM == 0 {
		e, err := cat.Material(o.main)
		if err != nil {
			return err
		}
		if in.MainMaterial.Conductivity == 0 {
			in.MainMaterial.Conductivity = e.Conductivity
		}
		if in.MainMaterial.ThicknessM == 0 {
			in.MainMaterial.ThicknessM = e.Thickness
		}
	}
	if o.insulator != "" {
		k := o.insulatorK
		if k == 0 {
			e, err := cat.Material(o.insulator)
			if err != nil {
				return err
			}
			k = e.Conductivity
		}
		in.Insulator = &wall.MaterialInput{Name: o.insulator, Conductivity: k}
	}
	if err := (wall.Resolver{Cities: cat}).Resolve(&in); err != nil {
		return err
	}

	s, err := wall.Build(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)
	if iw, ok := s.(*wall.InsulatedWall); ok {
		fmt.Fprintf(out, "Required resistance: %.2f m2·K/W\n", iw.RequiredResistance())
		fmt.Fprintf(out, "Insulation thickness: %.2f m\n", iw.RequiredInsulationThickness())
	}
	fmt.Fprintf(out, "Area: %.2f m2\n", s.Area())
	fmt.Fprintln(out, "Material volumes:")
	for _, v := range s.MaterialVolumes() {
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %s: %.2f m3\n", name, v[name])
		}
	}
	fmt.Fprintf(out, "%#v\n", s)
	return nil
}
