package main

import (
	"strings"

	"github.com/spf13/cobra"

	"geocalc/internal/geometry"
)

var shapesCategory string

// shapesCmd lists the supported shapes
var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List supported shapes and their dimensions",
	Long: `Lists every supported shape with the dimensions it requires and the
formulas used.

Examples:
  geo shapes
  geo shapes --category 3d`,
	RunE: runShapes,
}

func runShapes(cmd *cobra.Command, args []string) error {
	var shapes []geometry.Shape
	if shapesCategory != "" {
		cat, err := geometry.ParseCategory(shapesCategory)
		if err != nil {
			return err
		}
		shapes = geometry.ByCategory(cat)
	} else {
		shapes = geometry.All()
	}

	var lastCategory geometry.Category
	for _, s := range shapes {
		if s.Category != lastCategory {
			lastCategory = s.Category
			switch s.Category {
			case geometry.Category2D:
				printTitle("2D shapes (area, perimeter)\n")
			case geometry.Category3D:
				printTitle("3D shapes (volume, surface area)\n")
			}
		}

		names := make([]string, len(s.Dimensions))
		for i, d := range s.Dimensions {
			names[i] = d.Name
		}
		printMetric("  %-20s", s.Name)
		printMuted(" %s\n", strings.Join(names, ", "))
		printMuted("  %20s %s\n", "", s.Formula)
	}
	return nil
}
