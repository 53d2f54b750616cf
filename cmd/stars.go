package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/philipparndt/constellation/pkg/starfield"
)

var starsBands int

var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "Generate a star field and report its distribution",
	Long: `Generate the configured star field and print the radius error and the
number of stars per equal-area inclination band.`,
	Args: cobra.NoArgs,
	RunE: runStars,
}

func init() {
	rootCmd.AddCommand(starsCmd)

	starsCmd.Flags().IntVarP(&starsBands, "bands", "b", 10, "Number of inclination bands")
}

func runStars(c *cobra.Command, _ []string) error {
	cfg, logger, err := LoadSettings(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if starsBands < 1 {
		return fmt.Errorf("bands must be at least 1, got %d", starsBands)
	}

	cloud := starfield.Generate(cfg.Stars.Count, cfg.Stars.Radius, cfg.Stars.Seed)
	printStars(c.OutOrStdout(), cloud, cfg.Stars.Radius, starsBands)
	return nil
}

// printStars writes the distribution report for cloud
func printStars(w io.Writer, cloud *starfield.Cloud, radius float64, bands int) {
	maxErr := 0.0
	cloud.Each(func(p starfield.Point) {
		maxErr = math.Max(maxErr, math.Abs(p.Position.Length()-radius))
	})

	fmt.Fprintf(w, "Stars:            %d\n", cloud.Len())
	fmt.Fprintf(w, "Radius:           %.3f\n", radius)
	fmt.Fprintf(w, "Max radius error: %.3g\n", maxErr)

	counts := cloud.InclinationBands(bands)
	expected := float64(cloud.Len()) / float64(bands)

	fmt.Fprintf(w, "\nInclination bands (equal area, expected %.1f each):\n", expected)
	for i, n := range counts {
		from := math.Acos(1-2*float64(i)/float64(bands)) * 180 / math.Pi
		to := math.Acos(1-2*float64(i+1)/float64(bands)) * 180 / math.Pi
		fmt.Fprintf(w, "  %6.1f - %6.1f deg  %6d\n", from, to, n)
	}
}
