package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/globalmercator/mercator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var bboxCmd = &cobra.Command{
	Use:   "bbox",
	Short: "Project a lat/lng bounding box to EPSG:3857 meters",
	RunE:  runBBox,
}

func init() {
	rootCmd.AddCommand(bboxCmd)

	bboxCmd.Flags().String("bbox", "", "Bounding box: minLon,minLat,maxLon,maxLat (e.g., \"-75.01,44.99,-74.97,45.02\")")
	if err := viper.BindPFlag("bbox.bbox", bboxCmd.Flags().Lookup("bbox")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

type bboxReport struct {
	LatLng mercator.BBox `json:"latlng"`
	Meters mercator.BBox `json:"meters"`
}

func runBBox(cmd *cobra.Command, args []string) error {
	m, err := newMercator()
	if err != nil {
		return err
	}

	s := viper.GetString("bbox.bbox")
	if s == "" {
		return fmt.Errorf("--bbox is required")
	}
	bbox, err := parseBBox(s)
	if err != nil {
		return fmt.Errorf("invalid bbox: %w", err)
	}

	meters, err := m.BBoxLatLngToMeters(bbox)
	if err != nil {
		return fmt.Errorf("project bbox: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), bboxReport{LatLng: bbox, Meters: meters})
}

// parseBBox parses "minLon,minLat,maxLon,maxLat". Corner order is kept as given.
func parseBBox(s string) (mercator.BBox, error) {
	parts := strings.Split(s, ",")

	vals := make([]float64, 0, len(parts))
	for i, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mercator.BBox{}, fmt.Errorf("invalid number at position %d: %w", i, err)
		}
		vals = append(vals, val)
	}

	return mercator.ValidateBBox(vals)
}
