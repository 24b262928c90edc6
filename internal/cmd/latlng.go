package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/globalmercator/internal/tile"
	"github.com/MeKo-Tech/globalmercator/mercator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var latLngCmd = &cobra.Command{
	Use:   "latlng",
	Short: "Convert a WGS84 position to meters, pixels and tiles",
	Long: `Project a lat/lng position to Spherical Mercator meters. When --zoom is given,
also report the pyramid pixel and the tile containing the position.`,
	RunE: runLatLng,
}

func init() {
	rootCmd.AddCommand(latLngCmd)

	latLngCmd.Flags().Float64("lat", 0, "Latitude in degrees (-90..90, clamped to ±85)")
	latLngCmd.Flags().Float64("lng", 0, "Longitude in degrees (-180..180)")
	latLngCmd.Flags().IntP("zoom", "z", -1, "Zoom level (omit for meters only)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"latlng.lat", "lat"},
		{"latlng.lng", "lng"},
		{"latlng.zoom", "zoom"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, latLngCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

type pointReport struct {
	LatLng mercator.LatLng  `json:"latlng"`
	Meters mercator.Meters  `json:"meters"`
	Pixels *mercator.Pixels `json:"pixels,omitempty"`
	Tile   *tile.Summary    `json:"tile,omitempty"`
}

func runLatLng(cmd *cobra.Command, args []string) error {
	m, err := newMercator()
	if err != nil {
		return err
	}

	ll := mercator.LatLng{
		Lat:  viper.GetFloat64("latlng.lat"),
		Lng:  viper.GetFloat64("latlng.lng"),
		Zoom: zoomSetting("latlng.zoom"),
	}
	report, err := describeLatLng(m, ll)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), report)
}

func describeLatLng(m *mercator.Mercator, init mercator.LatLng) (pointReport, error) {
	ll, err := mercator.NewLatLng(init.Lat, init.Lng, init.Zoom)
	if err != nil {
		return pointReport{}, fmt.Errorf("invalid position: %w", err)
	}
	meters, err := m.LatLngToMeters(ll)
	if err != nil {
		return pointReport{}, fmt.Errorf("latlng to meters: %w", err)
	}
	report := pointReport{LatLng: ll, Meters: meters}
	if !ll.Zoom.Valid {
		return report, nil
	}

	google, err := m.LatLngToGoogle(ll)
	if err != nil {
		return pointReport{}, fmt.Errorf("latlng to google: %w", err)
	}
	return withTile(m, report, google)
}

// withTile fills in the pixel and tile sections of a report.
func withTile(m *mercator.Mercator, report pointReport, google mercator.Google) (pointReport, error) {
	pixels, err := m.MetersToPixels(report.Meters)
	if err != nil {
		return pointReport{}, fmt.Errorf("meters to pixels: %w", err)
	}
	summary, err := tile.Describe(m, google)
	if err != nil {
		return pointReport{}, fmt.Errorf("describe tile: %w", err)
	}
	report.Pixels = &pixels
	report.Tile = &summary
	return report, nil
}

// zoomSetting reads an optional zoom; negative values mean unset.
func zoomSetting(key string) mercator.Zoom {
	z := viper.GetInt(key)
	if z < 0 {
		return mercator.NoZoom
	}
	return mercator.ZoomOf(z)
}
