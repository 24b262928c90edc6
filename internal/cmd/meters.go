package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/globalmercator/mercator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var metersCmd = &cobra.Command{
	Use:   "meters",
	Short: "Convert EPSG:3857 meters to lat/lng, pixels and tiles",
	RunE:  runMeters,
}

func init() {
	rootCmd.AddCommand(metersCmd)

	metersCmd.Flags().Float64("mx", 0, "Easting in meters")
	metersCmd.Flags().Float64("my", 0, "Northing in meters")
	metersCmd.Flags().IntP("zoom", "z", -1, "Zoom level (omit for lat/lng only)")

	mustBind := func(key string, name string) {
		if err := viper.BindPFlag(key, metersCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}

	mustBind("meters.mx", "mx")
	mustBind("meters.my", "my")
	mustBind("meters.zoom", "zoom")
}

func runMeters(cmd *cobra.Command, args []string) error {
	m, err := newMercator()
	if err != nil {
		return err
	}

	meters := mercator.Meters{
		MX:   viper.GetFloat64("meters.mx"),
		MY:   viper.GetFloat64("meters.my"),
		Zoom: zoomSetting("meters.zoom"),
	}
	report, err := describeMeters(m, meters)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), report)
}

func describeMeters(m *mercator.Mercator, init mercator.Meters) (pointReport, error) {
	meters, err := mercator.NewMeters(init.MX, init.MY, init.Zoom)
	if err != nil {
		return pointReport{}, fmt.Errorf("invalid meters: %w", err)
	}
	ll, err := m.MetersToLatLng(meters)
	if err != nil {
		return pointReport{}, fmt.Errorf("meters to latlng: %w", err)
	}
	report := pointReport{LatLng: ll, Meters: meters}
	if !meters.Zoom.Valid {
		return report, nil
	}

	t, err := m.MetersToTile(meters)
	if err != nil {
		return pointReport{}, fmt.Errorf("meters to tile: %w", err)
	}
	google, err := m.TileToGoogle(t)
	if err != nil {
		return pointReport{}, fmt.Errorf("tile to google: %w", err)
	}
	return withTile(m, report, google)
}
