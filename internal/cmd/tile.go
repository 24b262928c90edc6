package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/globalmercator/internal/tile"
	"github.com/MeKo-Tech/globalmercator/mercator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tileCmd = &cobra.Command{
	Use:   "tile <z/x/y | zZ_xX_yY>",
	Short: "Describe a tile: TMS, Google, QuadKey and bounds",
	Args:  cobra.ExactArgs(1),
	RunE:  runTile,
}

var quadKeyCmd = &cobra.Command{
	Use:   "quadkey <key>",
	Short: "Decode a Microsoft QuadKey and describe its tile",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuadKey,
}

func init() {
	rootCmd.AddCommand(tileCmd)
	rootCmd.AddCommand(quadKeyCmd)

	tileCmd.Flags().String("scheme", "google", "Row order of the input tile: google (XYZ, top-left origin) or tms (bottom-left origin)")
	if err := viper.BindPFlag("tile.scheme", tileCmd.Flags().Lookup("scheme")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runTile(cmd *cobra.Command, args []string) error {
	m, err := newMercator()
	if err != nil {
		return err
	}

	coords, err := tile.ParseCoords(args[0])
	if err != nil {
		return err
	}

	google, err := googleForScheme(m, coords, viper.GetString("tile.scheme"))
	if err != nil {
		return err
	}
	summary, err := tile.Describe(m, google)
	if err != nil {
		return fmt.Errorf("describe tile %s: %w", coords, err)
	}
	return writeJSON(cmd.OutOrStdout(), summary)
}

func googleForScheme(m *mercator.Mercator, c tile.Coords, scheme string) (mercator.Google, error) {
	switch scheme {
	case "google", "xyz":
		return c.Google()
	case "tms":
		return m.TileToGoogle(mercator.Tile{TX: c.X, TY: c.Y, Zoom: c.Z})
	default:
		return mercator.Google{}, fmt.Errorf("invalid scheme %q: must be 'google' or 'tms'", scheme)
	}
}

func runQuadKey(cmd *cobra.Command, args []string) error {
	m, err := newMercator()
	if err != nil {
		return err
	}

	google, err := m.QuadKeyToGoogle(args[0])
	if err != nil {
		return fmt.Errorf("decode quadkey %q: %w", args[0], err)
	}
	summary, err := tile.Describe(m, google)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), summary)
}
