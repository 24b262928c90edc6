//go:build js && wasm
// +build js,wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/MeKo-Tech/globalmercator/internal/tile"
	"github.com/MeKo-Tech/globalmercator/mercator"
)

// DescribeTileRequest represents a tile lookup request from JS
type DescribeTileRequest struct {
	Zoom    int    `json:"zoom"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Scheme  string `json:"scheme"` // "google" (default) or "tms"
	QuadKey string `json:"quadkey"`
}

// LatLngRequest represents a point lookup request from JS
type LatLngRequest struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

func errorResult(err error) map[string]interface{} {
	return map[string]interface{}{"error": err.Error()}
}

// encode turns a Go value into a plain JS object via JSON
func encode(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(fmt.Errorf("failed to encode result: %w", err))
	}
	return js.Global().Get("JSON").Call("parse", string(data))
}

// describeTile is called from JavaScript with a JSON DescribeTileRequest
func describeTile(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "missing arguments"}
	}

	var req DescribeTileRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return errorResult(fmt.Errorf("failed to parse request: %w", err))
	}

	m := mercator.Default()
	var google mercator.Google
	var err error
	switch {
	case req.QuadKey != "":
		google, err = m.QuadKeyToGoogle(req.QuadKey)
	case req.Scheme == "tms":
		google, err = m.TileToGoogle(mercator.Tile{TX: req.X, TY: req.Y, Zoom: req.Zoom})
	default:
		google, err = mercator.NewGoogle(req.X, req.Y, req.Zoom)
	}
	if err != nil {
		return errorResult(err)
	}

	summary, err := tile.Describe(m, google)
	if err != nil {
		return errorResult(err)
	}
	return encode(summary)
}

// latLngToTile is called from JavaScript with a JSON LatLngRequest
func latLngToTile(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "missing arguments"}
	}

	var req LatLngRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return errorResult(fmt.Errorf("failed to parse request: %w", err))
	}

	m := mercator.Default()
	google, err := m.LatLngToGoogle(mercator.LatLng{Lat: req.Lat, Lng: req.Lng, Zoom: mercator.ZoomOf(req.Zoom)})
	if err != nil {
		return errorResult(err)
	}
	summary, err := tile.Describe(m, google)
	if err != nil {
		return errorResult(err)
	}
	return encode(summary)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("mercatorDescribeTile", js.FuncOf(describeTile))
	js.Global().Set("mercatorLatLngToTile", js.FuncOf(latLngToTile))

	fmt.Println("globalmercator WASM module loaded")
	<-c
}
