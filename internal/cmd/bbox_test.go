package cmd

import (
	"testing"

	"github.com/MeKo-Tech/globalmercator/mercator"
)

func TestParseBBox(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    mercator.BBox
		wantErr bool
	}{
		{
			name:  "valid bbox",
			input: "9.7,52.3,9.9,52.4",
			want:  mercator.BBox{9.7, 52.3, 9.9, 52.4},
		},
		{
			name:  "valid bbox with spaces",
			input: "9.7, 52.3, 9.9, 52.4",
			want:  mercator.BBox{9.7, 52.3, 9.9, 52.4},
		},
		{
			name:  "negative coordinates",
			input: "-122.5,37.7,-122.3,37.9",
			want:  mercator.BBox{-122.5, 37.7, -122.3, 37.9},
		},
		{
			name:  "corners are not reordered",
			input: "10.0,52.5,9.9,52.4",
			want:  mercator.BBox{10.0, 52.5, 9.9, 52.4},
		},
		{
			name:    "too few values",
			input:   "9.7,52.3,9.9",
			wantErr: true,
		},
		{
			name:    "too many values",
			input:   "9.7,52.3,9.9,52.4,10.0",
			wantErr: true,
		},
		{
			name:    "invalid number",
			input:   "abc,52.3,9.9,52.4",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBBox(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseBBox(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseBBox(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("parseBBox(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
