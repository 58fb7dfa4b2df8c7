package domain

import (
	"math"
	"testing"
)

func TestProjectCenterOfMap(t *testing.T) {
	p := Project(0, 0)

	if p.X != 50 || p.Y != 50 {
		t.Fatalf("Project(0, 0) = (%v, %v), want (50, 50)", p.X, p.Y)
	}
}

func TestProjectClampsExtremes(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		x, y     float64
	}{
		{"north pole", 90, 0, 50, 3},
		{"south pole antimeridian", -90, 180, 97, 97},
		{"west edge", 0, -180, 3, 50},
		{"beyond range", 200, -400, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(tt.lat, tt.lon)
			if p.X != tt.x || p.Y != tt.y {
				t.Fatalf("Project(%v, %v) = (%v, %v), want (%v, %v)",
					tt.lat, tt.lon, p.X, p.Y, tt.x, tt.y)
			}
		})
	}
}

func TestProjectStaysOnCanvas(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lon := -180.0; lon <= 180; lon += 12.5 {
			p := Project(lat, lon)
			if p.X < 3 || p.X > 97 || p.Y < 3 || p.Y > 97 {
				t.Fatalf("Project(%v, %v) = (%v, %v) escapes canvas", lat, lon, p.X, p.Y)
			}
		}
	}
}

func TestCoordinatesValid(t *testing.T) {
	valid := []Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: -90, Lon: 180},
		{Lat: 51.5072, Lon: -0.1276},
	}
	for _, c := range valid {
		if !c.Valid() {
			t.Fatalf("%+v should be valid", c)
		}
	}

	invalid := []Coordinates{
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.Inf(1)},
		{Lat: 90.01, Lon: 0},
		{Lat: 0, Lon: -180.5},
	}
	for _, c := range invalid {
		if c.Valid() {
			t.Fatalf("%+v should be invalid", c)
		}
	}
}
