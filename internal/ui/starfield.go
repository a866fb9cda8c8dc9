package ui

import (
	"math"

	"github.com/litescript/ls-galaxy/internal/orbit"
)

// star is a background star on the celestial sphere.
type star struct {
	raDeg  float64
	decDeg float64
	mag    float64 // Lower is brighter
}

// brightStars are J2000 positions of the brightest stars. They sit at
// infinity, so only the camera's orientation moves them.
var brightStars = []star{
	{101.287, -16.716, -1.46}, // Sirius
	{95.988, -52.696, -0.74},  // Canopus
	{213.915, 19.182, -0.05},  // Arcturus
	{279.235, 38.784, 0.03},   // Vega
	{79.172, 45.998, 0.08},    // Capella
	{78.634, -8.202, 0.13},    // Rigel
	{114.826, 5.225, 0.34},    // Procyon
	{24.429, -57.237, 0.46},   // Achernar
	{88.793, 7.407, 0.50},     // Betelgeuse
	{210.956, -60.373, 0.61},  // Hadar
	{297.696, 8.868, 0.76},    // Altair
	{186.650, -63.099, 0.76},  // Acrux
	{68.980, 16.509, 0.85},    // Aldebaran
	{247.352, -26.432, 0.96},  // Antares
	{201.298, -11.161, 0.97},  // Spica
	{116.329, 28.026, 1.14},   // Pollux
	{344.413, -29.622, 1.16},  // Fomalhaut
	{310.358, 45.280, 1.25},   // Deneb
	{152.093, 11.967, 1.35},   // Regulus
	{104.656, -28.972, 1.50},  // Adhara
	{113.650, 31.889, 1.58},   // Castor
	{81.283, 6.350, 1.64},     // Bellatrix
	{84.053, -1.202, 1.69},    // Alnilam
	{85.190, -1.943, 1.77},    // Alnitak
	{193.507, 55.960, 1.77},   // Alioth
	{165.932, 61.751, 1.79},   // Dubhe
	{51.081, 49.861, 1.79},    // Mirfak
	{206.885, 49.313, 1.86},   // Alkaid
	{37.954, 89.264, 2.02},    // Polaris
	{141.897, -8.659, 2.00},   // Alphard
	{31.793, 23.462, 2.00},    // Hamal
	{2.097, 29.091, 2.06},     // Alpheratz
	{17.433, 35.621, 2.05},    // Mirach
	{83.002, -0.299, 2.23},    // Mintaka
	{10.897, 56.537, 2.24},    // Schedar
	{2.295, 59.150, 2.28},     // Caph
	{326.046, 9.875, 2.39},    // Enif
	{233.672, 26.715, 2.23},   // Alphecca
	{269.152, 51.489, 2.23},   // Eltanin
	{345.944, 28.083, 2.42},   // Scheat
	{177.265, 14.572, 2.14},   // Denebola
	{263.734, 12.560, 2.07},   // Rasalhague
	{222.677, 74.156, 2.08},   // Kochab
	{305.557, 40.257, 2.23},   // Sadr
	{346.190, 15.205, 2.49},   // Markab
}

// starDirection converts right ascension and declination to a unit vector
// in scene space, Y up.
func starDirection(raDeg, decDeg float64) orbit.Vec3 {
	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180
	return orbit.Vec3{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Sin(dec),
		Z: math.Cos(dec) * math.Sin(ra),
	}
}

// starGlyph returns a glyph for a star's magnitude.
func starGlyph(mag float64) rune {
	switch {
	case mag <= 0.5:
		return '✦'
	case mag <= 1.0:
		return '∗'
	case mag <= 1.8:
		return '·'
	default:
		return '˙'
	}
}

func drawStars(c *canvas, p projector) {
	for _, s := range brightStars {
		x, y, ok := p.direction(starDirection(s.raDeg, s.decDeg))
		if !ok {
			continue
		}
		color := starDim
		if s.mag <= 1.0 {
			color = starBright
		}
		c.setIfEmpty(x, y, starGlyph(s.mag), color, false)
	}
}
