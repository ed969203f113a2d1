package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		lon       float64
		wantSign  int
		wantDeg   float64
		wantLabel string
	}{
		{"zero aries", 0, 0, 0, "Aries"},
		{"mid taurus", 45, 1, 15, "Taurus"},
		{"sign boundary belongs to next sign", 30, 1, 0, "Taurus"},
		{"last degree of pisces", 359.5, 11, 29.5, "Pisces"},
		{"wraps above 360", 405, 1, 15, "Taurus"},
		{"negative wraps backward", -15, 11, 15, "Pisces"},
		{"full negative turn", -360, 0, 0, "Aries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sign, deg := Normalize(tt.lon)
			assert.Equal(t, tt.wantSign, sign)
			assert.InDelta(t, tt.wantDeg, deg, 1e-9)
			assert.Equal(t, tt.wantLabel, SignName(tt.lon))
		})
	}
}

func TestSeparation(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"identical", 100, 100, 0},
		{"simple difference", 10, 70, 60},
		{"order independent", 70, 10, 60},
		{"long way around collapses", 350, 10, 20},
		{"antipodal", 0, 180, 180},
		{"just past antipodal", 0, 181, 179},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Separation(tt.a, tt.b), 1e-9)
		})
	}
}
