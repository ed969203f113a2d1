// Package models provides domain models for the chart service.
package models

import (
	"time"
)

// Body represents a tracked celestial body.
type Body string

const (
	Sun       Body = "Sun"
	Moon      Body = "Moon"
	Mercury   Body = "Mercury"
	Venus     Body = "Venus"
	Mars      Body = "Mars"
	Jupiter   Body = "Jupiter"
	Saturn    Body = "Saturn"
	Uranus    Body = "Uranus"
	Neptune   Body = "Neptune"
	Pluto     Body = "Pluto"
	NorthNode Body = "North Node"
)

// Bodies lists all tracked bodies in stable enumeration order. Pair
// enumeration in the aspect engine and tie order in the alignment detector
// both depend on this order.
var Bodies = []Body{
	Sun, Moon, Mercury, Venus, Mars,
	Jupiter, Saturn, Uranus, Neptune, Pluto, NorthNode,
}

// Signs lists the zodiac signs, 30 degrees each, starting at 0 Aries.
var Signs = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Fidelity marks how a chart was computed.
type Fidelity string

const (
	// FidelityFull means positions and houses came from the primary
	// ephemeris.
	FidelityFull Fidelity = "FULL"
	// FidelityDegraded means the approximate fallback produced the chart:
	// heliocentric longitudes, every body in house 1, asc/mc derived from
	// the Sun alone.
	FidelityDegraded Fidelity = "DEGRADED"
)

// Subject is the immutable chart input: a civil timestamp already resolved
// to the correct hour, plus birth coordinates. No timezone conversion is
// applied; the instant is handed to the ephemeris as-is.
type Subject struct {
	Birth     time.Time
	Latitude  float64 // -90..90
	Longitude float64 // -180..180
}

// PlanetRecord is one tracked body's placement in a chart.
type PlanetRecord struct {
	Name      Body    `json:"name"`
	Longitude float64 `json:"lon"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"deg"`
	House     int     `json:"house"`
}

// AspectType names one of the six recognized aspects.
type AspectType string

const (
	Conjunction AspectType = "Conjunction"
	Sextile     AspectType = "Sextile"
	Square      AspectType = "Square"
	Trine       AspectType = "Trine"
	Opposition  AspectType = "Opposition"
	Quincunx    AspectType = "Quincunx"
)

// Aspect is a matched angular relationship between two bodies. The pair is
// unordered: (Body1, Body2) and (Body2, Body1) are the same aspect. Orb is
// signed: positive when the minimal separation is below 180, negative
// otherwise. The sign carries no astrological meaning; display code takes
// the absolute value.
type Aspect struct {
	Body1 Body       `json:"object1"`
	Body2 Body       `json:"object2"`
	Type  AspectType `json:"type"`
	Orb   float64    `json:"orb"`
	Angle float64    `json:"angle"`
}

// ReferenceNode is one angle of the fixed Flower-of-Life grid. Slot indexes
// the 432-division circle the angle is snapped onto.
type ReferenceNode struct {
	Angle float64 `json:"angle"`
	Slot  int     `json:"slot"`
}

// AlignmentHit records a body found within tolerance of a reference node.
// A body may hit several nodes; a hit list is globally sorted by Distance.
type AlignmentHit struct {
	Body      Body    `json:"name"`
	Longitude float64 `json:"lon"`
	Node      float64 `json:"node"`
	Slot      int     `json:"node_multiple"`
	Distance  float64 `json:"orb"`
	Sign      string  `json:"sign"`
	House     int     `json:"house"`
}

// ChartRecord aggregates one computed chart. It is read-only after assembly
// except for Location, a caller-supplied label attached post hoc.
type ChartRecord struct {
	Birth     string                 `json:"birth"`
	Location  string                 `json:"location,omitempty"`
	Latitude  float64                `json:"lat"`
	Longitude float64                `json:"lon"`
	Ascendant string                 `json:"asc"`
	Midheaven string                 `json:"mc"`
	Planets   map[Body]*PlanetRecord `json:"planets"`
	Cusps     [12]float64            `json:"cusps"`
	Aspects   []Aspect               `json:"aspects"`
	Fidelity  Fidelity               `json:"fidelity"`
}

// BirthTimeLayout is the canonical formatting of a chart's birth instant.
const BirthTimeLayout = "2006-01-02 15:04"

// FormatBirth renders a subject's instant in the canonical layout.
func (s Subject) FormatBirth() string {
	return s.Birth.Format(BirthTimeLayout)
}
