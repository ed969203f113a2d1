package ephemeris

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"
	"github.com/soniakeys/meeus/v3/sidereal"

	"soultether/internal/errors"
	"soultether/internal/models"
)

// VSOPSource is the primary ephemeris: geocentric tropical longitudes from
// the VSOP87 planetary theory, with Placidus houses.
type VSOPSource struct {
	planets map[models.Body]*planetposition.V87Planet
	earth   *planetposition.V87Planet
}

var vsopIndex = map[models.Body]int{
	models.Mercury: planetposition.Mercury,
	models.Venus:   planetposition.Venus,
	models.Mars:    planetposition.Mars,
	models.Jupiter: planetposition.Jupiter,
	models.Saturn:  planetposition.Saturn,
	models.Uranus:  planetposition.Uranus,
	models.Neptune: planetposition.Neptune,
}

// NewVSOPSource loads the VSOP87 data files from dataPath. An empty path
// defers to the VSOP87 environment variable. Any load failure is returned
// wrapped in ErrEphemerisUnavailable so callers can fall back.
func NewVSOPSource(dataPath string) (*VSOPSource, error) {
	load := func(i int) (*planetposition.V87Planet, error) {
		if dataPath != "" {
			return planetposition.LoadPlanetPath(i, dataPath)
		}
		return planetposition.LoadPlanet(i)
	}

	earth, err := load(planetposition.Earth)
	if err != nil {
		return nil, errors.Wrap(errors.ErrEphemerisUnavailable, err.Error())
	}

	s := &VSOPSource{
		planets: make(map[models.Body]*planetposition.V87Planet, len(vsopIndex)),
		earth:   earth,
	}
	for body, i := range vsopIndex {
		p, err := load(i)
		if err != nil {
			return nil, errors.Wrap(errors.ErrEphemerisUnavailable, err.Error())
		}
		s.planets[body] = p
	}
	return s, nil
}

// Fidelity reports full fidelity.
func (s *VSOPSource) Fidelity() models.Fidelity {
	return models.FidelityFull
}

// Positions returns geocentric ecliptic longitudes of date for all tracked
// bodies.
func (s *VSOPSource) Positions(t time.Time) (map[models.Body]float64, error) {
	jde := julian.TimeToJD(t)

	// Earth's heliocentric position anchors every geocentric conversion.
	// Ecliptic longitude only needs the in-plane components.
	l0, b0, r0 := s.earth.Position(jde)
	ex, ey, _ := rectangular(l0.Rad(), b0.Rad(), r0)

	out := make(map[models.Body]float64, len(models.Bodies))

	// The Sun sits opposite Earth's heliocentric direction.
	out[models.Sun] = norm360(l0.Deg() + 180)

	lm, _, _ := moonposition.Position(jde)
	out[models.Moon] = norm360(lm.Deg())

	for body, p := range s.planets {
		l, b, r := p.Position(jde)
		px, py, _ := rectangular(l.Rad(), b.Rad(), r)
		out[body] = norm360(math.Atan2(py-ey, px-ex) * 180 / math.Pi)
	}

	lp, bp, rp := pluto.Heliocentric(jde)
	px, py, _ := rectangular(lp.Rad(), bp.Rad(), rp)
	out[models.Pluto] = norm360(math.Atan2(py-ey, px-ex) * 180 / math.Pi)

	out[models.NorthNode] = meanLunarNode(jde)

	return out, nil
}

// Houses computes Placidus cusps plus ascendant and midheaven from local
// sidereal time, the obliquity of the ecliptic and the geographic latitude.
func (s *VSOPSource) Houses(t time.Time, lat, lon float64) (*HouseData, error) {
	jd := julian.TimeToJD(t)

	// Greenwich mean sidereal time in degrees; east longitudes positive.
	gst := sidereal.Mean(jd).Sec() / 240
	ramc := norm360(gst + lon)

	obliquity := nutation.MeanObliquity(jd).Deg()

	return placidusHouses(ramc, lat, obliquity)
}

// rectangular converts heliocentric spherical coordinates to rectangular.
func rectangular(l, b, r float64) (x, y, z float64) {
	cb := math.Cos(b)
	return r * cb * math.Cos(l), r * cb * math.Sin(l), r * math.Sin(b)
}

// meanLunarNode returns the mean ascending lunar node longitude of date.
func meanLunarNode(jde float64) float64 {
	T := base.J2000Century(jde)
	om := 125.0445479 - 1934.1362891*T + 0.0020754*T*T +
		T*T*T/467441 - T*T*T*T/60616000
	return norm360(om)
}

// norm360 reduces an angle in degrees to [0, 360).
func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
