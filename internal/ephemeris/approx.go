package ephemeris

import (
	"math"
	"time"

	"soultether/internal/models"
)

// ApproxSource is the degraded fallback used when the VSOP87 data cannot be
// loaded. Planet positions come from J2000 mean orbital elements (planar
// Kepler solve, heliocentric longitudes), the Moon from its mean-longitude
// polynomial, and the North Node is pinned to 0 Aries. House data collapses
// to twelve zero cusps with the ascendant on the Sun and the midheaven 90
// degrees past it, so every body lands in house 1.
type ApproxSource struct{}

// NewApproxSource creates the approximate fallback source.
func NewApproxSource() *ApproxSource {
	return &ApproxSource{}
}

// Fidelity reports degraded fidelity.
func (s *ApproxSource) Fidelity() models.Fidelity {
	return models.FidelityDegraded
}

// meanElements holds planar J2000 mean orbital elements with per-century
// rates: semi-major axis is not needed for longitude, so only e, L and the
// longitude of perihelion appear.
type meanElements struct {
	e, eDot   float64
	l, lDot   float64
	pi, piDot float64
}

var planetElements = map[models.Body]meanElements{
	models.Mercury: {0.20563593, 0.00001906, 252.25032350, 149472.67411175, 77.45779628, 0.16047689},
	models.Venus:   {0.00677672, -0.00004107, 181.97909950, 58517.81538729, 131.60246718, 0.00268329},
	models.Mars:    {0.09339410, 0.00007882, -4.55343205, 19140.30268499, -23.94362959, 0.44441088},
	models.Jupiter: {0.04838624, -0.00013253, 34.39644051, 3034.74612775, 14.72847983, 0.21252668},
	models.Saturn:  {0.05386179, -0.00050991, 49.95424423, 1222.49362201, 92.59887831, -0.41897216},
	models.Uranus:  {0.04725744, -0.00004397, 313.23810451, 428.48202785, 170.95427630, 0.40805281},
	models.Neptune: {0.00859048, 0.00005105, -55.12002969, 218.45945325, 44.96476227, -0.32241464},
	models.Pluto:   {0.24880766, 0.00006465, 238.92903833, 145.20780515, 224.06891629, -0.04062942},
}

var earthElements = meanElements{0.01671123, -0.00004392, 100.46457166, 35999.37244981, 102.93768193, 0.32327364}

// Positions returns approximate longitudes for all tracked bodies.
func (s *ApproxSource) Positions(t time.Time) (map[models.Body]float64, error) {
	T := julianCenturies(t)

	out := make(map[models.Body]float64, len(models.Bodies))
	out[models.Sun] = norm360(heliocentricLongitude(earthElements, T) + 180)
	out[models.Moon] = meanMoonLongitude(T)
	for body, el := range planetElements {
		out[body] = heliocentricLongitude(el, T)
	}
	out[models.NorthNode] = 0

	return out, nil
}

// Houses returns the degraded house data: zero cusps and Sun-derived
// angles.
func (s *ApproxSource) Houses(t time.Time, lat, lon float64) (*HouseData, error) {
	T := julianCenturies(t)
	sun := norm360(heliocentricLongitude(earthElements, T) + 180)
	return &HouseData{
		Ascendant: sun,
		Midheaven: norm360(sun + 90),
	}, nil
}

// heliocentricLongitude runs the planar Kepler solve for one body.
func heliocentricLongitude(el meanElements, T float64) float64 {
	e := el.e + el.eDot*T
	L := el.l + el.lDot*T
	peri := el.pi + el.piDot*T

	M := norm360(L-peri) * degRad

	// Kepler's equation by fixed-point iteration; e is small enough for
	// every tracked body that this converges in a handful of steps.
	E := M
	for i := 0; i < 20; i++ {
		next := M + e*math.Sin(E)
		if math.Abs(next-E) < 1e-10 {
			E = next
			break
		}
		E = next
	}

	nu := 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
	return norm360(nu/degRad + peri)
}

// meanMoonLongitude is the Moon's mean geocentric longitude of date.
func meanMoonLongitude(T float64) float64 {
	return norm360(218.3164477 + 481267.88123421*T - 0.0015786*T*T)
}

// julianCenturies converts a civil instant to Julian centuries from J2000.
func julianCenturies(t time.Time) float64 {
	const j2000 = 2451545.0
	jd := 2440587.5 + float64(t.Unix())/86400
	return (jd - j2000) / 36525
}
