package ephemeris

import (
	"math"

	"soultether/internal/errors"
)

const degRad = math.Pi / 180

// placidusHouses computes the twelve Placidus cusps from the right
// ascension of the midheaven, the geographic latitude and the obliquity of
// the ecliptic, all in degrees. The intermediate cusps divide each
// quadrant's semi-arc by time, which requires the fixed-point iteration
// below; the angular cusps follow directly from the horizon and meridian.
func placidusHouses(ramc, lat, obliquity float64) (*HouseData, error) {
	if math.Abs(lat) >= 90 {
		return nil, errors.NewChartError("houses", "latitude out of range", errors.ErrInvalidCoordinates)
	}

	mc := meridianLongitude(ramc, obliquity)
	asc := ascendantLongitude(ramc, lat, obliquity)

	// Semi-arc fractions: cusps 11/12 sit a third and two thirds of the
	// diurnal semi-arc past the meridian, cusps 2/3 mirror them through
	// the nocturnal arc.
	c11, err := placidusCusp(ramc, lat, obliquity, 30, 1.0/3)
	if err != nil {
		return nil, err
	}
	c12, err := placidusCusp(ramc, lat, obliquity, 60, 2.0/3)
	if err != nil {
		return nil, err
	}
	c2, err := placidusCusp(ramc, lat, obliquity, 120, 2.0/3)
	if err != nil {
		return nil, err
	}
	c3, err := placidusCusp(ramc, lat, obliquity, 150, 1.0/3)
	if err != nil {
		return nil, err
	}

	h := &HouseData{Ascendant: asc, Midheaven: mc}
	h.Cusps[0] = asc
	h.Cusps[1] = c2
	h.Cusps[2] = c3
	h.Cusps[3] = norm360(mc + 180)
	h.Cusps[4] = norm360(c11 + 180)
	h.Cusps[5] = norm360(c12 + 180)
	h.Cusps[6] = norm360(asc + 180)
	h.Cusps[7] = norm360(c2 + 180)
	h.Cusps[8] = norm360(c3 + 180)
	h.Cusps[9] = mc
	h.Cusps[10] = c11
	h.Cusps[11] = c12
	return h, nil
}

// meridianLongitude converts the meridian's right ascension to an ecliptic
// longitude.
func meridianLongitude(ramc, obliquity float64) float64 {
	th := ramc * degRad
	eps := obliquity * degRad
	return norm360(math.Atan2(math.Sin(th), math.Cos(th)*math.Cos(eps)) / degRad)
}

// ascendantLongitude returns the ecliptic longitude rising on the eastern
// horizon.
func ascendantLongitude(ramc, lat, obliquity float64) float64 {
	th := ramc * degRad
	eps := obliquity * degRad
	phi := lat * degRad
	y := math.Cos(th)
	x := -(math.Sin(th)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps))
	return norm360(math.Atan2(y, x) / degRad)
}

// placidusCusp iterates one intermediate cusp. offset is the cusp's initial
// displacement from the RAMC in right ascension; frac the fraction of the
// ascensional difference the semi-arc division contributes. Within the
// polar circles the ascensional difference is undefined for part of the
// ecliptic and the iteration reports a typed failure instead of diverging.
func placidusCusp(ramc, lat, obliquity, offset, frac float64) (float64, error) {
	eps := obliquity * degRad
	phi := lat * degRad

	ra := ramc + offset
	for i := 0; i < 30; i++ {
		lam := math.Atan2(math.Sin(ra*degRad), math.Cos(ra*degRad)*math.Cos(eps))
		dec := math.Asin(math.Sin(eps) * math.Sin(lam))
		x := math.Tan(phi) * math.Tan(dec)
		if x < -1 || x > 1 {
			return 0, errors.NewChartError("houses",
				"Placidus cusps undefined at this latitude", errors.ErrInvalidCoordinates)
		}
		ad := math.Asin(x) / degRad
		next := ramc + offset + frac*ad
		if math.Abs(next-ra) < 1e-9 {
			ra = next
			break
		}
		ra = next
	}

	lam := math.Atan2(math.Sin(ra*degRad), math.Cos(ra*degRad)*math.Cos(eps)) / degRad
	return norm360(lam), nil
}
