package chart

// LocateHouse determines which of the twelve houses contains a longitude.
// House i+1 spans the half-open interval from cusps[i] to cusps[(i+1)%12];
// an interval whose end sits numerically at or below its start wraps past
// 0/360 and uses the disjunctive test instead. Scanning is in cusp order
// and the first match wins. A longitude no interval claims (possible only
// through floating point edge cases on malformed cusps) defaults to house 1.
func LocateHouse(lon float64, cusps [12]float64) int {
	lon = wrap360(lon)
	for i := 0; i < 12; i++ {
		start := wrap360(cusps[i])
		end := wrap360(cusps[(i+1)%12])
		if start < end {
			if start <= lon && lon < end {
				return i + 1
			}
		} else {
			if lon >= start || lon < end {
				return i + 1
			}
		}
	}
	return 1
}
