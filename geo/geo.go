package geo

import (
	"math"
	"sort"
)

const earthRadiusKM = 6371.0

// Locatable is anything carrying coordinates. The ok return is false when
// the record has no usable coordinates; such records are excluded from
// proximity results instead of defaulting to (0,0).
type Locatable interface {
	Coordinates() (lat, lng float64, ok bool)
}

// ProximityResult wraps a record with its computed great-circle distance
// from the query origin.
type ProximityResult[T Locatable] struct {
	Record     T       `json:"record"`
	DistanceKM float64 `json:"distanceKm"`
}

// HaversineKM calculates the great-circle distance in kilometers between
// two points given in decimal degrees.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	radLat1 := lat1 * math.Pi / 180
	radLat2 := lat2 * math.Pi / 180

	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

// Nearby returns the records within radiusKM of the origin (boundary
// inclusive), each annotated with its distance, ordered ascending by
// distance. The sort is stable so ties keep input order. Results are
// computed fresh on every call.
func Nearby[T Locatable](originLat, originLng, radiusKM float64, records []T) []ProximityResult[T] {
	results := make([]ProximityResult[T], 0, len(records))
	for _, rec := range records {
		lat, lng, ok := rec.Coordinates()
		if !ok {
			continue
		}
		dist := HaversineKM(originLat, originLng, lat, lng)
		if dist <= radiusKM {
			results = append(results, ProximityResult[T]{Record: rec, DistanceKM: dist})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKM < results[j].DistanceKM
	})
	return results
}
