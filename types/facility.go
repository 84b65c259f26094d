package types

// FacilityData is a service facility (hospital, fire station, shelter,
// recycling center...) stored in Firestore and served by the nearby lookup.
type FacilityData struct {
	ID      string   `firestore:"-" json:"id"`
	Name    string   `firestore:"name" json:"name"`
	Type    string   `firestore:"type" json:"type"`
	Lat     float64  `firestore:"lat" json:"lat"`
	Lng     float64  `firestore:"lng" json:"lng"`
	Address string   `firestore:"address,omitempty" json:"address,omitempty"`
	City    string   `firestore:"city,omitempty" json:"city,omitempty"`
	Phone   string   `firestore:"phone,omitempty" json:"phone,omitempty"`
	Accepts []string `firestore:"accepts,omitempty" json:"accepts,omitempty"`
	Open24h bool     `firestore:"open24h" json:"open24h"`
}

// Coordinates implements geo.Locatable. A facility row missing both
// coordinates is treated as not locatable rather than sitting at (0,0).
func (f FacilityData) Coordinates() (float64, float64, bool) {
	if f.Lat == 0 && f.Lng == 0 {
		return 0, 0, false
	}
	return f.Lat, f.Lng, true
}
