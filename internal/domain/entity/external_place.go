package entity

// ExternalCategory is the category vocabulary of the nearby-places providers.
type ExternalCategory string

const (
	ExternalHotel      ExternalCategory = "HOTEL"
	ExternalTransport  ExternalCategory = "TRANSPORT"
	ExternalAttraction ExternalCategory = "ATTRACTION"
	ExternalRestaurant ExternalCategory = "RESTAURANT"
	ExternalHospital   ExternalCategory = "HOSPITAL"
	ExternalTemple     ExternalCategory = "TEMPLE"
)

const (
	SourceOpenStreetMap = "OpenStreetMap"
	SourceGooglePlaces  = "Google Places"

	// Fallbacks used when a provider returns incomplete records
	UnnamedPlace  = "Unnamed Place"
	NearbyAddress = "Nearby Area"
)

// ExternalPlace is a point of interest returned by an external provider.
type ExternalPlace struct {
	Name     string           `json:"name"`
	Lat      float64          `json:"lat"`
	Lng      float64          `json:"lng"`
	Category ExternalCategory `json:"category"`
	Address  string           `json:"address"`
	Rating   *float64         `json:"rating"`
	Source   string           `json:"source"`
}

// NearbyPlacesResult is either a list of places or a failure marker.
// A provider failure never surfaces as a Go error to the caller.
type NearbyPlacesResult struct {
	Places []ExternalPlace
	Error  string
}

// Failed reports whether the lookup produced an error marker.
func (r *NearbyPlacesResult) Failed() bool {
	return r.Error != ""
}
