package airport

// Response is the SITA airport API answer for a nearest-airports lookup,
// ordered by distance from the requested point.
type Response struct {
	ProcessingDurationMillis int       `json:"processingDurationMillis"`
	AuthorisedAPI            bool      `json:"authorisedAPI"`
	Success                  bool      `json:"success"`
	ErrorMessage             *string   `json:"errorMessage"`
	Airports                 []Airport `json:"airports"`
}

type Airport struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Timezone    string  `json:"timezone"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}
