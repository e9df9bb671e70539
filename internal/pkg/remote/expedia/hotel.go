package expedia

import "encoding/json"

// Response is the Expedia hotel search answer. HotelCount arrives as a
// string, so numeric fields are decoded as json.Number.
type Response struct {
	HotelCount    json.Number   `json:"HotelCount"`
	HotelInfoList HotelInfoList `json:"HotelInfoList"`
}

type HotelInfoList struct {
	HotelInfo []HotelInfo `json:"HotelInfo"`
}

type HotelInfo struct {
	HotelID      string `json:"HotelID"`
	Name         string `json:"Name"`
	ThumbnailURL string `json:"ThumbnailUrl"`
	DetailsURL   string `json:"DetailsUrl"`
	Price        Price  `json:"Price"`
}

type Price struct {
	TotalRate Rate `json:"TotalRate"`
}

type Rate struct {
	Value    json.Number `json:"Value"`
	Currency string      `json:"Currency"`
}
