package request_models

import "encoding/json"

type CreateTripRequest struct {
	CreatorID   string `json:"creatorId" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
	PriceMinor  int64  `json:"priceMinor"`
	Currency    string `json:"currency"`
	StartDate   *int64 `json:"startDate"`
	EndDate     *int64 `json:"endDate"`

	Days  json.RawMessage `json:"days"`
	Media json.RawMessage `json:"media"`
}

type UpdateTripRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	ImageURL    *string `json:"imageUrl"`
	PriceMinor  *int64  `json:"priceMinor"`
	Currency    *string `json:"currency"`
	Status      *string `json:"status"`
	StartDate   *int64  `json:"startDate"`
	EndDate     *int64  `json:"endDate"`

	Days  json.RawMessage `json:"days"`
	Media json.RawMessage `json:"media"`
}

type CreateGoToRequest struct {
	CreatorID   string `json:"creatorId" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	PriceMinor  int64  `json:"priceMinor"`
	Currency    string `json:"currency"`

	Spots json.RawMessage `json:"spots"`
	Media json.RawMessage `json:"media"`
}

type UpdateGoToRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	PriceMinor  *int64  `json:"priceMinor"`
	Currency    *string `json:"currency"`
	Status      *string `json:"status"`

	Spots json.RawMessage `json:"spots"`
	Media json.RawMessage `json:"media"`
}
