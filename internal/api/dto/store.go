package dto

import "time"

type StoreResponse struct {
	StoreID      string     `json:"store_id"`
	Name         string     `json:"name"`
	DisplayName  string     `json:"display_name,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Email        string     `json:"email,omitempty"`
	Description  string     `json:"description,omitempty"`
	AddressLine1 string     `json:"address_line1,omitempty"`
	City         string     `json:"city,omitempty"`
	Region       string     `json:"region,omitempty"`
	Country      string     `json:"country,omitempty"`
	Address      string     `json:"address,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

type ListStoresResponse struct {
	Stores []StoreResponse `json:"stores"`
}
