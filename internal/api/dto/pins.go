package dto

type PinResponse struct {
	StoreID string  `json:"store_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

type ClusterResponse struct {
	X     float64       `json:"x"`
	Y     float64       `json:"y"`
	Count int           `json:"count"`
	Pins  []PinResponse `json:"pins"`
}

type MapPinsResponse struct {
	Clusters []ClusterResponse `json:"clusters"`
}
