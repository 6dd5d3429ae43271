package request

// CollectRequest is presented at the counter when a job is handed over.
type CollectRequest struct {
	PickupCode string `json:"pickup_code" binding:"required"`
}
