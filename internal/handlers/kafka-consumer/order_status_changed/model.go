package order_status_changed

type statusChangedEvent struct {
	OrderID   int64  `json:"order_id"`
	Status    string `json:"status"`
	CourierID *int64 `json:"courier_id,omitempty"`
	Actor     string `json:"actor,omitempty"`
}
