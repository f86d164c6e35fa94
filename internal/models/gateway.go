package models

type GatewayStatus string

const (
	GatewayStatusPending   GatewayStatus = "pending"
	GatewayStatusCompleted GatewayStatus = "completed"
	GatewayStatusFailed    GatewayStatus = "failed"
	GatewayStatusConflict  GatewayStatus = "conflict"
)

// InitiateRequest asks the gateway to push a payment prompt to the payer.
type InitiateRequest struct {
	BookingID string
	Phone     string
	Amount    int64
}

type InitiateResponse struct {
	CorrelationID     string
	MerchantRequestID string
	CustomerMessage   string
}

// StatusResponse is the persisted payment status the backend reports for a
// correlation id. Conflict is set when the booking slot was claimed by
// another attempt, independently of Status.
type StatusResponse struct {
	Status        GatewayStatus
	Conflict      bool
	Details       string
	ResultCode    string
	ResultDesc    string
	ReceiptNumber string
}
