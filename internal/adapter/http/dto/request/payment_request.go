package request

// ConfirmPaymentRequest carries the checkout callback fields the
// provider hands to the client after a payment attempt. All three are
// needed to verify the signature server-side.
type ConfirmPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}
