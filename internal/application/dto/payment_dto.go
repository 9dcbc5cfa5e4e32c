package dto

import "time"

// CreatePaymentRequest abono a una venta existente.
type CreatePaymentRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Method string `json:"method" validate:"required"`
	Note   string `json:"note"`
}

// PaymentResponse salida de un abono.
type PaymentResponse struct {
	ID        string    `json:"id"`
	SaleID    string    `json:"saleId"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentListResponse abonos de una venta.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
}
