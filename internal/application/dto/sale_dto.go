package dto

import "time"

// SaleItemRequest línea de venta. El precio lo fija el servidor desde el catálogo.
type SaleItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int64  `json:"qty" validate:"required,gt=0"`
}

// CreateSaleRequest entrada para crear una venta.
// AmountPaid > 0 registra el pago inicial en la misma transacción.
type CreateSaleRequest struct {
	CustomerID string            `json:"customerId"`
	Items      []SaleItemRequest `json:"items" validate:"required,min=1"`
	Discount   int64             `json:"discount"`
	AmountPaid int64             `json:"amountPaid"`
	Method     string            `json:"method"`
	Note       string            `json:"note"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Qty         int64  `json:"qty"`
	UnitPrice   int64  `json:"unitPrice"`
	LineTotal   int64  `json:"lineTotal"`
}

// SaleResponse salida de una venta con sus líneas (y pagos en el detalle).
type SaleResponse struct {
	ID           string             `json:"id"`
	InvoiceNo    string             `json:"invoiceNo"`
	CustomerID   string             `json:"customerId,omitempty"`
	CustomerName string             `json:"customerName,omitempty"`
	Date         time.Time          `json:"date"`
	SubTotal     int64              `json:"subTotal"`
	Discount     int64              `json:"discount"`
	GrandTotal   int64              `json:"grandTotal"`
	AmountPaid   int64              `json:"amountPaid"`
	Due          int64              `json:"due"`
	Status       string             `json:"status"`
	Items        []SaleItemResponse `json:"items,omitempty"`
	Payments     []PaymentResponse  `json:"payments,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
