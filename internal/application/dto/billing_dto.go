package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest línea de factura de venta o compra.
type LineItemRequest struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CreateInvoiceRequest alta de factura de venta. ID vacío = asignar N### siguiente.
type CreateInvoiceRequest struct {
	ID           string            `json:"id"`
	Date         time.Time         `json:"date"`
	CustomerCode string            `json:"customer_code"`
	CustomerName string            `json:"customer_name"`
	Items        []LineItemRequest `json:"items"`
}

// UpdateInvoiceRequest reemplazo de una factura existente (mismo id).
type UpdateInvoiceRequest struct {
	Date         time.Time         `json:"date"`
	CustomerCode string            `json:"customer_code"`
	CustomerName string            `json:"customer_name"`
	Items        []LineItemRequest `json:"items"`
}

// CreatePurchaseRequest alta de factura de compra. ID vacío = asignar R### siguiente.
type CreatePurchaseRequest struct {
	ID           string            `json:"id"`
	Date         time.Time         `json:"date"`
	SupplierCode string            `json:"supplier_code"`
	SupplierName string            `json:"supplier_name"`
	Items        []LineItemRequest `json:"items"`
}

// UpdatePurchaseRequest reemplazo de una compra existente (mismo id).
type UpdatePurchaseRequest struct {
	Date         time.Time         `json:"date"`
	SupplierCode string            `json:"supplier_code"`
	SupplierName string            `json:"supplier_name"`
	Items        []LineItemRequest `json:"items"`
}

// CollectionRequest cobro a cliente: sube su saldo y registra crédito en tesorería.
type CollectionRequest struct {
	CustomerCode  string          `json:"customer_code"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"payment_method"`
	InvoiceID     string          `json:"invoice_id,omitempty"`
}
