package rest

import (
	"time"

	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/store/schema"
)

// CreateOrderRequest is the body of POST /api/v1/orders
type CreateOrderRequest struct {
	BTCAddress string `json:"btc_address" binding:"required"`
	BatchID    int    `json:"batch_id" binding:"required"`
	Quantity   int    `json:"quantity"`
}

// OrderResponse is the public representation of an order
type OrderResponse struct {
	ID               string             `json:"id"`
	BTCAddress       string             `json:"btc_address"`
	Quantity         int                `json:"quantity"`
	TotalSats        int64              `json:"total_sats"`
	PaymentAddress   string             `json:"payment_address"`
	PaymentReference string             `json:"payment_reference"`
	BatchID          int                `json:"batch_id"`
	Status           domain.OrderStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// toOrderResponse converts a stored order to its API representation
func toOrderResponse(o *schema.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		BTCAddress:       o.BTCAddress,
		Quantity:         o.Quantity,
		TotalSats:        o.TotalSats,
		PaymentAddress:   o.PaymentAddress,
		PaymentReference: o.PaymentReference,
		BatchID:          o.BatchID,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// BatchResponse is the public representation of a batch
type BatchResponse struct {
	ID               int   `json:"id"`
	PriceSats        int64 `json:"price_sats"`
	MaxWallets       int   `json:"max_wallets"`
	MintedWallets    int   `json:"minted_wallets"`
	OrdinalsPerBatch int   `json:"ordinals_per_batch"`
	IsSoldOut        bool  `json:"is_sold_out"`
	IsFCFS           bool  `json:"is_fcfs"`
}

// toBatchResponse converts a stored batch to its API representation
func toBatchResponse(b *schema.Batch) BatchResponse {
	return BatchResponse{
		ID:               b.ID,
		PriceSats:        b.PriceSats,
		MaxWallets:       b.MaxWallets,
		MintedWallets:    b.MintedWallets,
		OrdinalsPerBatch: b.OrdinalsPerBatch,
		IsSoldOut:        b.IsSoldOut,
		IsFCFS:           b.IsFCFS,
	}
}

// CurrentBatchResponse describes the active batch pointer and its cooldown state
type CurrentBatchResponse struct {
	CurrentBatch int            `json:"current_batch"`
	SoldOutAt    *time.Time     `json:"sold_out_at,omitempty"`
	Batch        *BatchResponse `json:"batch,omitempty"`
}

// TickRequest is the body of POST /api/v1/progression/tick
type TickRequest struct {
	// Force advances immediately regardless of remaining cooldown
	Force bool `json:"force"`
	// Priority shortens the cooldown by the configured priority buffer
	Priority bool `json:"priority"`
}

// UpdateBatchRequest is the body of the administrative batch override.
// Pointer fields distinguish "leave unchanged" from an explicit zero.
type UpdateBatchRequest struct {
	PriceSats        *int64 `json:"price_sats"`
	MaxWallets       *int   `json:"max_wallets"`
	MintedWallets    *int   `json:"minted_wallets"`
	OrdinalsPerBatch *int   `json:"ordinals_per_batch"`
	IsSoldOut        *bool  `json:"is_sold_out"`
	IsFCFS           *bool  `json:"is_fcfs"`
}

// WhitelistRequest is the body of the administrative whitelist upsert
type WhitelistRequest struct {
	Address string `json:"address" binding:"required"`
	BatchID int    `json:"batch_id" binding:"required"`
}

// CooldownRequest is the body of the administrative cooldown override
type CooldownRequest struct {
	Seconds int64 `json:"seconds" binding:"required"`
}

// SetOrderStatusRequest is the body of the administrative order status override
type SetOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// PaymentAddressesRequest is the body of the payment address pool seed
type PaymentAddressesRequest struct {
	Addresses []string `json:"addresses" binding:"required"`
}
