package domain

import (
	"regexp"
	"time"
)

// OrderStatus represents the lifecycle state of a mint order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusExpired   OrderStatus = "expired"
)

// IsValidOrderStatus checks if a status is one of the known lifecycle states
func IsValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCompleted, OrderStatusFailed, OrderStatusExpired:
		return true
	}
	return false
}

// Terminal reports whether the status is terminal for payment purposes
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusCompleted
}

// EligibilityReason is the machine-readable outcome of an eligibility check
type EligibilityReason string

const (
	ReasonEligible               EligibilityReason = "eligible"
	ReasonNotWhitelisted         EligibilityReason = "not_whitelisted"
	ReasonInvalidBatch           EligibilityReason = "invalid_batch"
	ReasonBatchSoldOut           EligibilityReason = "batch_sold_out"
	ReasonAlreadyMinted          EligibilityReason = "already_minted"
	ReasonNotWhitelistedForBatch EligibilityReason = "not_whitelisted_for_batch"
)

// Eligibility is the result of resolving an address against a requested batch
type Eligibility struct {
	Eligible         bool              `json:"eligible"`
	Reason           EligibilityReason `json:"reason"`
	WhitelistedBatch int               `json:"whitelisted_batch,omitempty"`
}

// ProgressionStatus is the machine-readable outcome of a cooldown tick
type ProgressionStatus string

const (
	ProgressionActive      ProgressionStatus = "active"
	ProgressionCooldown    ProgressionStatus = "cooldown"
	ProgressionAdvanced    ProgressionStatus = "advanced"
	ProgressionNoNextBatch ProgressionStatus = "no_next_batch"
)

// TickResult describes the outcome of a single batch-progression tick
type TickResult struct {
	Advanced      bool              `json:"advanced"`
	Status        ProgressionStatus `json:"status"`
	PreviousBatch int               `json:"previous_batch"`
	NewBatch      int               `json:"new_batch"`
	TimeLeft      time.Duration     `json:"time_left,omitempty"`
}

// TxOutput is a single output of an observed transaction
type TxOutput struct {
	Address   string `json:"address"`
	ValueSats int64  `json:"value_sats"`
}

// Transaction is a normalized transaction observed at a payment address.
// Timestamp is the block time for confirmed transactions and the observation
// time for unconfirmed ones.
type Transaction struct {
	TxID      string     `json:"tx_id"`
	Timestamp time.Time  `json:"timestamp"`
	Outputs   []TxOutput `json:"outputs"`
}

// PaidTo sums the value of outputs paying the given address
func (t *Transaction) PaidTo(address string) int64 {
	var total int64
	for _, out := range t.Outputs {
		if out.Address == address {
			total += out.ValueSats
		}
	}
	return total
}

// EventType represents the type of sale event published to the message broker
type EventType string

const (
	EventTypeOrderPaid     EventType = "order_paid"
	EventTypeBatchSoldOut  EventType = "batch_sold_out"
	EventTypeBatchAdvanced EventType = "batch_advanced"
)

// SaleEvent is the normalized event format published to NATS for the UI layer
type SaleEvent struct {
	EventType EventType `json:"event_type"`
	OrderID   string    `json:"order_id,omitempty"`
	Address   string    `json:"address,omitempty"`
	BatchID   int       `json:"batch_id"`
	Timestamp time.Time `json:"timestamp"`
}

// btcAddressPattern accepts mainnet/testnet base58 and bech32 address forms
var btcAddressPattern = regexp.MustCompile(`^(bc1|tb1|bcrt1)[02-9ac-hj-np-z]{11,87}$|^[13mn2][a-km-zA-HJ-NP-Z1-9]{25,39}$`)

// IsValidBTCAddress performs a shape check on a Bitcoin address.
// It does not verify the checksum; the payment flow tolerates unused addresses.
func IsValidBTCAddress(address string) bool {
	return btcAddressPattern.MatchString(address)
}
