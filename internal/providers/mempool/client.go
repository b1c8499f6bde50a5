package mempool

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ordimint/mint-engine/internal/adapter"
	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/payment"
	"github.com/ordimint/mint-engine/internal/ratelimit"
)

// AddressTx represents a transaction from the mempool.space address API
type AddressTx struct {
	TxID   string   `json:"txid"`
	Status TxStatus `json:"status"`
	Vout   []Vout   `json:"vout"`
}

// TxStatus represents the confirmation status of a transaction
type TxStatus struct {
	Confirmed bool  `json:"confirmed"`
	BlockTime int64 `json:"block_time"`
}

// Vout represents a transaction output
type Vout struct {
	ScriptPubKeyAddress string `json:"scriptpubkey_address"`
	Value               int64  `json:"value"`
}

// client is a mempool.space-style REST API client
type client struct {
	baseURL    string
	httpClient adapter.HTTPClient
	limiter    ratelimit.Limiter
	clock      adapter.Clock
}

// NewClient creates a new mempool indexer client
func NewClient(baseURL string, httpClient adapter.HTTPClient, limiter ratelimit.Limiter, clock adapter.Clock) payment.TxSource {
	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
		clock:      clock,
	}
}

// FetchTransactions retrieves transactions observed at an address.
// The indexer is best-effort: results may be stale, duplicated or out of
// order, and the caller must tolerate all three. Unconfirmed transactions
// carry the observation time since the indexer exposes no first-seen time.
func (c *client) FetchTransactions(ctx context.Context, address string) ([]domain.Transaction, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/address/%s/txs", c.baseURL, url.PathEscape(address))

	var txs []AddressTx
	if err := c.httpClient.Get(ctx, reqURL, &txs); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for %s: %w", address, err)
	}

	result := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		// Confirmed transactions carry the block time; unconfirmed ones are
		// stamped with the observation time.
		var ts time.Time
		if tx.Status.Confirmed && tx.Status.BlockTime > 0 {
			ts = time.Unix(tx.Status.BlockTime, 0).UTC()
		} else {
			ts = c.clock.Now()
		}

		outputs := make([]domain.TxOutput, 0, len(tx.Vout))
		for _, out := range tx.Vout {
			outputs = append(outputs, domain.TxOutput{
				Address:   out.ScriptPubKeyAddress,
				ValueSats: out.Value,
			})
		}

		result = append(result, domain.Transaction{
			TxID:      tx.TxID,
			Timestamp: ts,
			Outputs:   outputs,
		})
	}

	return result, nil
}
