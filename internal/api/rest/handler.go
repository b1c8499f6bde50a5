package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ordimint/mint-engine/internal/api/apierrors"
	"github.com/ordimint/mint-engine/internal/api/middleware"
	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/eligibility"
	"github.com/ordimint/mint-engine/internal/order"
	"github.com/ordimint/mint-engine/internal/payment"
	"github.com/ordimint/mint-engine/internal/progression"
	"github.com/ordimint/mint-engine/internal/reconcile"
	"github.com/ordimint/mint-engine/internal/store"
	"github.com/ordimint/mint-engine/internal/store/schema"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CheckEligibility resolves an address against a requested batch
	// GET /api/v1/eligibility?address=<btc_address>&batch_id=<id>
	CheckEligibility(c *gin.Context)

	// CreateOrder creates a pending mint order for an eligible address
	// POST /api/v1/orders
	CreateOrder(c *gin.Context)

	// GetOrder retrieves an order by id
	// GET /api/v1/orders/:id
	GetOrder(c *gin.Context)

	// VerifyOrder checks the order's payment address against the mempool
	// indexer and credits the order when the expected amount has arrived
	// POST /api/v1/orders/:id/verify
	VerifyOrder(c *gin.Context)

	// ListBatches retrieves all batches in sale order
	// GET /api/v1/batches
	ListBatches(c *gin.Context)

	// GetBatch retrieves a batch by id
	// GET /api/v1/batches/:id
	GetBatch(c *gin.Context)

	// GetCurrentBatch retrieves the active batch pointer and cooldown state
	// GET /api/v1/batches/current
	GetCurrentBatch(c *gin.Context)

	// TickProgression runs one batch-progression tick; the force and
	// priority overrides require authentication
	// POST /api/v1/progression/tick
	TickProgression(c *gin.Context)

	// UpdateBatch applies an administrative batch override (requires authentication)
	// PUT /api/v1/admin/batches/:id
	UpdateBatch(c *gin.Context)

	// UpsertWhitelist creates or reassigns a whitelist entry (requires authentication)
	// PUT /api/v1/admin/whitelist
	UpsertWhitelist(c *gin.Context)

	// SetCooldown sets a per-batch cooldown override (requires authentication)
	// PUT /api/v1/admin/cooldowns/:batch_id
	SetCooldown(c *gin.Context)

	// SetOrderStatus forces an order status (requires authentication)
	// POST /api/v1/admin/orders/:id/status
	SetOrderStatus(c *gin.Context)

	// Reconcile recomputes a batch's counters from the minted-wallet ledger
	// (requires authentication)
	// POST /api/v1/admin/reconcile/:batch_id
	Reconcile(c *gin.Context)

	// AddPaymentAddresses seeds the payment address pool (requires authentication)
	// POST /api/v1/admin/payment-addresses
	AddPaymentAddresses(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store       store.Store
	orders      *order.Service
	eligibility *eligibility.Resolver
	verifier    *payment.Verifier
	progression *progression.Controller
	reconciler  *reconcile.Reconciler
	authCfg     middleware.AuthConfig
}

// NewHandler creates a new REST API handler
func NewHandler(
	st store.Store,
	orders *order.Service,
	resolver *eligibility.Resolver,
	verifier *payment.Verifier,
	controller *progression.Controller,
	reconciler *reconcile.Reconciler,
	authCfg middleware.AuthConfig,
) Handler {
	return &handler{
		store:       st,
		orders:      orders,
		eligibility: resolver,
		verifier:    verifier,
		progression: controller,
		reconciler:  reconciler,
		authCfg:     authCfg,
	}
}

// CheckEligibility resolves an address against a requested batch
func (h *handler) CheckEligibility(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		respondBadRequest(c, "address is required")
		return
	}
	if !domain.IsValidBTCAddress(address) {
		respondValidationError(c, "malformed btc address")
		return
	}

	batchID, err := strconv.Atoi(c.Query("batch_id"))
	if err != nil || batchID <= 0 {
		respondBadRequest(c, "batch_id must be a positive integer")
		return
	}

	elig, err := h.eligibility.CheckEligibility(c.Request.Context(), address, batchID)
	if err != nil {
		respondInternalError(c, err, "Failed to check eligibility")
		return
	}

	c.JSON(http.StatusOK, elig)
}

// CreateOrder creates a pending mint order for an eligible address
func (h *handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	created, err := h.orders.Create(c.Request.Context(), order.CreateInput{
		BTCAddress: req.BTCAddress,
		BatchID:    req.BatchID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder retrieves an order by id
func (h *handler) GetOrder(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		respondBadRequest(c, "Order ID is required")
		return
	}

	o, err := h.orders.Get(c.Request.Context(), orderID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(o))
}

// VerifyOrder checks the order's payment address and credits the order when
// the expected amount has arrived. Verification is idempotent; repeated calls
// for a paid order report the current state without side effects.
func (h *handler) VerifyOrder(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		respondBadRequest(c, "Order ID is required")
		return
	}

	result, err := h.verifier.VerifyPayment(c.Request.Context(), orderID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListBatches retrieves all batches in sale order
func (h *handler) ListBatches(c *gin.Context) {
	batches, err := h.store.ListBatches(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list batches")
		return
	}

	resp := make([]BatchResponse, 0, len(batches))
	for i := range batches {
		resp = append(resp, toBatchResponse(&batches[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// GetBatch retrieves a batch by id
func (h *handler) GetBatch(c *gin.Context) {
	batchID, err := strconv.Atoi(c.Param("id"))
	if err != nil || batchID <= 0 {
		respondBadRequest(c, "batch id must be a positive integer")
		return
	}

	batch, err := h.store.GetBatch(c.Request.Context(), batchID)
	if err != nil {
		respondInternalError(c, err, "Failed to get batch")
		return
	}
	if batch == nil {
		respondNotFound(c, "Batch not found")
		return
	}

	c.JSON(http.StatusOK, toBatchResponse(batch))
}

// GetCurrentBatch retrieves the active batch pointer and cooldown state
func (h *handler) GetCurrentBatch(c *gin.Context) {
	state, err := h.store.GetCurrentBatchState(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get current batch state")
		return
	}
	if state == nil {
		respondNotFound(c, "Sale not initialized")
		return
	}

	resp := CurrentBatchResponse{
		CurrentBatch: state.CurrentBatch,
		SoldOutAt:    state.SoldOutAt,
	}

	batch, err := h.store.GetBatch(c.Request.Context(), state.CurrentBatch)
	if err != nil {
		respondInternalError(c, err, "Failed to get current batch")
		return
	}
	if batch != nil {
		b := toBatchResponse(batch)
		resp.Batch = &b
	}

	c.JSON(http.StatusOK, resp)
}

// TickProgression runs one batch-progression tick. A plain tick is open to
// anyone since it only applies transitions that are already due; the force
// and priority overrides require administrative credentials.
func (h *handler) TickProgression(c *gin.Context) {
	var req TickRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if req.Force || req.Priority {
		auth := middleware.Authenticate(c.GetHeader("Authorization"), h.authCfg)
		if !auth.Success {
			c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication required for force and priority ticks"))
			return
		}
	}

	result, err := h.progression.TickCooldown(c.Request.Context(), progression.TickOptions{
		Force:    req.Force,
		Priority: req.Priority,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateBatch applies an administrative batch override
func (h *handler) UpdateBatch(c *gin.Context) {
	batchID, err := strconv.Atoi(c.Param("id"))
	if err != nil || batchID <= 0 {
		respondBadRequest(c, "batch id must be a positive integer")
		return
	}

	var req UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	batch, err := h.store.GetBatch(c.Request.Context(), batchID)
	if err != nil {
		respondInternalError(c, err, "Failed to get batch")
		return
	}
	if batch == nil {
		respondNotFound(c, "Batch not found")
		return
	}

	if req.PriceSats != nil {
		batch.PriceSats = *req.PriceSats
	}
	if req.MaxWallets != nil {
		batch.MaxWallets = *req.MaxWallets
	}
	if req.MintedWallets != nil {
		batch.MintedWallets = *req.MintedWallets
	}
	if req.OrdinalsPerBatch != nil {
		batch.OrdinalsPerBatch = *req.OrdinalsPerBatch
	}
	if req.IsSoldOut != nil {
		batch.IsSoldOut = *req.IsSoldOut
	}
	if req.IsFCFS != nil {
		batch.IsFCFS = *req.IsFCFS
	}

	if batch.MaxWallets <= 0 {
		respondValidationError(c, "max_wallets must be positive")
		return
	}
	if batch.MintedWallets < 0 || batch.MintedWallets > batch.MaxWallets {
		respondValidationError(c, "minted_wallets must be between 0 and max_wallets")
		return
	}

	if err := h.store.UpdateBatchAdmin(c.Request.Context(), *batch, middleware.Actor(c)); err != nil {
		respondInternalError(c, err, "Failed to update batch")
		return
	}

	c.JSON(http.StatusOK, toBatchResponse(batch))
}

// UpsertWhitelist creates or reassigns a whitelist entry
func (h *handler) UpsertWhitelist(c *gin.Context) {
	var req WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if !domain.IsValidBTCAddress(req.Address) {
		respondValidationError(c, "malformed btc address")
		return
	}
	if req.BatchID <= 0 {
		respondValidationError(c, "batch_id must be positive")
		return
	}

	batch, err := h.store.GetBatch(c.Request.Context(), req.BatchID)
	if err != nil {
		respondInternalError(c, err, "Failed to get batch")
		return
	}
	if batch == nil {
		respondNotFound(c, "Batch not found")
		return
	}

	entry := schema.WhitelistEntry{Address: req.Address, BatchID: req.BatchID}
	if err := h.store.UpsertWhitelistEntry(c.Request.Context(), entry, middleware.Actor(c)); err != nil {
		respondInternalError(c, err, "Failed to upsert whitelist entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// SetCooldown sets a per-batch cooldown override
func (h *handler) SetCooldown(c *gin.Context) {
	batchID, err := strconv.Atoi(c.Param("batch_id"))
	if err != nil || batchID <= 0 {
		respondBadRequest(c, "batch id must be a positive integer")
		return
	}

	var req CooldownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if req.Seconds <= 0 {
		respondValidationError(c, "seconds must be positive")
		return
	}

	cooldown := time.Duration(req.Seconds) * time.Second
	if err := h.store.SetCooldownOverride(c.Request.Context(), batchID, cooldown, middleware.Actor(c)); err != nil {
		respondInternalError(c, err, "Failed to set cooldown override")
		return
	}

	c.JSON(http.StatusOK, gin.H{"batch_id": batchID, "seconds": req.Seconds})
}

// SetOrderStatus forces an order status on behalf of an administrator
func (h *handler) SetOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		respondBadRequest(c, "Order ID is required")
		return
	}

	var req SetOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.orders.AdminSetStatus(c.Request.Context(), orderID, req.Status, middleware.Actor(c), req.Note); err != nil {
		respondDomainError(c, err)
		return
	}

	o, err := h.orders.Get(c.Request.Context(), orderID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(o))
}

// Reconcile recomputes a batch's counters from the minted-wallet ledger
func (h *handler) Reconcile(c *gin.Context) {
	batchID, err := strconv.Atoi(c.Param("batch_id"))
	if err != nil || batchID <= 0 {
		respondBadRequest(c, "batch id must be a positive integer")
		return
	}

	result, err := h.reconciler.Reconcile(c.Request.Context(), batchID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddPaymentAddresses seeds the payment address pool
func (h *handler) AddPaymentAddresses(c *gin.Context) {
	var req PaymentAddressesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if len(req.Addresses) == 0 {
		respondValidationError(c, "addresses must not be empty")
		return
	}
	for _, addr := range req.Addresses {
		if !domain.IsValidBTCAddress(addr) {
			respondValidationError(c, fmt.Sprintf("malformed btc address: %s", addr))
			return
		}
	}

	if err := h.store.AddPaymentAddresses(c.Request.Context(), req.Addresses); err != nil {
		respondInternalError(c, err, "Failed to add payment addresses")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"added": len(req.Addresses)})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "mint-engine-api",
	})
}
