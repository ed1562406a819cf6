package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	ledgerapp "github.com/financebook/backend/internal/application/ledger"
)

// LedgerHandler exposes bookkeeping operations and reports.
type LedgerHandler struct {
	BaseHandler
	service *ledgerapp.Service
}

// NewLedgerHandler creates a ledger handler.
func NewLedgerHandler(service *ledgerapp.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// RegisterRoutes registers the ledger routes.
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/transactions", h.RegisterTransaction)
	rg.POST("/assets/:id/depreciation", h.ComputeDepreciation)
	rg.POST("/employees/:id/salary", h.ComputeSalary)
	rg.GET("/warehouses/:id/inventory", h.WarehouseInventory)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.TrialBalance)
		reports.GET("/receivables-payables", h.ReceivablesPayables)
		reports.GET("/balance-sheet", h.BalanceSheet)
		reports.GET("/vat", h.VAT)
	}
}

// RegisterTransactionRequest is the body of POST /transactions.
type RegisterTransactionRequest struct {
	Date            time.Time       `json:"date"`
	DebitAccountID  *int            `json:"debitAccountId" binding:"required"`
	CreditAccountID *int            `json:"creditAccountId" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     *string         `json:"description"`
}

// RegisterTransaction posts a double-entry transaction.
func (h *LedgerHandler) RegisterTransaction(c *gin.Context) {
	var req RegisterTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	txn, err := h.service.RegisterTransaction(c.Request.Context(), ledgerapp.RegisterTransactionInput{
		Date:            req.Date,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Amount:          req.Amount,
		Description:     req.Description,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Created(c, txn)
}

// ComputeDepreciationRequest is the body of POST /assets/:id/depreciation.
type ComputeDepreciationRequest struct {
	Month  time.Time `json:"month" binding:"required"`
	Method string    `json:"method" binding:"required"`
}

// ComputeDepreciation posts one period of depreciation for an asset.
func (h *LedgerHandler) ComputeDepreciation(c *gin.Context) {
	assetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "asset id must be an integer")
		return
	}

	var req ComputeDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dep, err := h.service.ComputeDepreciationForAsset(c.Request.Context(), assetID, req.Month, req.Method)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Created(c, dep)
}

// ComputeSalaryRequest is the body of POST /employees/:id/salary.
type ComputeSalaryRequest struct {
	Month      time.Time       `json:"month" binding:"required"`
	BaseSalary decimal.Decimal `json:"baseSalary" binding:"required"`
	Bonus      decimal.Decimal `json:"bonus"`
	TaxType    string          `json:"taxType" binding:"required"`
}

// SalaryResponse bundles the payment and its tax row.
type SalaryResponse struct {
	Payment any `json:"payment"`
	Tax     any `json:"tax"`
}

// ComputeSalary posts a salary payment and its tax row for an employee.
func (h *LedgerHandler) ComputeSalary(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "employee id must be an integer")
		return
	}

	var req ComputeSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, tax, err := h.service.ComputeSalaryForEmployee(
		c.Request.Context(), employeeID, req.Month, req.BaseSalary, req.Bonus, req.TaxType)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Created(c, SalaryResponse{Payment: payment, Tax: tax})
}

// TrialBalance returns per-account debit/credit turnover.
func (h *LedgerHandler) TrialBalance(c *gin.Context) {
	balances, err := h.service.TrialBalance(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, balances)
}

// ReceivablesPayables returns summed document totals per counterparty.
func (h *LedgerHandler) ReceivablesPayables(c *gin.Context) {
	result, err := h.service.ReceivablesPayables(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, result)
}

// BalanceSheet returns gross turnover per account name.
func (h *LedgerHandler) BalanceSheet(c *gin.Context) {
	result, err := h.service.BalanceSheet(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, result)
}

// VAT returns the VAT owed per counterparty on sales documents.
func (h *LedgerHandler) VAT(c *gin.Context) {
	result, err := h.service.VAT(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, result)
}

// WarehouseInventory returns on-hand quantities per product for a warehouse.
func (h *LedgerHandler) WarehouseInventory(c *gin.Context) {
	warehouseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "warehouse id must be an integer")
		return
	}

	result, err := h.service.InventorySnapshot(c.Request.Context(), warehouseID)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, result)
}
