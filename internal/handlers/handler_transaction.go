package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.POST("/search", h.searchTransactions)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description The amount must equal the sum of quantity times price per unit over the details
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction with details"
// @Success 201 {object} dto.CreatedTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or amount mismatch"
// @Failure 404 {object} map[string]string "Account, counterparty or product not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), tenantID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCreatedTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Filters are optional; malformed values are ignored. List filters accept key or key[].
// @Tags transactions
// @Produce  json
// @Param   accountId query int false "Own account"
// @Param   counterpartyId query int false "Counterparty"
// @Param   searchText query string false "Substring of the transaction name"
// @Param   startDate query string false "Earliest date"
// @Param   endDate query string false "Latest date"
// @Param   minAmount query int false "Minimum amount in minor units"
// @Param   maxAmount query int false "Maximum amount in minor units"
// @Param   categoryIds query []int false "Detail category" collectionFormat(multi)
// @Param   productNames query []string false "Detail product name" collectionFormat(multi)
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	h.find(c, queryFromURL(c))
}

// searchTransactions godoc
// @Summary Search transactions
// @Description Same filters as the listing, sent as JSON. List filters accept a scalar or an array.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   query body dto.TransactionQuery false "Filters"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Malformed JSON"
// @Security BearerAuth
// @Router /transactions/search [post]
func (h *transactionHandler) searchTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.TransactionQuery
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&query); err != nil {
			logger.Warn("Failed to bind JSON for SearchTransactions", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}
	h.find(c, query)
}

func (h *transactionHandler) find(c *gin.Context, query dto.TransactionQuery) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}

	res, err := h.transactionService.FindTransactions(c.Request.Context(), tenantID, query)
	if err != nil {
		respondError(c, logger, err, "Failed to load transactions")
		return
	}
	c.JSON(http.StatusOK, res)
}

// queryFromURL reads the filters from the query string. List filters are gathered from both
// key and key[].
func queryFromURL(c *gin.Context) dto.TransactionQuery {
	return dto.TransactionQuery{
		AccountID:      dto.FlexibleString(c.Query("accountId")),
		CounterpartyID: dto.FlexibleString(c.Query("counterpartyId")),
		SearchText:     dto.FlexibleString(c.Query("searchText")),
		StartDate:      dto.FlexibleString(c.Query("startDate")),
		EndDate:        dto.FlexibleString(c.Query("endDate")),
		MinAmount:      dto.FlexibleString(c.Query("minAmount")),
		MaxAmount:      dto.FlexibleString(c.Query("maxAmount")),
		CategoryIDs:    queryList(c, "categoryIds"),
		ProductNames:   queryList(c, "productNames"),
	}
}

func queryList(c *gin.Context, key string) dto.FlexibleStrings {
	values := slices.Concat(c.QueryArray(key), c.QueryArray(key+"[]"))
	if len(values) == 0 {
		return nil
	}
	return dto.FlexibleStrings(values)
}
