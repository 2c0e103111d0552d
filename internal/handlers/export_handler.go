package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fluxo/internal/services"
)

// ExportHandler handles data export requests
type ExportHandler struct {
	exportService services.ExportServicer
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService services.ExportServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportTransactionsCSV downloads transactions as CSV
// @Summary     Export transactions as CSV
// @Description Download all transactions in the current scope as a CSV file
// @Tags        export
// @Produce     text/csv
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {string} string "CSV file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /export/transactions.csv [get]
func (h *ExportHandler) ExportTransactionsCSV(c *gin.Context) {
	h.serveCSV(c, "transacoes", h.exportService.TransactionsCSV)
}

// ExportPayablesCSV downloads payables as CSV
// @Summary     Export payables as CSV
// @Description Download all payables in the current scope as a CSV file
// @Tags        export
// @Produce     text/csv
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {string} string "CSV file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /export/payables.csv [get]
func (h *ExportHandler) ExportPayablesCSV(c *gin.Context) {
	h.serveCSV(c, "contas_a_pagar", h.exportService.PayablesCSV)
}

// ExportReceivablesCSV downloads receivables as CSV
// @Summary     Export receivables as CSV
// @Description Download all receivables in the current scope as a CSV file
// @Tags        export
// @Produce     text/csv
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {string} string "CSV file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /export/receivables.csv [get]
func (h *ExportHandler) ExportReceivablesCSV(c *gin.Context) {
	h.serveCSV(c, "contas_a_receber", h.exportService.ReceivablesCSV)
}

// ExportCategoriesCSV downloads categories as CSV
// @Summary     Export categories as CSV
// @Description Download all categories in the current scope as a CSV file
// @Tags        export
// @Produce     text/csv
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {string} string "CSV file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /export/categories.csv [get]
func (h *ExportHandler) ExportCategoriesCSV(c *gin.Context) {
	h.serveCSV(c, "categorias", h.exportService.CategoriesCSV)
}

// ExportSnapshot downloads the full data snapshot as JSON
// @Summary     Export full snapshot as JSON
// @Description Download the user's complete data set as an indented JSON document
// @Tags        export
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {object} export.Snapshot "JSON snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /export/snapshot.json [get]
func (h *ExportHandler) ExportSnapshot(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.exportService.Snapshot(owner, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("fluxo_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.IndentedJSON(http.StatusOK, snapshot)
}

func (h *ExportHandler) serveCSV(c *gin.Context, name string, produce func(services.OwnerContext) ([]byte, error)) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := produce(owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
