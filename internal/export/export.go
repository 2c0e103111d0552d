// Package export renders entity collections as CSV and full-state JSON
// snapshots for download.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"fluxo/internal/models"
)

const dateLayout = "2006-01-02"

// FormatAmount renders an amount in minor units as a plain decimal
// string, e.g. 1000 -> "10.00".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// WriteTransactionsCSV writes transactions as comma-separated rows.
// Fields containing commas or quotes are double-quoted with quotes
// escaped by doubling, per RFC 4180.
func WriteTransactionsCSV(w io.Writer, transactions []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "description", "amount", "type", "category_id", "date"}); err != nil {
		return err
	}
	for _, t := range transactions {
		record := []string{
			t.ID,
			t.Description,
			FormatAmount(t.Amount),
			string(t.Type),
			t.CategoryID,
			t.Date.Format(dateLayout),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePayablesCSV writes accounts payable as comma-separated rows.
func WritePayablesCSV(w io.Writer, payables []models.AccountPayable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "description", "amount", "due_date", "status", "is_recurring", "category_id"}); err != nil {
		return err
	}
	for _, p := range payables {
		record := []string{
			p.ID,
			p.Description,
			FormatAmount(p.Amount),
			p.DueDate.Format(dateLayout),
			string(p.Status),
			fmt.Sprintf("%t", p.IsRecurring),
			p.CategoryID,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReceivablesCSV writes accounts receivable as comma-separated rows.
func WriteReceivablesCSV(w io.Writer, receivables []models.AccountReceivable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "client_name", "description", "amount", "due_date", "status"}); err != nil {
		return err
	}
	for _, r := range receivables {
		record := []string{
			r.ID,
			r.ClientName,
			r.Description,
			FormatAmount(r.Amount),
			r.DueDate.Format(dateLayout),
			string(r.Status),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCategoriesCSV writes categories as comma-separated rows.
func WriteCategoriesCSV(w io.Writer, categories []models.Category) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "type"}); err != nil {
		return err
	}
	for _, c := range categories {
		if err := cw.Write([]string{c.ID, c.Name, string(c.Type)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Snapshot is the full-state backup document. The field names keep the
// original export format so existing backups remain interchangeable.
type Snapshot struct {
	Usuario        string                     `json:"usuario"`
	Perfil         models.ProfileContext      `json:"perfil"`
	DataExportacao string                     `json:"data_exportacao"`
	Transacoes     []models.Transaction       `json:"transacoes"`
	ContasAPagar   []models.AccountPayable    `json:"contas_a_pagar"`
	ContasAReceber []models.AccountReceivable `json:"contas_a_receber"`
	Categorias     []models.Category          `json:"categorias"`
}

// BuildSnapshot assembles a snapshot of the user's data at the given time.
func BuildSnapshot(
	user *models.User,
	transactions []models.Transaction,
	payables []models.AccountPayable,
	receivables []models.AccountReceivable,
	categories []models.Category,
	now time.Time,
) Snapshot {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if payables == nil {
		payables = []models.AccountPayable{}
	}
	if receivables == nil {
		receivables = []models.AccountReceivable{}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return Snapshot{
		Usuario:        user.Email,
		Perfil:         user.ProfileContext,
		DataExportacao: now.UTC().Format(time.RFC3339),
		Transacoes:     transactions,
		ContasAPagar:   payables,
		ContasAReceber: receivables,
		Categorias:     categories,
	}
}

// WriteSnapshotJSON writes the snapshot as indented JSON.
func WriteSnapshotJSON(w io.Writer, snapshot Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}
