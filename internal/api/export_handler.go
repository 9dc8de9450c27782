package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hayseedprops/hayseed-dashboard/internal/cache"
	"github.com/hayseedprops/hayseed-dashboard/internal/models"
)

// ExportHandler serves the full unfiltered record set for one source as a
// CSV attachment
type ExportHandler struct {
	store *cache.Store
}

// NewExportHandler creates an export handler
func NewExportHandler(store *cache.Store) *ExportHandler {
	return &ExportHandler{store: store}
}

// csvHeaders is the fixed column schema per source
var csvHeaders = map[models.Source][]string{
	models.SourceViolations:    {"address", "violation_type", "case_number", "status", "inspection_date", "score", "zip"},
	models.SourceLisPendens:    {"address", "grantor", "grantee", "legal_description", "filed_date", "score", "zip"},
	models.SourceTaxDelinquent: {"address", "amount_owed", "years_delinquent", "score", "zip"},
}

// Export writes hayseed_<type>_<timestamp>.csv for the requested source
func (h *ExportHandler) Export(c *gin.Context) {
	source := models.ParseSource(c.Query("type"))
	records := h.store.Current().Records[source]

	data, err := renderCSV(source, records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV export: " + err.Error()})
		return
	}

	filename := fmt.Sprintf("hayseed_%s_%s.csv", source, time.Now().Format("2006-01-02_15-04-05"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, "text/csv", data)
}

func renderCSV(source models.Source, records []models.Record) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeaders[source]); err != nil {
		return nil, err
	}

	for _, r := range records {
		if err := writer.Write(csvRow(source, r)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvRow(source models.Source, r models.Record) []string {
	score := strconv.Itoa(r.Score)
	switch source {
	case models.SourceLisPendens:
		return []string{r.Address, r.Grantor, r.Grantee, r.LegalDescription, r.FiledDate, score, r.Zip}
	case models.SourceTaxDelinquent:
		return []string{r.Address, fmt.Sprintf("%.2f", r.AmountOwed), strconv.Itoa(r.YearsDelinquent), score, r.Zip}
	default:
		return []string{r.Address, r.ViolationType, r.CaseNumber, r.Status, r.InspectionDate, score, r.Zip}
	}
}
