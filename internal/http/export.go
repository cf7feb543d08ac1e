package http

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xeipuuv/gojsonschema"
	"gorm.io/gorm"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/ledger"
	"finance-tracker-go/internal/models"
)

type importRow struct {
	CategoryID  uint   `json:"category_id"`
	AccountID   *uint  `json:"account_id,omitempty"`
	Amount      string `json:"amount"`
	Type        string `json:"transaction_type"`
	Date        string `json:"transaction_date"`
	Description string `json:"description"`
}

type importBatch struct {
	Transactions []importRow `json:"transactions"`
}

// POST /import_transactions — a JSON batch validated against the embedded
// schema before anything is written; balances are adjusted per row.
func (s *Server) importTransactions(c *gin.Context) {
	uid := userID(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_request"})
		return
	}

	res, err := s.importSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}
	if !res.Valid() {
		details := []string{}
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		c.JSON(422, gin.H{"error": "schema_invalid", "details": details})
		return
	}

	var batch importBatch
	if err := json.Unmarshal(body, &batch); err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}

	imported := 0
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range batch.Transactions {
			amount, err := decimal.NewFromString(row.Amount)
			if err != nil {
				return err
			}
			txn := models.Transaction{
				UserID:      uid,
				CategoryID:  row.CategoryID,
				AccountID:   row.AccountID,
				Amount:      amount,
				Type:        row.Type,
				Date:        row.Date,
				Description: row.Description,
			}
			if err := tx.Create(&txn).Error; err != nil {
				return err
			}
			if err := applyAdjustments(tx, ledger.Apply(ledger.Entry{
				Type: txn.Type, Amount: txn.Amount, AccountID: txn.AccountID,
			})); err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "import_failed"})
		return
	}

	c.JSON(201, gin.H{"imported": imported})
}

type exportRow struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// POST /export_transactions (format=csv|pdf)
func (s *Server) exportTransactions(c *gin.Context) {
	uid := userID(c)
	format := c.PostForm("format")

	var rows []exportRow
	err := database.DB.Model(&models.Transaction{}).
		Select("transactions.transaction_date as date, transactions.transaction_type as type, categories.name as category, transactions.amount, transactions.description").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", uid).
		Order("transactions.transaction_date desc").
		Scan(&rows).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	switch format {
	case "csv":
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		_ = w.Write([]string{"Date", "Type", "Category", "Amount", "Description"})
		for _, r := range rows {
			_ = w.Write([]string{r.Date, r.Type, r.Category, r.Amount.StringFixed(2), r.Description})
		}
		w.Flush()
		c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
		c.Data(200, "text/csv", buf.Bytes())

	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 10, "Transaction Report", "", 1, "C", false, 0, "")
		pdf.Ln(4)
		for _, r := range rows {
			line := fmt.Sprintf("%s | %s | %s | $%s | %s", r.Date, r.Type, r.Category, r.Amount.StringFixed(2), r.Description)
			pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
		}
		buf := &bytes.Buffer{}
		if err := pdf.Output(buf); err != nil {
			c.JSON(500, gin.H{"error": "pdf_failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="transactions.pdf"`)
		c.Data(200, "application/pdf", buf.Bytes())

	default:
		c.JSON(400, gin.H{"error": "unknown_format"})
	}
}
