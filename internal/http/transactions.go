package http

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/ledger"
	"finance-tracker-go/internal/models"
)

var allowedReceiptExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".pdf": true,
}

// applyAdjustments persists each balance delta as its own atomic
// balance = balance + delta update.
func applyAdjustments(tx *gorm.DB, adjs []ledger.Adjustment) error {
	for _, a := range adjs {
		err := tx.Model(&models.Account{}).
			Where("id = ?", a.AccountID).
			Update("current_balance", gorm.Expr("current_balance + ?", a.Delta)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// monthlySpent sums a user's expense transactions for a category in a
// YYYY-MM month.
func monthlySpent(tx *gorm.DB, uid, categoryID uint, month string) decimal.Decimal {
	from, to := ledger.MonthRange(month)
	var total decimal.Decimal
	row := tx.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category_id = ? AND transaction_type = ? AND transaction_date >= ? AND transaction_date < ?",
			uid, categoryID, models.TypeExpense, from, to).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero
	}
	return total
}

func (s *Server) saveReceipt(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > s.cfg.MaxUploadMB*1024*1024 {
		return "", fmt.Errorf("file too large")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedReceiptExts[ext] {
		return "", fmt.Errorf("file type not allowed")
	}
	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	path := filepath.Join(s.cfg.UploadDir, filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must be positive")
	}
	return amount, nil
}

func parseDateField(raw string) (string, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

// GET /transactions?type=&from=&to=&keyword=
func (s *Server) listTransactions(c *gin.Context) {
	uid := userID(c)

	query := database.DB.Where("user_id = ?", uid).Order("transaction_date desc, id desc")

	if t := c.Query("type"); t != "" {
		query = query.Where("transaction_type = ?", t)
	}
	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		query = query.Where("transaction_date BETWEEN ? AND ?", from, to)
	}
	if kw := c.Query("keyword"); kw != "" {
		query = query.Where("description LIKE ?", "%"+kw+"%")
	}

	var txns []models.Transaction
	if err := query.Find(&txns).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, gin.H{"transactions": txns, "alert": s.popAlert(c)})
}

// POST /add_transaction (multipart form, optional receipt_file)
func (s *Server) addTransaction(c *gin.Context) {
	uid := userID(c)

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_category"})
		return
	}
	txType := c.PostForm("transaction_type")
	if txType != models.TypeIncome && txType != models.TypeExpense {
		c.JSON(400, gin.H{"error": "invalid_transaction_type"})
		return
	}
	amount, err := parseAmount(c.PostForm("amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	date, err := parseDateField(c.PostForm("transaction_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	accountRaw := c.PostForm("account_id")
	if accountRaw == "" {
		s.setAlert(c, "Please select an account.")
		c.JSON(400, gin.H{"error": "account_required"})
		return
	}
	accID64, err := strconv.ParseUint(accountRaw, 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_account"})
		return
	}
	accountID := uint(accID64)

	description := strings.TrimSpace(c.PostForm("description"))
	if description == "" {
		var cat models.Category
		if err := database.DB.First(&cat, uint(categoryID)).Error; err == nil {
			description = cat.Name
		} else {
			description = "General"
		}
	}

	receiptURL := ""
	if file, err := c.FormFile("receipt_file"); err == nil {
		path, err := s.saveReceipt(c, file)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid_receipt"})
			return
		}
		receiptURL = path
	}

	txn := models.Transaction{
		UserID:      uid,
		CategoryID:  uint(categoryID),
		AccountID:   &accountID,
		Amount:      amount,
		Type:        txType,
		Date:        date,
		Description: description,
		ReceiptURL:  receiptURL,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		return applyAdjustments(tx, ledger.Apply(ledger.Entry{
			Type: txn.Type, Amount: txn.Amount, AccountID: txn.AccountID,
		}))
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	exceeded := false
	if txType == models.TypeExpense {
		exceeded = s.checkBudget(c, uid, uint(categoryID), date)
	}

	c.JSON(201, gin.H{"transaction": txn, "budget_exceeded": exceeded})
}

// checkBudget recomputes the month's spend for the category and raises the
// user-visible alert when it is strictly over the budgeted amount. No
// exceeded state is persisted; the check runs on every qualifying write.
func (s *Server) checkBudget(c *gin.Context, uid, categoryID uint, date string) bool {
	month := ledger.MonthKey(date)

	var budget models.Budget
	err := database.DB.Where("user_id = ? AND category_id = ? AND month = ?", uid, categoryID, month).
		First(&budget).Error
	if err != nil {
		return false // no budget for the triple: silently skip
	}

	spent := monthlySpent(database.DB, uid, categoryID, month)
	if ledger.Exceeded(budget.Amount, spent) {
		s.setAlert(c, "Budget exceeded for this category!")
		return true
	}
	return false
}

// POST /edit_transaction/:id — inverse the old effect against the old
// account, then apply the new effect against the new account.
func (s *Server) editTransaction(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_category"})
		return
	}
	newType := c.PostForm("transaction_type")
	if newType != models.TypeIncome && newType != models.TypeExpense {
		c.JSON(400, gin.H{"error": "invalid_transaction_type"})
		return
	}
	newAmount, err := parseAmount(c.PostForm("amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	date, err := parseDateField(c.PostForm("transaction_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	var newAccountID *uint
	if raw := c.PostForm("account_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid_account"})
			return
		}
		acc := uint(v)
		newAccountID = &acc
	}

	var old models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).First(&old).Error; err != nil {
		if isNotFound(err) {
			// unknown or foreign id: nothing is touched, the caller is
			// answered as if the update went through
			c.JSON(200, gin.H{"message": "transaction updated"})
			return
		}
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	adjs := ledger.Amend(
		ledger.Entry{Type: old.Type, Amount: old.Amount, AccountID: old.AccountID},
		ledger.Entry{Type: newType, Amount: newAmount, AccountID: newAccountID},
	)

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := applyAdjustments(tx, adjs); err != nil {
			return err
		}
		return tx.Model(&models.Transaction{}).
			Where("id = ? AND user_id = ?", id, uid).
			Updates(map[string]interface{}{
				"category_id":      uint(categoryID),
				"transaction_type": newType,
				"amount":           newAmount,
				"transaction_date": date,
				"description":      c.PostForm("description"),
				"receipt_url":      c.PostForm("receipt_url"),
				"account_id":       newAccountID,
			}).Error
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	exceeded := false
	if newType == models.TypeExpense {
		exceeded = s.checkBudget(c, uid, uint(categoryID), date)
	}

	c.JSON(200, gin.H{"message": "transaction updated", "budget_exceeded": exceeded})
}

// GET /delete_transaction/:id — inverse the effect, then drop the record.
func (s *Server) deleteTransaction(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}

	var txn models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).First(&txn).Error; err != nil {
		if isNotFound(err) {
			c.JSON(200, gin.H{"message": "transaction deleted"})
			return
		}
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		adjs := ledger.Revert(ledger.Entry{Type: txn.Type, Amount: txn.Amount, AccountID: txn.AccountID})
		if err := applyAdjustments(tx, adjs); err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Transaction{}).Error
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, gin.H{"message": "transaction deleted"})
}
