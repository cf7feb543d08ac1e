package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/models"
	"finance-tracker-go/internal/reminders"
)

// notifyUpcomingBills creates one notification for each pending bill due in
// the reminder window that was never notified before. Bills already covered
// are skipped forever; the message is not refreshed when a due date moves.
func notifyUpcomingBills(uid uint, today time.Time) error {
	from, to := reminders.Window(today)

	var pending []models.BillReminder
	err := database.DB.
		Where("user_id = ? AND status = ? AND due_date BETWEEN ? AND ?", uid, models.BillPending, from, to).
		Find(&pending).Error
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	var existing []models.Notification
	err = database.DB.
		Where("user_id = ? AND related_entity_type = ?", uid, reminders.EntityBill).
		Find(&existing).Error
	if err != nil {
		return err
	}
	notified := make(map[uint]bool, len(existing))
	for _, n := range existing {
		notified[n.RelatedEntityID] = true
	}

	bills := make([]reminders.Bill, 0, len(pending))
	for _, b := range pending {
		bills = append(bills, reminders.Bill{ID: b.ID, Name: b.Name, DueDate: b.DueDate})
	}

	for _, b := range reminders.Missing(bills, notified) {
		n := models.Notification{
			UserID:            uid,
			Type:              reminders.TypeBillReminder,
			Message:           reminders.Message(b),
			RelatedEntityType: reminders.EntityBill,
			RelatedEntityID:   b.ID,
		}
		if err := database.DB.Create(&n).Error; err != nil {
			return err
		}
	}
	return nil
}

// GET /bills — a side-effecting read: the reminder check runs first.
func (s *Server) listBills(c *gin.Context) {
	uid := userID(c)

	if err := notifyUpcomingBills(uid, time.Now()); err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	var bills []models.BillReminder
	if err := database.DB.Where("user_id = ?", uid).Order("due_date asc").Find(&bills).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"bills": bills, "alert": s.popAlert(c)})
}

// POST /bills
func (s *Server) addBill(c *gin.Context) {
	uid := userID(c)

	name := c.PostForm("bill_name")
	amount, err := parseAmount(c.PostForm("amount"))
	if err != nil || name == "" {
		c.JSON(400, gin.H{"error": "invalid_bill"})
		return
	}
	dueDate, err := parseDateField(c.PostForm("due_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	bill := models.BillReminder{
		UserID:  uid,
		Name:    name,
		Amount:  amount,
		DueDate: dueDate,
		Status:  models.BillPending,
	}
	if err := database.DB.Create(&bill).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(201, gin.H{"bill": bill})
}

// GET /mark_bill_paid/:id
func (s *Server) markBillPaid(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	err = database.DB.Model(&models.BillReminder{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("status", models.BillPaid).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "bill marked paid"})
}

// POST /edit_bill/:id
func (s *Server) editBill(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	amount, err := parseAmount(c.PostForm("amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	dueDate, err := parseDateField(c.PostForm("due_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}
	status := c.PostForm("status")
	if status != models.BillPending && status != models.BillPaid {
		c.JSON(400, gin.H{"error": "invalid_status"})
		return
	}

	err = database.DB.Model(&models.BillReminder{}).
		Where("id = ? AND user_id = ?", id, uid).
		Updates(map[string]interface{}{
			"name":     c.PostForm("bill_name"),
			"amount":   amount,
			"due_date": dueDate,
			"status":   status,
		}).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "bill updated"})
}

// GET /delete_bill/:id
func (s *Server) deleteBill(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.BillReminder{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "bill deleted"})
}
