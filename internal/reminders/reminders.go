// Package reminders holds the bill-reminder window and the notification
// dedup decision.
package reminders

import (
	"fmt"
	"time"
)

// EntityBill is the related-entity type stamped on bill notifications.
const EntityBill = "bill"

// TypeBillReminder is the notification type for upcoming bills.
const TypeBillReminder = "bill_reminder"

// dueWindowDays is how far ahead a pending bill triggers a reminder.
const dueWindowDays = 3

// Bill is the reminder-relevant slice of a bill record.
type Bill struct {
	ID      uint
	Name    string
	DueDate string
}

// Window returns the inclusive [today, today+3d] date-string range a pending
// bill's due date must fall in to warrant a reminder.
func Window(today time.Time) (from, to string) {
	return today.Format("2006-01-02"), today.AddDate(0, 0, dueWindowDays).Format("2006-01-02")
}

// Missing returns the bills that still need a notification, in input order.
// notified holds the bill ids that already have one; those are skipped
// unconditionally, so a bill is notified at most once ever. Existing
// notifications are never refreshed, even if the due date later changes.
func Missing(bills []Bill, notified map[uint]bool) []Bill {
	var out []Bill
	for _, b := range bills {
		if !notified[b.ID] {
			out = append(out, b)
		}
	}
	return out
}

// Message formats the reminder text for a bill.
func Message(b Bill) string {
	return fmt.Sprintf("Bill '%s' is due on %s", b.Name, b.DueDate)
}
