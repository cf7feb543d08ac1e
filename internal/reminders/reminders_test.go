package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	today := time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)
	from, to := Window(today)
	assert.Equal(t, "2023-06-15", from)
	assert.Equal(t, "2023-06-18", to)
}

func TestWindowCrossesMonthBoundary(t *testing.T) {
	today := time.Date(2023, 1, 30, 0, 0, 0, 0, time.UTC)
	from, to := Window(today)
	assert.Equal(t, "2023-01-30", from)
	assert.Equal(t, "2023-02-02", to)
}

func TestMissing(t *testing.T) {
	bills := []Bill{
		{ID: 1, Name: "Rent", DueDate: "2023-06-16"},
		{ID: 2, Name: "Power", DueDate: "2023-06-17"},
		{ID: 3, Name: "Water", DueDate: "2023-06-18"},
	}

	missing := Missing(bills, map[uint]bool{2: true})
	assert.Len(t, missing, 2)
	assert.Equal(t, uint(1), missing[0].ID)
	assert.Equal(t, uint(3), missing[1].ID)
}

func TestMissingSecondPassIsEmpty(t *testing.T) {
	bills := []Bill{{ID: 7, Name: "Internet", DueDate: "2023-06-16"}}

	first := Missing(bills, map[uint]bool{})
	assert.Len(t, first, 1)

	// once notified, repeated checks produce nothing
	second := Missing(bills, map[uint]bool{7: true})
	assert.Empty(t, second)
}

func TestMessage(t *testing.T) {
	msg := Message(Bill{ID: 1, Name: "Rent", DueDate: "2023-06-16"})
	assert.Equal(t, "Bill 'Rent' is due on 2023-06-16", msg)
}
