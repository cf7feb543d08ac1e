package http

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"finance-tracker-go/internal/config"
	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/models"
	"finance-tracker-go/internal/reminders"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
		&models.RecurringTransaction{},
		&models.BillReminder{},
		&models.Notification{},
		&models.SavingsGoal{},
		&models.SavingsContribution{},
		&models.Debt{},
		&models.Session{},
	))
	database.DB = db

	cfg := &config.Config{
		Port:            "0",
		AllowOrigins:    "*",
		UploadDir:       t.TempDir(),
		MaxUploadMB:     15,
		SessionTTLHours: 1,
	}
	return NewServer(cfg)
}

type client struct {
	t      *testing.T
	r      *gin.Engine
	cookie string
}

func (cl *client) do(method, path, contentType, body string) *httptest.ResponseRecorder {
	cl.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cl.cookie != "" {
		req.Header.Set("Cookie", cl.cookie)
	}
	w := httptest.NewRecorder()
	cl.r.ServeHTTP(w, req)
	return w
}

func (cl *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return cl.do("POST", path, "application/x-www-form-urlencoded", form.Encode())
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do("GET", path, "", "")
}

// registerAndLogin creates a fresh user and captures the session cookie.
func registerAndLogin(t *testing.T, r *gin.Engine, email string) *client {
	t.Helper()
	cl := &client{t: t, r: r}

	w := cl.postForm("/register", url.Values{
		"name":          {"Test User"},
		"email":         {email},
		"password":      {"testpass123"},
		"recovery_hint": {"test hint"},
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	w = cl.postForm("/login", url.Values{
		"email":    {email},
		"password": {"testpass123"},
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			cl.cookie = c.Name + "=" + c.Value
		}
	}
	require.NotEmpty(t, cl.cookie, "login must set the session cookie")
	return cl
}

func seedCategory(t *testing.T, uid uint, name, catType string) uint {
	t.Helper()
	cat := models.Category{UserID: &uid, Name: name, Type: catType}
	require.NoError(t, database.DB.Create(&cat).Error)
	return cat.ID
}

func seedAccount(t *testing.T, uid uint, balance string) uint {
	t.Helper()
	acc := models.Account{UserID: &uid, Name: "Test Account", Type: "Checking",
		CurrentBalance: mustDecimal(t, balance), IsActive: true}
	require.NoError(t, database.DB.Create(&acc).Error)
	return acc.ID
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func accountBalance(t *testing.T, id uint) decimal.Decimal {
	t.Helper()
	var acc models.Account
	require.NoError(t, database.DB.First(&acc, id).Error)
	return acc.CurrentBalance
}

func currentUserID(t *testing.T, email string) uint {
	t.Helper()
	var user models.User
	require.NoError(t, database.DB.Where("email = ?", email).First(&user).Error)
	return user.ID
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func TestAuthRequired(t *testing.T) {
	r := setupServer(t)
	cl := &client{t: t, r: r}
	w := cl.get("/transactions")
	assert.Equal(t, 401, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupServer(t)
	registerAndLogin(t, r, "dup@example.com")

	cl := &client{t: t, r: r}
	w := cl.postForm("/register", url.Values{
		"name":          {"Other"},
		"email":         {"dup@example.com"},
		"password":      {"pw"},
		"recovery_hint": {"hint"},
	})
	assert.Equal(t, 409, w.Code)
}

func TestRegisterCreatesDefaultAccount(t *testing.T) {
	r := setupServer(t)
	registerAndLogin(t, r, "acct@example.com")
	uid := currentUserID(t, "acct@example.com")

	var accounts []models.Account
	require.NoError(t, database.DB.Where("user_id = ?", uid).Find(&accounts).Error)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Default Account", accounts[0].Name)
	assert.True(t, accounts[0].CurrentBalance.IsZero())
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupServer(t)
	registerAndLogin(t, r, "wrongpw@example.com")

	cl := &client{t: t, r: r}
	w := cl.postForm("/login", url.Values{
		"email":    {"wrongpw@example.com"},
		"password": {"not-the-password"},
	})
	assert.Equal(t, 401, w.Code)
}

// The repository's own fixture flow: income 500 on a 1000 account, an
// expense 100, then editing that expense to 150.
func TestTransactionBalanceFlow(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "flow@example.com")
	uid := currentUserID(t, "flow@example.com")

	catID := seedCategory(t, uid, "Test Category", models.TypeExpense)
	accID := seedAccount(t, uid, "1000")

	w := cl.postForm("/add_transaction", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeIncome},
		"amount":           {"500"},
		"transaction_date": {"2023-01-01"},
		"account_id":       {itoa(accID)},
	})
	require.Equal(t, 201, w.Code, w.Body.String())
	assert.True(t, accountBalance(t, accID).Equal(mustDecimal(t, "1500")))

	w = cl.postForm("/add_transaction", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"100"},
		"transaction_date": {"2023-01-02"},
		"account_id":       {itoa(accID)},
	})
	require.Equal(t, 201, w.Code, w.Body.String())
	assert.True(t, accountBalance(t, accID).Equal(mustDecimal(t, "1400")))

	var expense models.Transaction
	require.NoError(t, database.DB.
		Where("user_id = ? AND transaction_type = ?", uid, models.TypeExpense).
		First(&expense).Error)

	// 100 expense -> 150 expense: inverse +100 then -150
	w = cl.postForm("/edit_transaction/"+itoa(expense.ID), url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"150"},
		"transaction_date": {"2023-01-02"},
		"account_id":       {itoa(accID)},
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	assert.True(t, accountBalance(t, accID).Equal(mustDecimal(t, "1350")), "got %s", accountBalance(t, accID))

	// deleting restores the pre-creation value
	w = cl.get("/delete_transaction/" + itoa(expense.ID))
	require.Equal(t, 200, w.Code)
	assert.True(t, accountBalance(t, accID).Equal(mustDecimal(t, "1500")))

	var count int64
	database.DB.Model(&models.Transaction{}).Where("id = ?", expense.ID).Count(&count)
	assert.Zero(t, count)
}

func TestEditTransactionMovesAccounts(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "move@example.com")
	uid := currentUserID(t, "move@example.com")

	catID := seedCategory(t, uid, "Groceries", models.TypeExpense)
	accA := seedAccount(t, uid, "100")
	accB := seedAccount(t, uid, "100")

	w := cl.postForm("/add_transaction", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"40"},
		"transaction_date": {"2023-03-10"},
		"account_id":       {itoa(accA)},
	})
	require.Equal(t, 201, w.Code)
	require.True(t, accountBalance(t, accA).Equal(mustDecimal(t, "60")))

	var txn models.Transaction
	require.NoError(t, database.DB.Where("user_id = ?", uid).First(&txn).Error)

	w = cl.postForm("/edit_transaction/"+itoa(txn.ID), url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"40"},
		"transaction_date": {"2023-03-10"},
		"account_id":       {itoa(accB)},
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	// A as if the transaction never existed, B as if created fresh there
	assert.True(t, accountBalance(t, accA).Equal(mustDecimal(t, "100")))
	assert.True(t, accountBalance(t, accB).Equal(mustDecimal(t, "60")))
}

func TestEditForeignTransactionTouchesNothing(t *testing.T) {
	r := setupServer(t)
	clA := registerAndLogin(t, r, "owner@example.com")
	clB := registerAndLogin(t, r, "intruder@example.com")
	_ = clB

	uidA := currentUserID(t, "owner@example.com")
	catID := seedCategory(t, uidA, "Rent", models.TypeExpense)
	accID := seedAccount(t, uidA, "500")

	w := clA.postForm("/add_transaction", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"200"},
		"transaction_date": {"2023-04-01"},
		"account_id":       {itoa(accID)},
	})
	require.Equal(t, 201, w.Code)

	var txn models.Transaction
	require.NoError(t, database.DB.Where("user_id = ?", uidA).First(&txn).Error)

	// another user editing the id: answered as success, nothing changes
	w = clB.postForm("/edit_transaction/"+itoa(txn.ID), url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeIncome},
		"amount":           {"9999"},
		"transaction_date": {"2023-04-01"},
		"account_id":       {itoa(accID)},
	})
	assert.Equal(t, 200, w.Code)

	var after models.Transaction
	require.NoError(t, database.DB.First(&after, txn.ID).Error)
	assert.True(t, after.Amount.Equal(mustDecimal(t, "200")))
	assert.True(t, accountBalance(t, accID).Equal(mustDecimal(t, "300")))
}

func TestBudgetAlertStrictlyOver(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "budget@example.com")
	uid := currentUserID(t, "budget@example.com")

	catID := seedCategory(t, uid, "Dining", models.TypeExpense)
	accID := seedAccount(t, uid, "1000")

	w := cl.postForm("/budgets", url.Values{
		"category_id":   {itoa(catID)},
		"budget_amount": {"100.00"},
		"budget_month":  {"2023-05"},
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	// spending exactly the budget: no alert
	w = cl.postForm("/add_transaction", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"100.00"},
		"transaction_date": {"2023-05-10"},
		"account_id":       {itoa(accID)},
	})
	require.Equal(t, 201, w.Code)
	var resp struct {
		BudgetExceeded bool `json:"budget_exceeded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.BudgetExceeded)

	// one cent over fires
	w = cl.postForm("/add_transaction", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"0.01"},
		"transaction_date": {"2023-05-11"},
		"account_id":       {itoa(accID)},
	})
	require.Equal(t, 201, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.BudgetExceeded)

	// the alert is delivered once via the session, then cleared
	var listing struct {
		Alert string `json:"alert"`
	}
	w = cl.get("/transactions")
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, "Budget exceeded for this category!", listing.Alert)

	w = cl.get("/transactions")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Empty(t, listing.Alert)
}

func TestBudgetUpsert(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "upsert@example.com")
	uid := currentUserID(t, "upsert@example.com")
	catID := seedCategory(t, uid, "Fuel", models.TypeExpense)

	form := url.Values{
		"category_id":   {itoa(catID)},
		"budget_amount": {"80"},
		"budget_month":  {"2023-06"},
	}
	w := cl.postForm("/budgets", form)
	require.Equal(t, 201, w.Code)

	form.Set("budget_amount", "120")
	w = cl.postForm("/budgets", form)
	require.Equal(t, 200, w.Code, "second write for the triple updates in place")

	var count int64
	database.DB.Model(&models.Budget{}).
		Where("user_id = ? AND category_id = ? AND month = ?", uid, catID, "2023-06").
		Count(&count)
	assert.EqualValues(t, 1, count)

	var budget models.Budget
	require.NoError(t, database.DB.Where("user_id = ?", uid).First(&budget).Error)
	assert.True(t, budget.Amount.Equal(mustDecimal(t, "120")))
}

func TestBillNotificationDedup(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "bills@example.com")
	uid := currentUserID(t, "bills@example.com")

	due := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	w := cl.postForm("/bills", url.Values{
		"bill_name": {"Electricity"},
		"amount":    {"75.50"},
		"due_date":  {due},
	})
	require.Equal(t, 201, w.Code)

	// two visits, one notification
	require.Equal(t, 200, cl.get("/bills").Code)
	require.Equal(t, 200, cl.get("/bills").Code)

	var notifs []models.Notification
	require.NoError(t, database.DB.
		Where("user_id = ? AND related_entity_type = ?", uid, reminders.EntityBill).
		Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, reminders.TypeBillReminder, notifs[0].Type)
	assert.Contains(t, notifs[0].Message, "Electricity")

	// paid bills stop qualifying, the existing notification stays
	var bill models.BillReminder
	require.NoError(t, database.DB.Where("user_id = ?", uid).First(&bill).Error)
	require.Equal(t, 200, cl.get("/mark_bill_paid/"+itoa(bill.ID)).Code)
	require.Equal(t, 200, cl.get("/bills").Code)

	database.DB.Where("user_id = ?", uid).Find(&notifs)
	assert.Len(t, notifs, 1)
}

func TestGenerateRecurringFiresOncePerVisit(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "recur@example.com")
	uid := currentUserID(t, "recur@example.com")

	catID := seedCategory(t, uid, "Rent", models.TypeExpense)
	accID := seedAccount(t, uid, "2000")

	start := time.Now().AddDate(0, -2, 0).Format("2006-01-02")
	w := cl.postForm("/recurring", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"800"},
		"frequency":        {"monthly"},
		"start_date":       {start},
		"description":      {"Monthly rent"},
		"account_id":       {itoa(accID)},
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var gen struct {
		Generated int `json:"generated"`
	}
	w = cl.get("/generate_recurring")
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gen))
	assert.Equal(t, 1, gen.Generated, "two elapsed months still produce a single instance")

	var txns []models.Transaction
	require.NoError(t, database.DB.Where("user_id = ?", uid).Find(&txns).Error)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].IsGenerated)
	assert.Equal(t, time.Now().Format("2006-01-02"), txns[0].Date, "instances are dated today, not the due date")

	// already generated this period: the next visit is a no-op
	w = cl.get("/generate_recurring")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gen))
	assert.Equal(t, 0, gen.Generated)
}

func TestGenerateRecurringRespectsEndDate(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "ended@example.com")
	uid := currentUserID(t, "ended@example.com")

	catID := seedCategory(t, uid, "Gym", models.TypeExpense)

	w := cl.postForm("/recurring", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"30"},
		"frequency":        {"monthly"},
		"start_date":       {"2023-01-31"},
		"end_date":         {"2023-02-15"},
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var gen struct {
		Generated int `json:"generated"`
	}
	w = cl.get("/generate_recurring")
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gen))
	assert.Equal(t, 0, gen.Generated, "end date in the past suppresses generation")

	var count int64
	database.DB.Model(&models.Transaction{}).Where("user_id = ?", uid).Count(&count)
	assert.Zero(t, count)
}

func TestContributeAppendsHistory(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "goal@example.com")
	uid := currentUserID(t, "goal@example.com")

	w := cl.postForm("/savings", url.Values{
		"goal_name":     {"Vacation"},
		"target_amount": {"3000"},
		"target_date":   {"2030-01-01"},
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var goal models.SavingsGoal
	require.NoError(t, database.DB.Where("user_id = ?", uid).First(&goal).Error)

	for _, amt := range []string{"250", "100.50"} {
		w = cl.postForm("/contribute/"+itoa(goal.ID), url.Values{"contribution": {amt}})
		require.Equal(t, 200, w.Code)
	}

	require.NoError(t, database.DB.First(&goal, goal.ID).Error)
	assert.True(t, goal.CurrentAmount.Equal(mustDecimal(t, "350.50")))

	var history []models.SavingsContribution
	require.NoError(t, database.DB.Where("goal_id = ?", goal.ID).Find(&history).Error)
	assert.Len(t, history, 2)
}

func TestDeleteLinkedAccountGuard(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "guard@example.com")
	uid := currentUserID(t, "guard@example.com")

	catID := seedCategory(t, uid, "Misc", models.TypeExpense)
	accID := seedAccount(t, uid, "50")

	w := cl.postForm("/add_transaction", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"10"},
		"transaction_date": {"2023-07-01"},
		"account_id":       {itoa(accID)},
	})
	require.Equal(t, 201, w.Code)

	w = cl.get("/delete_linked_account/" + itoa(accID))
	assert.Equal(t, 409, w.Code)

	var count int64
	database.DB.Model(&models.Account{}).Where("id = ?", accID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestImportTransactions(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "import@example.com")
	uid := currentUserID(t, "import@example.com")

	catID := seedCategory(t, uid, "Imported", models.TypeExpense)
	accID := seedAccount(t, uid, "100")

	payload := `{"transactions":[
		{"category_id":` + itoa(catID) + `,"account_id":` + itoa(accID) + `,"amount":"20.00","transaction_type":"expense","transaction_date":"2023-08-01","description":"coffee"},
		{"category_id":` + itoa(catID) + `,"amount":"5.00","transaction_type":"income","transaction_date":"2023-08-02"}
	]}`
	w := cl.do("POST", "/import_transactions", "application/json", payload)
	require.Equal(t, 201, w.Code, w.Body.String())

	var resp struct {
		Imported int `json:"imported"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Imported)

	// only the row with an account touches a balance
	assert.True(t, accountBalance(t, accID).Equal(mustDecimal(t, "80")))
}

func TestImportTransactionsRejectsBadPayload(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "badimport@example.com")

	w := cl.do("POST", "/import_transactions", "application/json",
		`{"transactions":[{"amount":"x","transaction_type":"weird"}]}`)
	assert.Equal(t, 422, w.Code)

	var count int64
	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestExportCSV(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "export@example.com")
	uid := currentUserID(t, "export@example.com")

	catID := seedCategory(t, uid, "Books", models.TypeExpense)
	accID := seedAccount(t, uid, "100")

	w := cl.postForm("/add_transaction", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"12.99"},
		"transaction_date": {"2023-09-01"},
		"account_id":       {itoa(accID)},
	})
	require.Equal(t, 201, w.Code)

	w = cl.postForm("/export_transactions", url.Values{"format": {"csv"}})
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "Books")
	assert.Contains(t, w.Body.String(), "12.99")
}

func TestDeleteAccountCascades(t *testing.T) {
	r := setupServer(t)
	cl := registerAndLogin(t, r, "cascade@example.com")
	uid := currentUserID(t, "cascade@example.com")

	catID := seedCategory(t, uid, "Stuff", models.TypeExpense)
	accID := seedAccount(t, uid, "100")

	require.Equal(t, 201, cl.postForm("/add_transaction", url.Values{
		"category_id":      {itoa(catID)},
		"transaction_type": {models.TypeExpense},
		"amount":           {"10"},
		"transaction_date": {"2023-10-01"},
		"account_id":       {itoa(accID)},
	}).Code)
	require.Equal(t, 201, cl.postForm("/savings", url.Values{
		"goal_name":     {"Car"},
		"target_amount": {"500"},
		"target_date":   {"2030-01-01"},
	}).Code)

	w := cl.postForm("/delete_account", nil)
	require.Equal(t, 200, w.Code)

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"users", &models.User{}},
		{"transactions", &models.Transaction{}},
		{"accounts", &models.Account{}},
		{"savings goals", &models.SavingsGoal{}},
		{"sessions", &models.Session{}},
	} {
		var count int64
		database.DB.Model(probe.model).Count(&count)
		assert.Zero(t, count, "expected no %s left", probe.name)
	}

	// the session died with the user
	assert.Equal(t, 401, cl.get("/transactions").Code)
}

func TestForgotPassword(t *testing.T) {
	r := setupServer(t)
	registerAndLogin(t, r, "reset@example.com")

	cl := &client{t: t, r: r}
	w := cl.postForm("/forgot_password", url.Values{
		"email":        {"reset@example.com"},
		"hint":         {"  TEST HINT "}, // hint comparison ignores case and padding
		"new_password": {"newpass456"},
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	w = cl.postForm("/login", url.Values{
		"email":    {"reset@example.com"},
		"password": {"newpass456"},
	})
	assert.Equal(t, 200, w.Code)
}
