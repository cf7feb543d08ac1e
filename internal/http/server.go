package http

import (
	_ "embed"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	"finance-tracker-go/internal/config"
)

//go:embed schemas/transaction_import.schema.json
var transactionImportSchema string

type Server struct {
	cfg          *config.Config
	importSchema *gojsonschema.Schema
}

func NewServer(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg))
	r.Use(logging())

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(transactionImportSchema))
	if err != nil {
		panic(err)
	}

	s := &Server{cfg: cfg, importSchema: schema}

	// Auth
	r.POST("/register", s.register)
	r.POST("/login", s.login)
	r.POST("/forgot_password", s.forgotPassword)

	authorized := r.Group("/")
	authorized.Use(s.requireAuth())
	{
		authorized.GET("/logout", s.logout)

		// Profile
		authorized.GET("/profile", s.profile)
		authorized.POST("/change_password", s.changePassword)
		authorized.POST("/update_currency", s.updateCurrency)
		authorized.POST("/delete_account", s.deleteAccount)

		// Transactions
		authorized.GET("/transactions", s.listTransactions)
		authorized.POST("/add_transaction", s.addTransaction)
		authorized.POST("/edit_transaction/:id", s.editTransaction)
		authorized.GET("/delete_transaction/:id", s.deleteTransaction)
		authorized.POST("/import_transactions", s.importTransactions)
		authorized.POST("/export_transactions", s.exportTransactions)

		// Linked accounts
		authorized.GET("/accounts", s.listAccounts)
		authorized.POST("/accounts", s.addAccount)
		authorized.POST("/edit_account/:id", s.editAccount)
		authorized.GET("/delete_linked_account/:id", s.deleteLinkedAccount)

		// Categories
		authorized.GET("/categories", s.listCategories)
		authorized.POST("/categories", s.addCategory)

		// Budgets
		authorized.GET("/budgets", s.listBudgets)
		authorized.POST("/budgets", s.upsertBudget)
		authorized.POST("/edit_budget/:id", s.editBudget)
		authorized.GET("/delete_budget/:id", s.deleteBudget)
		authorized.GET("/budget_trends", s.budgetTrends)
		authorized.GET("/move_to_savings", s.moveToSavings)

		// Savings
		authorized.GET("/savings", s.listSavings)
		authorized.POST("/savings", s.addSavingsGoal)
		authorized.POST("/contribute/:goal_id", s.contribute)
		authorized.POST("/edit_savings/:goal_id", s.editSavingsGoal)
		authorized.GET("/delete_savings/:goal_id", s.deleteSavingsGoal)
		authorized.GET("/savings_history/:goal_id", s.savingsHistory)

		// Recurring
		authorized.GET("/recurring", s.listRecurring)
		authorized.POST("/recurring", s.addRecurring)
		authorized.POST("/edit_recurring/:id", s.editRecurring)
		authorized.GET("/generate_recurring", s.generateRecurring)

		// Bills
		authorized.GET("/bills", s.listBills)
		authorized.POST("/bills", s.addBill)
		authorized.GET("/mark_bill_paid/:id", s.markBillPaid)
		authorized.POST("/edit_bill/:id", s.editBill)
		authorized.GET("/delete_bill/:id", s.deleteBill)

		// Notifications
		authorized.GET("/notifications", s.listNotifications)
		authorized.GET("/mark_notification_read/:id", s.markNotificationRead)
		authorized.GET("/delete_notification/:id", s.deleteNotification)

		// Dashboard & analysis
		authorized.GET("/dashboard", s.dashboard)
		authorized.GET("/analysis", s.analysis)

		// Debts
		authorized.GET("/debts", s.listDebts)
		authorized.POST("/debts", s.addDebt)
		authorized.POST("/edit_debt/:id", s.editDebt)
		authorized.GET("/delete_debt/:id", s.deleteDebt)
	}

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.AllowOrigins == "*" {
		conf.AllowAllOrigins = true
		conf.AllowCredentials = false
	} else {
		conf.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}
	return cors.New(conf)
}

func logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
