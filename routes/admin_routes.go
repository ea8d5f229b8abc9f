package routes

import (
	"github.com/campbaraisa/camp_admin/handlers"
	"github.com/campbaraisa/camp_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admins := api.Group("/admins", middleware.Protected(), middleware.ApprovedAdminRequired())
	admins.Get("", handlers.GetAllAdmins)
	admins.Post("", handlers.CreateAdmin)
	admins.Get("/pending", handlers.GetPendingAdmins)
	admins.Put("/:adminId/approve", handlers.ApproveAdmin)
	admins.Delete("/:adminId/deny", handlers.DenyAdmin)
	admins.Put("/:adminId", handlers.UpdateAdmin)
	admins.Delete("/:adminId", handlers.DeleteAdmin)

	settings := api.Group("/settings", middleware.Protected(), middleware.ApprovedAdminRequired())
	settings.Get("", handlers.GetSettings)
	settings.Put("", handlers.UpdateSettings)

	fees := api.Group("/fees", middleware.Protected(), middleware.ApprovedAdminRequired())
	fees.Get("", handlers.GetFees)
	fees.Post("", handlers.CreateFee)
	fees.Put("/:feeId", handlers.UpdateFee)
	fees.Delete("/:feeId", handlers.DeleteFee)

	expenses := api.Group("/expenses", middleware.Protected(), middleware.ApprovedAdminRequired())
	expenses.Get("", handlers.GetExpenses)
	expenses.Post("", handlers.CreateExpense)
	expenses.Get("/categories", handlers.GetExpenseCategories)
	expenses.Put("/:expenseId", handlers.UpdateExpense)
	expenses.Delete("/:expenseId", handlers.DeleteExpense)

	dashboard := api.Group("/dashboard", middleware.Protected(), middleware.ApprovedAdminRequired())
	dashboard.Get("/stats", handlers.GetDashboardStats)
	dashboard.Get("/financial-summary", handlers.GetFinancialSummary)

	reports := api.Group("/reports", middleware.Protected(), middleware.ApprovedAdminRequired())
	reports.Get("", handlers.GetSavedReports)
	reports.Post("", handlers.CreateSavedReport)
	reports.Get("/:reportId/run", handlers.RunSavedReport)
	reports.Delete("/:reportId", handlers.DeleteSavedReport)

	activity := api.Group("/activity", middleware.Protected(), middleware.ApprovedAdminRequired())
	activity.Get("", handlers.GetActivityFeed)
}
