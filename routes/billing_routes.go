package routes

import (
	"github.com/campbaraisa/camp_admin/handlers"
	"github.com/campbaraisa/camp_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func BillingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	invoices := api.Group("/invoices", middleware.Protected(), middleware.ApprovedAdminRequired())
	invoices.Post("", handlers.CreateInvoice)
	invoices.Get("", handlers.GetInvoices)
	invoices.Get("/reminders/due", handlers.GetRemindersDue)
	invoices.Get("/export", handlers.ExportBillingCSV)
	invoices.Get("/:invoiceId", handlers.GetInvoice)
	invoices.Put("/:invoiceId", handlers.UpdateInvoice)
	invoices.Delete("/:invoiceId", handlers.DeleteInvoice)
	invoices.Get("/:invoiceId/pdf", handlers.DownloadInvoicePDF)
	invoices.Post("/:invoiceId/send-reminder", handlers.SendInvoiceReminder)

	paymentsGroup := api.Group("/payments", middleware.Protected(), middleware.ApprovedAdminRequired())
	paymentsGroup.Post("", handlers.CreatePayment)
	paymentsGroup.Get("", handlers.GetPayments)
	paymentsGroup.Get("/calculate-fee", handlers.CalculatePaymentFee)
	paymentsGroup.Post("/stripe/checkout", handlers.CreateStripeCheckout)
	paymentsGroup.Get("/stripe/status/:sessionId", handlers.GetStripeCheckoutStatus)

	// Signed by the gateway, not by an admin session.
	api.Post("/webhooks/stripe", handlers.StripeWebhook)
}
