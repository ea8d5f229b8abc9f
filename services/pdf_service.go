package services

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/campbaraisa/camp_admin/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"gorm.io/gorm"
)

// GenerateInvoicePDF renders a printable invoice for download or mailing.
func GenerateInvoicePDF(db *gorm.DB, invoice *models.Invoice, camper *models.Camper) ([]byte, error) {
	htmlData, err := generateInvoiceHTML(db, invoice, camper)
	if err != nil {
		return nil, err
	}
	return generatePDFFromHTML(htmlData)
}

func generateInvoiceHTML(db *gorm.DB, invoice *models.Invoice, camper *models.Camper) (string, error) {
	tmpl, err := template.ParseFiles("templates/invoice.html")
	if err != nil {
		return "", err
	}

	camp := CampMergeData(db)
	data := struct {
		CampName    string
		CampEmail   string
		CampPhone   string
		InvoiceID   string
		CamperName  string
		ParentName  string
		Description string
		Amount      string
		PaidAmount  string
		BalanceDue  string
		DueDate     string
		Status      string
		IssuedDate  string
	}{
		CampName:    camp["camp_name"],
		CampEmail:   camp["camp_email"],
		CampPhone:   camp["camp_phone"],
		InvoiceID:   invoice.ID.String(),
		CamperName:  camper.FullName(),
		ParentName:  camper.ParentName(),
		Description: invoice.Description,
		Amount:      FormatCurrency(invoice.Amount),
		PaidAmount:  FormatCurrency(invoice.PaidAmount),
		BalanceDue:  FormatCurrency(invoice.Amount - invoice.PaidAmount),
		DueDate:     strValue(invoice.DueDate),
		Status:      invoice.Status,
		IssuedDate:  invoice.CreatedAt.Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, 30*time.Second)
	defer cancelTimeout()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
