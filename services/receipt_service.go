package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/anjiri1684/tutor_marketplace/configs"
	"github.com/anjiri1684/tutor_marketplace/database"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateReceipt renders a PDF receipt for a settled transaction and
// stores its URL on the transaction row. Meant to run in the
// background after RecordPayment; failures are logged, never surfaced
// to the payment write.
func GenerateReceipt(transactionID uuid.UUID) {
	var txn models.Transaction
	if err := database.DB.
		Preload("Booking.Lesson").
		Preload("Booking.Student").
		Preload("Booking.Teacher").
		First(&txn, "id = ?", transactionID).Error; err != nil {
		log.Printf("🔥 Receipt: transaction %s not found: %v", transactionID, err)
		return
	}

	if txn.PaymentStatus != models.PaymentStatusCompleted {
		return
	}
	if txn.ReceiptURL != nil {
		return
	}

	htmlData, err := generateReceiptHTML(txn)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, txn.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload receipt to Cloudinary: %v", err)
		return
	}

	if err := database.DB.Model(&txn).Update("receipt_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to record receipt URL for transaction %s: %v", txn.ID, err)
		return
	}
	log.Printf("✅ Generated receipt for transaction %s.", txn.ID)
}

func generateReceiptHTML(txn models.Transaction) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName   string
		TeacherName   string
		LessonTitle   string
		TotalAmount   string
		Commission    string
		TeacherAmount string
		Method        string
		SettledDate   string
	}{
		StudentName:   txn.Booking.Student.FullName,
		TeacherName:   txn.Booking.Teacher.FullName,
		LessonTitle:   txn.Booking.Lesson.Title,
		TotalAmount:   fmt.Sprintf("%.2f", txn.TotalAmount),
		Commission:    fmt.Sprintf("%.2f", txn.PlatformCommission),
		TeacherAmount: fmt.Sprintf("%.2f", txn.TeacherAmount),
		Method:        txn.PaymentMethod,
		SettledDate:   txn.UpdatedAt.UTC().Format("January 2, 2006"),
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

func uploadToCloudinary(fileBytes []byte, transactionID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", transactionID, uuid.New().String()),
		Folder:       "tutor_marketplace_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
