package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ReceiptEmailData feeds the receipt confirmation template.
type ReceiptEmailData struct {
	OrderID     string
	ReceiptLine string
	ItemName    string
	Quantity    int
	TotalAmount float64
	Date        string
}

// SendReceiptEmail sends the purchase confirmation asynchronously so the
// purchase response is not held back by SMTP.
func SendReceiptEmail(to string, data ReceiptEmailData) {
	go func() {
		tmplPath := "templates/receipt_email.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("email: load template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("email: render template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		if host == "" {
			log.Printf("email: SMTP not configured, skipping receipt for %s", data.OrderID)
			return
		}

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Order confirmation #"+data.OrderID)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("email: send: %v", err)
		}
	}()
}
