// Package printing renders invoices as self-contained printable documents.
package printing

import (
	"bytes"
	"html/template"
	"time"

	"amsi_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RenderInvoice is a pure function from an invoice and its customer snapshot
// to a standalone printable HTML document. It reads nothing else and has no
// side effects.
func RenderInvoice(inv entities.Invoice, cust entities.Customer) (string, error) {
	var buf bytes.Buffer
	err := invoiceTmpl.Execute(&buf, invoiceView{
		Invoice:  inv,
		Customer: cust,
		Now:      time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

type invoiceView struct {
	Invoice  entities.Invoice
	Customer entities.Customer
	Now      time.Time
}

func lineTotal(it entities.LineItem) decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2)
}

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"lineTotal": lineTotal,
	"date":      func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"money":     func(d decimal.Decimal) string { return "$" + d.StringFixed(2) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.Invoice.ID}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #222; }
h1 { margin-bottom: 0; }
.muted { color: #666; font-size: 0.9em; }
table { width: 100%; border-collapse: collapse; margin-top: 24px; }
th, td { text-align: left; padding: 8px; border-bottom: 1px solid #ddd; }
td.num, th.num { text-align: right; }
.totals { margin-top: 16px; float: right; width: 280px; }
.totals td { border: none; padding: 4px 8px; }
.totals tr.grand td { font-weight: bold; border-top: 2px solid #222; }
.status { text-transform: uppercase; letter-spacing: 1px; }
</style>
</head>
<body>
<h1>AMSI Security Services</h1>
<p class="muted">24/7 Alarm Monitoring &amp; Dispatch</p>

<h2>Invoice {{.Invoice.ID}}</h2>
<p class="status">{{.Invoice.Status}}</p>
<p class="muted">Issued {{date .Invoice.CreatedAt}} &middot; Due {{date .Invoice.DueDate}} &middot; Printed {{date .Now}}</p>

<h3>Bill To</h3>
<p>{{.Customer.Name}}<br>
{{if .Customer.Address}}{{.Customer.Address}}<br>{{end}}
{{.Customer.Email}}</p>

<table>
<tr><th>Description</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Amount</th></tr>
{{range .Invoice.Items}}
<tr><td>{{.Description}}</td><td class="num">{{.Quantity}}</td><td class="num">{{money .UnitPrice}}</td><td class="num">{{money (lineTotal .)}}</td></tr>
{{end}}
</table>

<table class="totals">
<tr><td>Subtotal</td><td class="num">{{money .Invoice.Subtotal}}</td></tr>
<tr><td>Tax (8%)</td><td class="num">{{money .Invoice.Tax}}</td></tr>
<tr class="grand"><td>Total</td><td class="num">{{money .Invoice.TotalAmount}}</td></tr>
</table>
</body>
</html>
`))
