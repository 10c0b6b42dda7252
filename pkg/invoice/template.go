package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
)

// Renderer produces printable HTML receipts for orders. The output is a
// pure function of the stored order snapshot and the restaurant's display
// settings.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates an invoice renderer
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("invoice").Parse(invoiceHTML)),
	}
}

type lineView struct {
	Name  string
	Qty   int
	Price string
	Total string
}

type invoiceView struct {
	ShopName  string
	Address   string
	Phone     string
	TaxNumber string
	InvoiceNo string
	Date      string
	Payment   string
	Currency  string
	Lines     []lineView
	SubTotal  string
	TaxLabel  string
	TaxAmount string
	ShowTax   bool
	Total     string
	Cancelled bool
}

func money(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

func currencySymbol(c enum.Country) string {
	switch c {
	case enum.CountryIndia:
		return "₹"
	case enum.CountryKSA:
		return "SAR "
	}
	return ""
}

// Render returns the printable HTML invoice for an order
func (r *Renderer) Render(order *entity.Order, restaurant *entity.Restaurant) ([]byte, error) {
	shopName := restaurant.Settings.ShopName
	if shopName == "" {
		shopName = restaurant.Name
	}
	address := restaurant.Settings.Address
	if address == "" {
		address = restaurant.Address
	}
	phone := restaurant.Settings.Phone
	if phone == "" {
		phone = restaurant.Phone
	}

	view := invoiceView{
		ShopName:  shopName,
		Address:   address,
		Phone:     phone,
		TaxNumber: restaurant.Settings.TaxNumber,
		InvoiceNo: order.InvoiceNo,
		Date:      order.CreatedAt.Format(time.RFC822),
		Payment:   order.PaymentMode.String(),
		Currency:  currencySymbol(restaurant.Country),
		SubTotal:  money(order.SubTotal),
		Total:     money(order.GrandTotal),
		Cancelled: order.Status == enum.OrderStatusCancelled,
	}

	if order.TaxEnabled && order.TaxAmount > 0 {
		view.ShowTax = true
		label := order.TaxType.String()
		if order.TaxInclusive {
			label += " (incl.)"
		}
		view.TaxLabel = fmt.Sprintf("%s %.2f%%", label, order.TaxRate)
		view.TaxAmount = money(order.TaxAmount)
	}

	for _, item := range order.Items {
		view.Lines = append(view.Lines, lineView{
			Name:  item.Name,
			Qty:   item.Quantity,
			Price: money(item.SellingPrice),
			Total: money(item.Total),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const invoiceHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Invoice {{.InvoiceNo}}</title>
  <style>
    body { font-family: Arial; margin: 0; padding: 16px; }
    .center { text-align: center; }
    table { width: 100%; border-collapse: collapse; margin-top: 10px; }
    th, td { border-bottom: 1px dashed #ccc; padding: 6px; text-align: left; }
    .total { font-weight: bold; font-size: 16px; }
    .cancelled { color: #c00; font-weight: bold; }
    @media print { body { margin: 0; } }
  </style>
</head>
<body>
  <div class="center">
    <h2>{{.ShopName}}</h2>
    {{if .Address}}<p>{{.Address}}</p>{{end}}
    {{if .Phone}}<p>Phone: {{.Phone}}</p>{{end}}
    {{if .TaxNumber}}<p>Tax No: {{.TaxNumber}}</p>{{end}}
  </div>

  <hr />

  {{if .Cancelled}}<p class="center cancelled">*** CANCELLED ***</p>{{end}}

  <p>
    <b>Invoice:</b> {{.InvoiceNo}}<br/>
    <b>Date:</b> {{.Date}}<br/>
    <b>Payment:</b> {{.Payment}}
  </p>

  <table>
    <thead>
      <tr><th>Item</th><th>Qty</th><th>Price</th><th>Total</th></tr>
    </thead>
    <tbody>
      {{range .Lines}}
      <tr>
        <td>{{.Name}}</td>
        <td>{{.Qty}}</td>
        <td>{{.Price}}</td>
        <td>{{.Total}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <hr />

  <p>Subtotal: {{.Currency}}{{.SubTotal}}</p>
  {{if .ShowTax}}<p>{{.TaxLabel}}: {{.Currency}}{{.TaxAmount}}</p>{{end}}
  <p class="total">Grand Total: {{.Currency}}{{.Total}}</p>

  <hr />
  <p class="center">Thank you!</p>

  <script>window.print();</script>
</body>
</html>
`
