package mailer

import (
	"html/template"
	"strings"

	"storefront-backend/internal/models"
	"storefront-backend/internal/pricing"
)

var templateFuncs = template.FuncMap{
	"price": pricing.FormatPrice,
	"lineTotal": func(item models.OrderItem) float64 {
		return item.Price * float64(item.Quantity)
	},
}

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(templateFuncs).Parse(`
<h1>Thank you for your order!</h1>
<p>Order ID: {{.Order.OrderID}}</p>
<p>Total: {{price .Order.TotalAmount}}</p>
<h2>Items:</h2>
<ul>
{{range .Order.Items}}  <li>{{.Name}} x {{.Quantity}} - {{price (lineTotal .)}}</li>
{{end}}</ul>
<p>We'll keep you updated on your order status.</p>
`))

var adminNotificationTmpl = template.Must(template.New("admin").Funcs(templateFuncs).Parse(`
<h2>New Order Notification</h2>
<p><strong>Order ID:</strong> {{.Order.OrderID}}</p>
<p><strong>Customer:</strong> {{.Order.CustomerName}}</p>
<p><strong>Email:</strong> {{.Order.Email}}</p>
<p><strong>Contact:</strong> {{.Order.ContactNumber}}</p>
<p><strong>Address:</strong> {{.Order.Address}}</p>
<p><strong>Payment Method:</strong> {{.Order.PaymentMethod}}</p>
<h3>Order Items:</h3>
<ul>
{{range .Order.Items}}  <li>{{.Name}} x {{.Quantity}} - {{price (lineTotal .)}}</li>
{{end}}</ul>
<p><strong>Total Amount:</strong> {{price .Order.TotalAmount}}</p>
<p>Please check the admin dashboard for more details.</p>
`))

var invoiceTmpl = template.Must(template.New("invoice").Funcs(templateFuncs).Parse(`
<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { text-align: center; margin-bottom: 30px; }
    .total { text-align: right; font-weight: bold; }
    table { width: 100%; border-collapse: collapse; }
    th, td { padding: 10px; text-align: left; border-bottom: 1px solid #ddd; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Order Invoice</h1>
      <p>Order #{{.Order.OrderID}}</p>
      <p>{{.Order.Date.Format "January 2, 2006"}}</p>
    </div>
    <div class="order-details">
      <h2>Customer Details</h2>
      <p><strong>Name:</strong> {{.Order.CustomerName}}</p>
      <p><strong>Email:</strong> {{.Order.Email}}</p>
      <p><strong>Address:</strong> {{.Order.Address}}</p>
      <p><strong>Contact:</strong> {{.Order.ContactNumber}}</p>
    </div>
    <div class="items">
      <h2>Order Items</h2>
      <table>
        <thead>
          <tr><th>Item</th><th>Quantity</th><th>Price</th><th>Total</th></tr>
        </thead>
        <tbody>
{{range .Order.Items}}          <tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{price .Price}}</td><td>{{price (lineTotal .)}}</td></tr>
{{end}}        </tbody>
      </table>
    </div>
    <div class="total">
      <p>Subtotal: {{price .Subtotal}}</p>
      <p>Shipping: {{.Shipping}}</p>
      <p>Total: {{price .Total}}</p>
    </div>
  </div>
</body>
</html>
`))

var thankYouTmpl = template.Must(template.New("thankyou").Funcs(templateFuncs).Parse(`
<h1>Thank you, {{.Order.CustomerName}}!</h1>
<p>Your order {{.Order.OrderID}} is complete. We hope you love it.</p>
<p>We'd be delighted to see you again at {{.StoreName}}.</p>
`))

type templateData struct {
	Order     *models.Order
	StoreName string
	Subtotal  float64
	Shipping  string
	Total     float64
}

func render(tmpl *template.Template, data templateData) (string, error) {
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

func renderConfirmation(order *models.Order) (string, error) {
	return render(confirmationTmpl, templateData{Order: order})
}

func renderAdminNotification(order *models.Order) (string, error) {
	return render(adminNotificationTmpl, templateData{Order: order})
}

func renderInvoice(order *models.Order) (string, error) {
	subtotal := pricing.ItemsSubtotal(order.Items)
	fee := pricing.ShippingFee(subtotal)
	shipping := pricing.FormatPrice(fee)
	if fee == 0 {
		shipping = "Free"
	}
	return render(invoiceTmpl, templateData{
		Order:    order,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + fee,
	})
}

func renderThankYou(order *models.Order, storeName string) (string, error) {
	return render(thankYouTmpl, templateData{Order: order, StoreName: storeName})
}
