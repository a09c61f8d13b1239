package render

const receiptHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: 'Courier New', monospace;
      width: 80mm;
      margin: 0 auto;
      padding: 5mm;
      font-size: 12px;
    }
    .header {
      text-align: center;
      margin-bottom: 10px;
    }
    .store-name {
      font-size: 18px;
      font-weight: bold;
    }
    .receipt-info {
      margin: 10px 0;
      border-top: 1px dashed #000;
      border-bottom: 1px dashed #000;
      padding: 5px 0;
    }
    .items {
      width: 100%;
      border-collapse: collapse;
    }
    .items th, .items td {
      text-align: left;
      padding: 3px 0;
    }
    .items th:last-child, .items td:last-child {
      text-align: right;
    }
    .totals {
      margin-top: 10px;
      text-align: right;
    }
    .footer {
      margin-top: 20px;
      text-align: center;
      font-size: 10px;
    }
    .bold { font-weight: bold; }
    .right { text-align: right; }
    .center { text-align: center; }
  </style>
</head>
<body>
  <div class="header">
    <div class="store-name">{{.Store.Name}}</div>
    <div>{{.Store.Address}}</div>
    <div>Phone: {{.Store.Phone}}</div>
    <div>NTN: {{.Store.NTN}}</div>
  </div>

  <div class="receipt-info">
    <div><span class="bold">Receipt:</span> {{.Receipt.ReceiptNumber}}</div>
    <div><span class="bold">Invoice:</span> {{.Receipt.InvoiceNumber}}</div>
    <div><span class="bold">Date:</span> {{date .Receipt.SaleDate}}</div>
    <div><span class="bold">Customer:</span> {{.Customer}}</div>
  </div>

  <table class="items">
    <thead>
      <tr>
        <th>Item</th>
        <th>Qty</th>
        <th>Price</th>
        <th>Total</th>
      </tr>
    </thead>
    <tbody>
      {{- range .Receipt.Items}}
      <tr>
        <td>{{.Name}}</td>
        <td>{{quantity .Quantity}}</td>
        <td>{{currency .UnitPrice}}</td>
        <td>{{currency .TotalPrice}}</td>
      </tr>
      {{- end}}
    </tbody>
  </table>

  <div class="totals">
    <div>Subtotal: {{currency .Receipt.Subtotal}}</div>
    <div>Discount: -{{currency .Receipt.DiscountAmount}}</div>
    <div>Tax: {{currency .Receipt.TaxAmount}}</div>
    <div class="bold">Total: {{currency .Receipt.TotalAmount}}</div>
    <div>Payment: {{upper .Receipt.PaymentMethod}}</div>
    <div>Status: {{status .Receipt.PaymentStatus}}</div>
  </div>

  <div class="footer">
    <div>{{.Store.ReceiptFooter}}</div>
    <div>Receipt printed on {{date .PrintedAt}}</div>
  </div>
</body>
</html>
`

const confirmationHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: 'Courier New', monospace;
      width: 80mm;
      margin: 0 auto;
      padding: 5mm;
      font-size: 12px;
    }
    .header {
      text-align: center;
      margin-bottom: 10px;
    }
    .store-name {
      font-size: 18px;
      font-weight: bold;
    }
    .confirmation-title {
      text-align: center;
      font-weight: bold;
      font-size: 14px;
      margin: 10px 0;
      padding: 5px;
      border-bottom: 1px dashed #000;
    }
    .confirmation-info {
      margin: 10px 0;
      border-top: 1px dashed #000;
      border-bottom: 1px dashed #000;
      padding: 5px 0;
    }
    .payment-details {
      margin-top: 10px;
    }
    .payment-summary {
      margin-top: 10px;
      border-top: 1px dashed #000;
      padding-top: 5px;
    }
    .line {
      display: flex;
      justify-content: space-between;
    }
    .footer {
      margin-top: 20px;
      text-align: center;
      font-size: 10px;
    }
    .bold { font-weight: bold; }
    .right { text-align: right; }
    .center { text-align: center; }
  </style>
</head>
<body>
  <div class="header">
    <div class="store-name">{{.Store.Name}}</div>
    <div>{{.Store.Address}}</div>
    <div>Phone: {{.Store.Phone}}</div>
    <div>NTN: {{.Store.NTN}}</div>
  </div>

  <div class="confirmation-title">PAYMENT CONFIRMATION</div>

  {{with .Confirmation -}}
  <div class="confirmation-info">
    <div><span class="bold">Confirmation #:</span> {{.ConfirmationNumber}}</div>
    <div><span class="bold">Original Invoice:</span> {{.OriginalSaleInvoice}}</div>
    <div><span class="bold">Original Receipt:</span> {{.OriginalSaleReceipt}}</div>
    <div><span class="bold">Date:</span> {{date .PaymentDate}}</div>
    <div><span class="bold">Customer:</span> {{.Customer.Name}}</div>
    {{- with .Customer.PhoneNumber}}
    <div><span class="bold">Phone:</span> {{.}}</div>
    {{- end}}
  </div>

  <div class="payment-details">
    <div class="bold center">PAYMENT DETAILS</div>
    <div class="line" style="margin-top: 5px;">
      <span>Payment Amount:</span>
      <span>{{currency .PaymentAmount}}</span>
    </div>
    <div class="line">
      <span>Payment Method:</span>
      <span>{{upper .PaymentMethod}}</span>
    </div>
  </div>

  <div class="payment-summary">
    <div class="line">
      <span>Remaining Balance:</span>
      <span>{{currency .RemainingAmount}}</span>
    </div>
    <div class="line">
      <span>Status:</span>
      <span>{{status .TransactionStatus}}</span>
    </div>
  </div>
  {{- end}}

  <div class="footer">
    <div>{{.Store.ConfirmationFooter}}</div>
    <div>Please keep this confirmation for your records.</div>
    <div>Payment confirmation printed on {{date .PrintedAt}}</div>
  </div>
</body>
</html>
`
