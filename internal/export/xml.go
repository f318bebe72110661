// Package export renders invoices as XML documents for interchange
// with external accounting systems.
package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/smilodon-digital/invoicing-service/internal/models"
)

const dateLayout = "2006-01-02"

// InvoiceXML builds a standalone XML document for one invoice. The
// client may be the zero value when the referenced client no longer
// exists; the invoice's own denormalized snapshot still identifies it.
func InvoiceXML(inv models.Invoice, client models.Client) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("invoice")
	root.CreateAttr("number", inv.Number)
	root.CreateAttr("status", inv.Status)

	root.CreateElement("issue_date").SetText(inv.IssueDate.Format(dateLayout))
	root.CreateElement("due_date").SetText(inv.DueDate.Format(dateLayout))
	if inv.PaidDate != nil {
		root.CreateElement("paid_date").SetText(inv.PaidDate.Format(dateLayout))
	}

	clientEl := root.CreateElement("client")
	clientEl.CreateAttr("id", inv.ClientID)
	clientEl.CreateElement("name").SetText(inv.ClientName)
	if client.Email != "" {
		clientEl.CreateElement("email").SetText(client.Email)
	}
	if client.TaxNumber != "" {
		clientEl.CreateElement("tax_number").SetText(client.TaxNumber)
	}

	itemsEl := root.CreateElement("items")
	for _, item := range inv.Items {
		itemEl := itemsEl.CreateElement("item")
		itemEl.CreateAttr("product_id", item.ProductID)
		itemEl.CreateElement("name").SetText(item.ProductName)
		itemEl.CreateElement("quantity").SetText(strconv.Itoa(item.Quantity))
		itemEl.CreateElement("unit_price").SetText(amount(item.UnitPrice))
		itemEl.CreateElement("total").SetText(amount(item.Total))
	}

	totalsEl := root.CreateElement("totals")
	totalsEl.CreateElement("subtotal").SetText(amount(inv.Subtotal))
	totalsEl.CreateElement("tax").SetText(amount(inv.Tax))
	totalsEl.CreateElement("total").SetText(amount(inv.Total))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize invoice %s: %w", inv.Number, err)
	}
	return out, nil
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
