package service

import (
	"github.com/linkpay/webclient/internal/model"
	"github.com/linkpay/webclient/pgk/format"
	"github.com/linkpay/webclient/pgk/share"
)

const placeholder = "—"

// rows projects the cached order list into display rows.
func (s *Service) rows(sess *model.Session) []model.OrderRow {
	now := s.now()

	rows := make([]model.OrderRow, 0, len(sess.Rows))
	for _, o := range sess.Rows {
		customer := placeholder
		if o.CustomerEmail != nil && *o.CustomerEmail != "" {
			customer = *o.CustomerEmail
		}

		description := ""
		if o.Description != nil {
			description = *o.Description
		}

		amount := format.Amount(o.Amount, o.Currency)
		link := share.PaymentLink(s.origin, o.ID)

		rows = append(rows, model.OrderRow{
			ID:             o.ID,
			Customer:       customer,
			Amount:         o.Amount,
			AmountDisplay:  amount,
			Description:    description,
			Currency:       o.Currency,
			Status:         o.Status,
			Bucket:         model.ClassifyStatus(o.Status),
			CreatedDisplay: format.DateTime(o.Created()),
			ExpiresIn:      placeholder,
			PayLink:        link,
			WhatsAppURL:    share.WhatsAppURL(share.WhatsAppText(customer, amount, link)),
			Copied:         sess.CopiedID == o.ID && now.Before(sess.CopiedUntil),
		})
	}

	return rows
}
