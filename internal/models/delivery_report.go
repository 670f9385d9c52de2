package models

import "strings"

type DeliveryStatus struct {
	Code       int      `json:"code"`
	Status     string   `json:"status"`
	Count      int      `json:"count"`
	Recipients []string `json:"recipients,omitempty"`
}

// DeliveryReport covers both the batch and the per-recipient report shapes.
type DeliveryReport struct {
	Type              string           `json:"type"`
	BatchID           string           `json:"batch_id"`
	Recipient         string           `json:"recipient,omitempty"`
	Code              int              `json:"code,omitempty"`
	Status            string           `json:"status,omitempty"`
	At                string           `json:"at,omitempty"`
	Statuses          []DeliveryStatus `json:"statuses,omitempty"`
	TotalMessageCount int              `json:"total_message_count,omitempty"`
	ClientReference   string           `json:"client_reference,omitempty"`
}

// StatusOther labels statuses outside the provider's documented set.
const StatusOther = "other"

var deliveryStatuses = []string{
	"Queued", "Dispatched", "Aborted", "Rejected", "Delivered",
	"Failed", "Expired", "Cancelled", "Deleted", "Unknown",
}

// RawStatus is the status as sent by the provider, possibly empty.
func (r DeliveryReport) RawStatus() string {
	if r.Status != "" {
		return r.Status
	}
	if len(r.Statuses) > 0 {
		return r.Statuses[0].Status
	}
	return ""
}

// StatusLabel maps RawStatus onto a fixed set of metric label values.
func (r DeliveryReport) StatusLabel() string {
	raw := r.RawStatus()
	if raw == "" {
		return "Unknown"
	}
	for _, s := range deliveryStatuses {
		if strings.EqualFold(raw, s) {
			return s
		}
	}
	return StatusOther
}
