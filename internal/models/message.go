package models

// InboundMessage is the Sinch MO callback payload. Pointer fields let the
// handler tell a missing key from an empty value.
type InboundMessage struct {
	ID         string  `json:"id,omitempty"`
	Type       string  `json:"type,omitempty"`
	Body       *string `json:"body"`
	To         *string `json:"to"`
	From       *string `json:"from"`
	OperatorID string  `json:"operator_id,omitempty"`
	ReceivedAt string  `json:"received_at,omitempty"`
}

// Complete reports whether body, to and from are all present.
func (m InboundMessage) Complete() bool {
	return m.Body != nil && m.To != nil && m.From != nil
}

const DeliveryReportNone = "none"

type OutboundMessage struct {
	Body           string   `json:"body"`
	To             []string `json:"to"`
	From           string   `json:"from"`
	DeliveryReport string   `json:"delivery_report"`
}

// NewReply addresses body back to the sender of in.
func NewReply(in InboundMessage, body string) OutboundMessage {
	return OutboundMessage{
		Body:           body,
		To:             []string{*in.From},
		From:           *in.To,
		DeliveryReport: DeliveryReportNone,
	}
}

// Batch is the provider's answer to a send request.
type Batch struct {
	ID        string   `json:"id"`
	To        []string `json:"to"`
	From      string   `json:"from"`
	Body      string   `json:"body"`
	Type      string   `json:"type"`
	CreatedAt string   `json:"created_at"`
	Canceled  bool     `json:"canceled"`
}
