package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// QuoteStatus is the lifecycle position of a quote, from draft to delivery.
type QuoteStatus int

const (
	QuoteStatusDraft        QuoteStatus = 0
	QuoteStatusSent         QuoteStatus = 1
	QuoteStatusAccepted     QuoteStatus = 2
	QuoteStatusInProduction QuoteStatus = 3
	QuoteStatusReady        QuoteStatus = 4
	QuoteStatusDelivered    QuoteStatus = 5
	QuoteStatusRejected     QuoteStatus = 6
)

var quoteStatusNames = [...]string{"Draft", "Sent", "Accepted", "InProduction", "Ready", "Delivered", "Rejected"}

// Spanish labels used by the shop floor.
var quoteStatusLabels = [...]string{"Borrador", "Enviada", "Aceptada", "En Producción", "Listo", "Entregado", "Rechazada"}

// AllQuoteStatuses lists every status in lifecycle order.
func AllQuoteStatuses() []QuoteStatus {
	return []QuoteStatus{
		QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusInProduction,
		QuoteStatusReady, QuoteStatusDelivered, QuoteStatusRejected,
	}
}

func (s QuoteStatus) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("QuoteStatus(%d)", int(s))
	}
	return quoteStatusNames[s]
}

// Label returns the Spanish display name.
func (s QuoteStatus) Label() string {
	if !s.IsValid() {
		return s.String()
	}
	return quoteStatusLabels[s]
}

func (s QuoteStatus) IsValid() bool {
	return s >= QuoteStatusDraft && s <= QuoteStatusRejected
}

// IsTerminal reports whether no further transition is possible.
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusDelivered || s == QuoteStatusRejected
}

// IsEditable reports whether items, discount, tax and deposit may change.
func (s QuoteStatus) IsEditable() bool {
	return s == QuoteStatusDraft || s == QuoteStatusSent || s == QuoteStatusAccepted
}

// InPipeline reports whether the quote is on the production floor.
func (s QuoteStatus) InPipeline() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusInProduction || s == QuoteStatusReady
}

// ParseQuoteStatus accepts the English name, the Spanish label or the
// numeric value, case-insensitively.
func ParseQuoteStatus(v string) (QuoteStatus, error) {
	v = strings.TrimSpace(v)
	for i := range quoteStatusNames {
		if strings.EqualFold(v, quoteStatusNames[i]) || strings.EqualFold(v, quoteStatusLabels[i]) {
			return QuoteStatus(i), nil
		}
	}
	if n, err := strconv.Atoi(v); err == nil && QuoteStatus(n).IsValid() {
		return QuoteStatus(n), nil
	}
	return 0, fmt.Errorf("unknown quote status %q", v)
}

func (s QuoteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *QuoteStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !QuoteStatus(i).IsValid() {
			return fmt.Errorf("unknown quote status %d", i)
		}
		*s = QuoteStatus(i)
		return nil
	}
	parsed, err := ParseQuoteStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s QuoteStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *QuoteStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuoteStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = QuoteStatus(v)
	case int:
		*s = QuoteStatus(v)
	case int32:
		*s = QuoteStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into QuoteStatus", value)
	}
	return nil
}
