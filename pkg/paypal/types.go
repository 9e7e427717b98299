package paypal

const (
	IntentCapture = "CAPTURE"

	UserActionPayNow = "PAY_NOW"

	OrderStatusCompleted = "COMPLETED"
)

type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type PurchaseUnitRequest struct {
	Amount      Amount `json:"amount"`
	Description string `json:"description,omitempty"`
}

type ApplicationContext struct {
	ReturnURL  string `json:"return_url,omitempty"`
	CancelURL  string `json:"cancel_url,omitempty"`
	BrandName  string `json:"brand_name,omitempty"`
	UserAction string `json:"user_action,omitempty"`
}

type OrderRequest struct {
	Intent             string                `json:"intent"`
	PurchaseUnits      []PurchaseUnitRequest `json:"purchase_units"`
	ApplicationContext *ApplicationContext   `json:"application_context,omitempty"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

type Capture struct {
	Id     string `json:"id"`
	Status string `json:"status"`
	Amount Amount `json:"amount"`
}

type Payments struct {
	Captures []Capture `json:"captures,omitempty"`
}

type PurchaseUnit struct {
	Description string    `json:"description,omitempty"`
	Amount      *Amount   `json:"amount,omitempty"`
	Payments    *Payments `json:"payments,omitempty"`
}

type Order struct {
	Id            string         `json:"id"`
	Status        string         `json:"status"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units,omitempty"`
	Links         []Link         `json:"links,omitempty"`
}

// ApprovalURL returns the buyer approval link, or empty when absent.
func (o *Order) ApprovalURL() string {
	for _, link := range o.Links {
		if link.Rel == "approve" {
			return link.Href
		}
	}
	return ""
}

// FirstCapture returns the first capture of the first purchase unit,
// which is where a single-unit checkout records its payment.
func (o *Order) FirstCapture() *Capture {
	if len(o.PurchaseUnits) == 0 {
		return nil
	}
	payments := o.PurchaseUnits[0].Payments
	if payments == nil || len(payments.Captures) == 0 {
		return nil
	}
	return &payments.Captures[0]
}
