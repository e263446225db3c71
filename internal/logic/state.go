package logic

// Field names an order form input.
type Field string

const (
	FieldPayment Field = "payment"
	FieldAddress Field = "address"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// fieldOrder fixes the display order of form errors.
var fieldOrder = []Field{FieldPayment, FieldAddress, FieldEmail, FieldPhone}

// Payment is the payment method chosen on the order form.
type Payment string

const (
	PaymentCard Payment = "card"
	PaymentCash Payment = "cash"
)

// DefaultPayment is preselected on a fresh order form.
const DefaultPayment = PaymentCard

// ParsePayment validates a payment method name.
func ParsePayment(name string) (Payment, error) {
	switch p := Payment(name); p {
	case PaymentCard, PaymentCash:
		return p, nil
	default:
		return "", NewInvalidArgumentf("%s: %q", ErrMsgUnknownPayment, name)
	}
}

// OrderForm holds the delivery and contact fields being edited.
type OrderForm struct {
	Payment Payment
	Address string
	Email   string
	Phone   string
}

// EmptyOrderForm returns a form with the default payment preselected.
func EmptyOrderForm() OrderForm {
	return OrderForm{Payment: DefaultPayment}
}

// FormErrors maps a field to its validation message. Empty means valid.
type FormErrors map[Field]string

// Valid reports whether no field has an error.
func (e FormErrors) Valid() bool {
	return len(e) == 0
}

// Messages returns error messages in form field order.
func (e FormErrors) Messages() []string {
	var out []string
	for _, f := range fieldOrder {
		if msg, ok := e[f]; ok {
			out = append(out, msg)
		}
	}
	return out
}

// Clone returns an independent copy.
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

func (e FormErrors) add(field Field, err *CommandError) {
	if err != nil {
		e[field] = err.Message
	}
}

// Order is the snapshot sent to the order endpoint.
type Order struct {
	Payment Payment  `json:"payment"`
	Address string   `json:"address"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Items   []string `json:"items"`
	Total   int64    `json:"total"`
}

// OrderResult is the order endpoint's confirmation.
type OrderResult struct {
	ID    string `json:"id"`
	Total int64  `json:"total"`
}

// State is the whole storefront session.
type State struct {
	Catalog []Product
	Preview string
	Basket  Basket
	Form    OrderForm
	Errors  FormErrors
}

// EmptyState returns a fresh session state.
func EmptyState() State {
	return State{
		Form:   EmptyOrderForm(),
		Errors: FormErrors{},
	}
}

// Clone returns a copy that can be mutated without affecting s.
// Products and the basket are immutable, so they are shared.
func (s State) Clone() State {
	c := s
	c.Errors = s.Errors.Clone()
	return c
}

// Product looks up a catalog product by ID.
func (s State) Product(id string) (Product, bool) {
	for _, p := range s.Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// OrderSnapshot combines the form fields with the current basket.
func (s State) OrderSnapshot() Order {
	return Order{
		Payment: s.Form.Payment,
		Address: s.Form.Address,
		Email:   s.Form.Email,
		Phone:   s.Form.Phone,
		Items:   s.Basket.IDs(),
		Total:   s.Basket.Total(),
	}
}

// BuildOrder gates submission: both form passes must be clean and the
// basket must hold at least one product.
func BuildOrder(s State) (Order, error) {
	errs := ValidateOrderForm(s.Form)
	for k, v := range ValidateContactsForm(s.Form) {
		errs[k] = v
	}
	if !errs.Valid() {
		return Order{}, NewFailedPrecondition(ErrMsgOrderInvalid)
	}
	if err := RequireNotEmpty(s.Basket.items, ErrMsgBasketEmpty); err != nil {
		return Order{}, err
	}
	return s.OrderSnapshot(), nil
}
