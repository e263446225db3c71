package view

import (
	"fmt"
	"strings"

	"github.com/Liscuitle/web-larek/internal/events"
)

// Form names used in intent events.
const (
	OrderFormName    = "order"
	ContactsFormName = "contacts"
)

const errorSeparator = "; "

// Form is the shared behavior of the order and contacts forms.
type Form struct {
	component
	name   string
	title  string
	fields []string
	values map[string]string
	valid  bool
	errors string
	// extra renders form-specific lines above the inputs.
	extra func(*strings.Builder)
}

func newForm(emitter events.Emitter, name, title string, fields ...string) Form {
	return Form{
		component: newComponent(emitter),
		name:      name,
		title:     title,
		fields:    fields,
		values:    make(map[string]string, len(fields)),
	}
}

func (f *Form) Name() string { return f.name }

// Input records a typed value and emits "<form>.<field>:change".
func (f *Form) Input(field, value string) {
	f.values[field] = value
	f.render()
	f.emit(events.FieldChange(f.name, field), FieldInput{Field: field, Value: value})
}

// Submit emits "<form>:submit". It is refused while the form is invalid.
func (f *Form) Submit() bool {
	if !f.valid {
		return false
	}
	f.emit(events.Submit(f.name), nil)
	return true
}

func (f *Form) SetValid(valid bool) {
	f.valid = valid
	f.render()
}

// SetErrors shows messages joined with "; ".
func (f *Form) SetErrors(messages []string) {
	f.errors = strings.Join(messages, errorSeparator)
	f.render()
}

func (f *Form) Valid() bool { return f.valid }
func (f *Form) Errors() string { return f.errors }
func (f *Form) Value(field string) string { return f.values[field] }

func (f *Form) setValue(field, value string) {
	f.values[field] = value
}

func (f *Form) render() {
	var b strings.Builder
	b.WriteString(f.title + "\n")
	if f.extra != nil {
		f.extra(&b)
	}
	for _, field := range f.fields {
		fmt.Fprintf(&b, "%s: %s\n", field, f.values[field])
	}
	if f.errors != "" {
		fmt.Fprintf(&b, "errors: %s\n", f.errors)
	}
	button := "[Next]"
	if f.name == ContactsFormName {
		button = "[Pay]"
	}
	if !f.valid {
		button += " (unavailable)"
	}
	b.WriteString(button + "\n")
	f.fragment = Fragment(b.String())
}

// FormState is the validity part of a form render.
type FormState struct {
	Valid  bool
	Errors []string
}

// OrderFormData renders the delivery step.
type OrderFormData struct {
	FormState
	Payment string
	Address string
}

// OrderForm is the delivery step: payment method and address.
type OrderForm struct {
	Form
	payment  string
	payments []string
}

func NewOrderForm(emitter events.Emitter) *OrderForm {
	o := &OrderForm{
		Form:     newForm(emitter, OrderFormName, "Delivery", "address"),
		payments: []string{"card", "cash"},
	}
	o.extra = o.renderPayments
	o.render()
	return o
}

func (o *OrderForm) Render(data OrderFormData) Fragment {
	o.payment = data.Payment
	o.setValue("address", data.Address)
	o.valid = data.Valid
	o.errors = strings.Join(data.Errors, errorSeparator)
	o.render()
	return o.fragment
}

// SetPayment highlights a payment button without emitting.
func (o *OrderForm) SetPayment(method string) {
	o.payment = method
	o.render()
}

func (o *OrderForm) Payment() string { return o.payment }

// ChoosePayment emits payment:change. The highlight follows once the
// state accepts the method.
func (o *OrderForm) ChoosePayment(method string) {
	o.emit(events.PaymentChange, PaymentChoice{Payment: method})
}

func (o *OrderForm) renderPayments(b *strings.Builder) {
	b.WriteString("payment:")
	for _, p := range o.payments {
		if p == o.payment {
			fmt.Fprintf(b, " [*%s]", p)
		} else {
			fmt.Fprintf(b, " [ %s]", p)
		}
	}
	b.WriteString("\n")
}

// ContactsFormData renders the contacts step.
type ContactsFormData struct {
	FormState
	Email string
	Phone string
}

// ContactsForm is the contacts step: email and phone.
type ContactsForm struct {
	Form
}

func NewContactsForm(emitter events.Emitter) *ContactsForm {
	c := &ContactsForm{Form: newForm(emitter, ContactsFormName, "Contacts", "email", "phone")}
	c.render()
	return c
}

func (c *ContactsForm) Render(data ContactsFormData) Fragment {
	c.setValue("email", data.Email)
	c.setValue("phone", data.Phone)
	c.valid = data.Valid
	c.errors = strings.Join(data.Errors, errorSeparator)
	c.render()
	return c.fragment
}
