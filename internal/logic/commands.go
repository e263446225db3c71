package logic

import (
	"github.com/Liscuitle/web-larek/internal/events"
)

// Change event payloads.
type (
	CatalogChange struct{ Catalog []Product }
	PreviewChange struct{ Product Product }
	BasketChange  struct{ Basket []Product }
	BasketCleared struct{}
	PaymentChange struct{ Payment Payment }
	TotalChange   struct{ Total int64 }
)

// Command describes one mutation of the session state.
type Command interface {
	CommandName() string
	apply(s *State) ([]events.Event, error)
}

// Execute applies cmd to a copy of state. On success it returns the new
// state and the change events describing it; on rejection the input
// state is returned unchanged with no events.
func Execute(state State, cmd Command) (State, []events.Event, error) {
	next := state.Clone()
	changes, err := cmd.apply(&next)
	if err != nil {
		return state, nil, err
	}
	return next, changes, nil
}

func change(name string, payload any) events.Event {
	return events.Event{Name: name, Payload: payload}
}

func basketChanges(s *State) []events.Event {
	return []events.Event{
		change(events.BasketUpdated, BasketChange{Basket: s.Basket.Items()}),
		change(events.TotalUpdated, TotalChange{Total: s.Basket.Total()}),
	}
}

// validationChanges records a pass result and reports it, adding an
// order:ready signal when the pass is clean.
func validationChanges(s *State, errs FormErrors, signalReady bool) []events.Event {
	s.Errors = errs
	out := []events.Event{change(events.FormErrorsChange, errs.Clone())}
	if signalReady && errs.Valid() {
		out = append(out, change(events.OrderReady, s.OrderSnapshot()))
	}
	return out
}

// SetCatalog replaces the catalog wholesale.
type SetCatalog struct{ Items []Product }

func (SetCatalog) CommandName() string { return "SetCatalog" }

func (c SetCatalog) apply(s *State) ([]events.Event, error) {
	s.Catalog = append([]Product(nil), c.Items...)
	return []events.Event{change(events.CatalogUpdated, CatalogChange{Catalog: append([]Product(nil), s.Catalog...)})}, nil
}

// SetPreview points the preview at a product.
type SetPreview struct{ Product Product }

func (SetPreview) CommandName() string { return "SetPreview" }

func (c SetPreview) apply(s *State) ([]events.Event, error) {
	if err := RequireNotEmptyString(c.Product.ID, ErrMsgProductIDRequired); err != nil {
		return nil, err
	}
	s.Preview = c.Product.ID
	return []events.Event{change(events.PreviewUpdated, PreviewChange{Product: c.Product})}, nil
}

// AddProduct puts a priced product in the basket. Adding a product that is
// already there changes nothing.
type AddProduct struct{ Product Product }

func (AddProduct) CommandName() string { return "AddProduct" }

func (c AddProduct) apply(s *State) ([]events.Event, error) {
	if err := RequireNotEmptyString(c.Product.ID, ErrMsgProductIDRequired); err != nil {
		return nil, err
	}
	if err := RequirePriced(c.Product, ErrMsgProductPriceless); err != nil {
		return nil, err
	}
	if s.Basket.Has(c.Product.ID) {
		return nil, nil
	}
	s.Basket = s.Basket.with(c.Product)
	return basketChanges(s), nil
}

// RemoveProduct takes a product out of the basket. Removing an absent
// product changes nothing.
type RemoveProduct struct{ Product Product }

func (RemoveProduct) CommandName() string { return "RemoveProduct" }

func (c RemoveProduct) apply(s *State) ([]events.Event, error) {
	if !s.Basket.Has(c.Product.ID) {
		return nil, nil
	}
	s.Basket = s.Basket.without(c.Product.ID)
	return basketChanges(s), nil
}

// ClearBasket empties the basket.
type ClearBasket struct{}

func (ClearBasket) CommandName() string { return "ClearBasket" }

func (ClearBasket) apply(s *State) ([]events.Event, error) {
	s.Basket = Basket{}
	return []events.Event{
		change(events.BasketCleared, BasketCleared{}),
		change(events.TotalUpdated, TotalChange{Total: 0}),
	}, nil
}

// ResetOrder clears the basket and the order form after a completed order.
type ResetOrder struct{}

func (ResetOrder) CommandName() string { return "ResetOrder" }

func (ResetOrder) apply(s *State) ([]events.Event, error) {
	s.Basket = Basket{}
	s.Form = EmptyOrderForm()
	s.Errors = FormErrors{}
	return []events.Event{
		change(events.BasketCleared, BasketCleared{}),
		change(events.TotalUpdated, TotalChange{Total: 0}),
		change(events.PaymentUpdated, PaymentChange{Payment: s.Form.Payment}),
		change(events.FormErrorsChange, FormErrors{}),
	}, nil
}

// SetPayment selects the payment method.
type SetPayment struct{ Method string }

func (SetPayment) CommandName() string { return "SetPayment" }

func (c SetPayment) apply(s *State) ([]events.Event, error) {
	p, err := ParsePayment(c.Method)
	if err != nil {
		return nil, err
	}
	s.Form.Payment = p
	return []events.Event{change(events.PaymentUpdated, PaymentChange{Payment: p})}, nil
}

// SetOrderField assigns a delivery field and runs the delivery pass.
// An empty payment is accepted and reported by the pass.
type SetOrderField struct {
	Field Field
	Value string
}

func (SetOrderField) CommandName() string { return "SetOrderField" }

func (c SetOrderField) apply(s *State) ([]events.Event, error) {
	if err := RequireOneOf(c.Field, []Field{FieldAddress, FieldPayment}, ErrMsgUnknownOrderField); err != nil {
		return nil, err
	}
	switch c.Field {
	case FieldAddress:
		s.Form.Address = c.Value
	case FieldPayment:
		if c.Value == "" {
			s.Form.Payment = ""
			break
		}
		p, err := ParsePayment(c.Value)
		if err != nil {
			return nil, err
		}
		s.Form.Payment = p
	}
	return validationChanges(s, ValidateOrderForm(s.Form), true), nil
}

// SetContactsField assigns a contact field and runs the contacts pass.
type SetContactsField struct {
	Field Field
	Value string
}

func (SetContactsField) CommandName() string { return "SetContactsField" }

func (c SetContactsField) apply(s *State) ([]events.Event, error) {
	if err := RequireOneOf(c.Field, []Field{FieldEmail, FieldPhone}, ErrMsgUnknownContactField); err != nil {
		return nil, err
	}
	switch c.Field {
	case FieldEmail:
		s.Form.Email = c.Value
	case FieldPhone:
		s.Form.Phone = c.Value
	}
	return validationChanges(s, ValidateContactsForm(s.Form), true), nil
}

// ValidateOrder runs the delivery pass on its own.
type ValidateOrder struct{}

func (ValidateOrder) CommandName() string { return "ValidateOrder" }

func (ValidateOrder) apply(s *State) ([]events.Event, error) {
	return validationChanges(s, ValidateOrderForm(s.Form), false), nil
}

// ValidateContacts runs the contacts pass on its own.
type ValidateContacts struct{}

func (ValidateContacts) CommandName() string { return "ValidateContacts" }

func (ValidateContacts) apply(s *State) ([]events.Event, error) {
	return validationChanges(s, ValidateContactsForm(s.Form), false), nil
}

// CheckOrder runs both passes and reports the merged result.
type CheckOrder struct{}

func (CheckOrder) CommandName() string { return "CheckOrder" }

func (CheckOrder) apply(s *State) ([]events.Event, error) {
	errs := ValidateOrderForm(s.Form)
	for k, v := range ValidateContactsForm(s.Form) {
		errs[k] = v
	}
	return validationChanges(s, errs, false), nil
}
