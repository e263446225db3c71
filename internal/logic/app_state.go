package logic

import (
	"go.uber.org/zap"

	"github.com/Liscuitle/web-larek/internal/events"
)

// AppState is the single mutable source of truth for a storefront session.
// Every mutation runs through Execute and publishes the resulting changes,
// so views only ever react to events.
type AppState struct {
	Model
	state  State
	logger *zap.Logger
}

// NewAppState creates an empty session publishing to emitter.
func NewAppState(emitter events.Emitter, logger *zap.Logger) *AppState {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppState{
		Model:  NewModel(emitter),
		state:  EmptyState(),
		logger: logger,
	}
}

// Dispatch executes a command, commits the new state and publishes its changes.
func (a *AppState) Dispatch(cmd Command) error {
	next, changes, err := Execute(a.state, cmd)
	if err != nil {
		a.logger.Debug("command rejected",
			zap.String("command", cmd.CommandName()),
			zap.Error(err))
		return err
	}
	a.state = next
	for _, c := range changes {
		a.EmitChanges(c.Name, c.Payload)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (a *AppState) Snapshot() State {
	return a.state.Clone()
}

func (a *AppState) Catalog() []Product {
	return append([]Product(nil), a.state.Catalog...)
}

func (a *AppState) Product(id string) (Product, bool) {
	return a.state.Product(id)
}

func (a *AppState) Preview() string {
	return a.state.Preview
}

func (a *AppState) Basket() Basket {
	return a.state.Basket
}

func (a *AppState) IsBasketEmpty() bool {
	return a.state.Basket.Len() == 0
}

func (a *AppState) OrderForm() OrderForm {
	return a.state.Form
}

func (a *AppState) FormErrors() FormErrors {
	return a.state.Errors.Clone()
}

func (a *AppState) SetCatalog(items []Product) {
	_ = a.Dispatch(SetCatalog{Items: items})
}

func (a *AppState) SetPreview(p Product) error {
	return a.Dispatch(SetPreview{Product: p})
}

// AddProductToBasket rejects priceless products with a FAILED_PRECONDITION error.
func (a *AppState) AddProductToBasket(p Product) error {
	return a.Dispatch(AddProduct{Product: p})
}

func (a *AppState) RemoveProductFromBasket(p Product) {
	_ = a.Dispatch(RemoveProduct{Product: p})
}

func (a *AppState) SetOrderPayment(method string) error {
	return a.Dispatch(SetPayment{Method: method})
}

func (a *AppState) SetOrderField(field Field, value string) error {
	return a.Dispatch(SetOrderField{Field: field, Value: value})
}

func (a *AppState) SetContactsField(field Field, value string) error {
	return a.Dispatch(SetContactsField{Field: field, Value: value})
}

// ValidateOrder runs the delivery pass and reports whether it is clean.
func (a *AppState) ValidateOrder() bool {
	_ = a.Dispatch(ValidateOrder{})
	return a.state.Errors.Valid()
}

// ValidateContacts runs the contacts pass and reports whether it is clean.
func (a *AppState) ValidateContacts() bool {
	_ = a.Dispatch(ValidateContacts{})
	return a.state.Errors.Valid()
}

// GetTotal sums the basket prices.
func (a *AppState) GetTotal() int64 {
	return a.state.Basket.Total()
}

// CreateOrder validates both passes and snapshots the order. It fails unless
// both passes are clean and the basket is not empty. Call it again right
// before submitting; the basket may have changed since the last call.
func (a *AppState) CreateOrder() (Order, error) {
	_ = a.Dispatch(CheckOrder{})
	return BuildOrder(a.state)
}

func (a *AppState) ClearBasket() {
	_ = a.Dispatch(ClearBasket{})
}

// ResetOrder clears the basket and the order form.
func (a *AppState) ResetOrder() {
	_ = a.Dispatch(ResetOrder{})
}
