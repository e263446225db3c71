// Package presenter is the storefront composition root. It turns state
// changes into view renders and view intents into state commands and API calls.
package presenter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Liscuitle/web-larek/internal/events"
	"github.com/Liscuitle/web-larek/internal/logic"
	"github.com/Liscuitle/web-larek/internal/view"
)

// ErrSubmitInFlight is returned when an order is submitted while another
// submission is still pending. The second submission is ignored.
var ErrSubmitInFlight = errors.New("order submission already in progress")

const (
	msgLoadFailed  = "Failed to load products. Try again later."
	msgOrderFailed = "Order failed, please try again"
)

// Panel names what the modal currently shows.
type Panel string

const (
	PanelNone     Panel = ""
	PanelPreview  Panel = "preview"
	PanelBasket   Panel = "basket"
	PanelOrder    Panel = "order"
	PanelContacts Panel = "contacts"
	PanelSuccess  Panel = "success"
)

// API is the part of the storefront API the presenter needs.
type API interface {
	GetProductList(ctx context.Context) ([]logic.Product, error)
	OrderProducts(ctx context.Context, order logic.Order) (logic.OrderResult, error)
}

// Presenter owns the views and wires them to the session state.
type Presenter struct {
	bus    *events.Bus
	app    *logic.AppState
	api    API
	logger *zap.Logger

	page         *view.Page
	modal        *view.Modal
	preview      *view.CardPreview
	basket       *view.Basket
	orderForm    *view.OrderForm
	contactsForm *view.ContactsForm
	success      *view.Success

	cards       []*view.Card
	basketLines []*view.CardBasket
	active      Panel

	ctx        context.Context
	submitting atomic.Bool
	subs       []events.Subscription
}

// New builds the views and subscribes every handler on bus. The bus must be
// the one app publishes to.
func New(bus *events.Bus, app *logic.AppState, api API, logger *zap.Logger) (*Presenter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Presenter{
		bus:          bus,
		app:          app,
		api:          api,
		logger:       logger,
		page:         view.NewPage(bus),
		modal:        view.NewModal(bus),
		preview:      view.NewCardPreview(bus),
		basket:       view.NewBasket(bus),
		orderForm:    view.NewOrderForm(bus),
		contactsForm: view.NewContactsForm(bus),
		success:      view.NewSuccess(bus),
		ctx:          context.Background(),
	}
	if err := p.wire(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *Presenter) wire() error {
	on := func(name string, h events.Handler) {
		p.subs = append(p.subs, p.bus.On(name, h))
	}

	// State changes
	on(events.CatalogUpdated, p.onCatalogUpdated)
	on(events.PreviewUpdated, p.onPreviewUpdated)
	on(events.BasketUpdated, p.onBasketChanged)
	on(events.BasketCleared, p.onBasketChanged)
	on(events.TotalUpdated, p.onTotalUpdated)
	on(events.PaymentUpdated, p.onPaymentUpdated)
	on(events.FormErrorsChange, p.onFormErrors)
	on(events.OrderReady, p.onOrderReady)

	// View intents
	on(events.CardSelect, p.onCardSelect)
	on(events.CardAdd, p.onCardAdd)
	on(events.CardRemove, p.onCardRemove)
	on(events.BasketOpen, func(events.Event) { p.showBasket() })
	on(events.OrderOpen, func(events.Event) { p.showOrderForm() })
	on(events.PaymentChange, p.onPaymentChange)
	on(events.OrderSubmit, func(events.Event) { p.showContactsForm(nil) })
	on(events.ContactsSubmit, p.onContactsSubmit)
	on(events.SuccessClose, func(events.Event) { p.modal.Close() })
	on(events.ModalOpen, func(events.Event) { p.page.SetLocked(true) })
	on(events.ModalClose, p.onModalClose)

	patterns := []struct {
		expr string
		h    events.Handler
	}{
		{`^order\..+:change$`, p.onOrderInput},
		{`^contacts\..+:change$`, p.onContactsInput},
	}
	for _, pt := range patterns {
		sub, err := p.bus.OnPattern(pt.expr, pt.h)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", pt.expr, err)
		}
		p.subs = append(p.subs, sub)
	}
	return nil
}

// Close unsubscribes every handler.
func (p *Presenter) Close() {
	for _, sub := range p.subs {
		p.bus.Off(sub)
	}
	p.subs = nil
}

// Load fetches the catalog. On failure the catalog is left empty and the
// page shows a notice; the error is still returned.
func (p *Presenter) Load(ctx context.Context) error {
	p.ctx = ctx
	items, err := p.api.GetProductList(ctx)
	if err != nil {
		p.logger.Error("failed to load products", zap.Error(err))
		p.app.SetCatalog(nil)
		p.page.SetNotice(msgLoadFailed)
		return fmt.Errorf("load catalog: %w", err)
	}
	p.page.SetNotice("")
	p.app.SetCatalog(items)
	p.logger.Info("catalog ready", zap.Int("products", len(items)))
	return nil
}

// Submit places the order built from the current session. A call made while
// another is pending returns ErrSubmitInFlight without side effects.
func (p *Presenter) Submit(ctx context.Context) (logic.OrderResult, error) {
	if !p.submitting.CompareAndSwap(false, true) {
		p.logger.Warn("submission ignored, another one is pending")
		return logic.OrderResult{}, ErrSubmitInFlight
	}
	defer p.submitting.Store(false)

	// The basket may have changed since the forms were filled.
	order, err := p.app.CreateOrder()
	if err != nil {
		p.logger.Debug("order not ready", zap.Error(err))
		return logic.OrderResult{}, err
	}

	result, err := p.api.OrderProducts(ctx, order)
	if err != nil {
		p.logger.Error("order submission failed",
			zap.Int("items", len(order.Items)),
			zap.Int64("total", order.Total),
			zap.Error(err))
		p.showContactsForm([]string{msgOrderFailed})
		return logic.OrderResult{}, fmt.Errorf("submit order: %w", err)
	}

	if result.Total == 0 {
		result.Total = order.Total
	}
	p.app.ResetOrder()
	p.success.Render(result.Total)
	p.show(PanelSuccess, p.success.Fragment())
	return result, nil
}

// Submitting reports whether a submission is pending.
func (p *Presenter) Submitting() bool {
	return p.submitting.Load()
}

// Screen renders the page with the modal on top.
func (p *Presenter) Screen() string {
	var b strings.Builder
	b.WriteString(p.page.Fragment().String())
	if p.modal.IsOpen() {
		b.WriteString(p.modal.Fragment().String())
	}
	return b.String()
}

func (p *Presenter) Active() Panel { return p.active }
func (p *Presenter) Page() *view.Page { return p.page }
func (p *Presenter) Modal() *view.Modal { return p.modal }
func (p *Presenter) Preview() *view.CardPreview { return p.preview }
func (p *Presenter) Basket() *view.Basket { return p.basket }
func (p *Presenter) OrderForm() *view.OrderForm { return p.orderForm }
func (p *Presenter) ContactsForm() *view.ContactsForm { return p.contactsForm }
func (p *Presenter) Success() *view.Success { return p.success }

// Card returns the catalog card at index i, starting at 0.
func (p *Presenter) Card(i int) (*view.Card, bool) {
	if i < 0 || i >= len(p.cards) {
		return nil, false
	}
	return p.cards[i], true
}

// BasketLine returns the basket line at index i, starting at 0.
func (p *Presenter) BasketLine(i int) (*view.CardBasket, bool) {
	if i < 0 || i >= len(p.basketLines) {
		return nil, false
	}
	return p.basketLines[i], true
}

// show puts a fragment in the modal, opening it if needed.
func (p *Presenter) show(panel Panel, frag view.Fragment) {
	p.active = panel
	if p.modal.IsOpen() {
		p.modal.SetContent(frag)
		return
	}
	p.modal.Render(frag)
}

// refresh redraws the modal after the active view changed.
func (p *Presenter) refresh() {
	if !p.modal.IsOpen() {
		return
	}
	switch p.active {
	case PanelPreview:
		p.modal.SetContent(p.preview.Fragment())
	case PanelBasket:
		p.modal.SetContent(p.basket.Fragment())
	case PanelOrder:
		p.modal.SetContent(p.orderForm.Fragment())
	case PanelContacts:
		p.modal.SetContent(p.contactsForm.Fragment())
	}
}

func (p *Presenter) onCatalogUpdated(e events.Event) {
	change, ok := e.Payload.(logic.CatalogChange)
	if !ok {
		return
	}
	p.cards = make([]*view.Card, len(change.Catalog))
	frags := make([]view.Fragment, len(change.Catalog))
	for i, product := range change.Catalog {
		card := view.NewCard(p.bus)
		frags[i] = card.Render(product)
		p.cards[i] = card
	}
	p.page.SetCatalog(frags)
}

func (p *Presenter) onPreviewUpdated(e events.Event) {
	change, ok := e.Payload.(logic.PreviewChange)
	if !ok {
		return
	}
	p.preview.Render(change.Product, p.app.Basket().Has(change.Product.ID))
	p.show(PanelPreview, p.preview.Fragment())
}

func (p *Presenter) onBasketChanged(events.Event) {
	p.page.SetCounter(p.app.Basket().Len())
	p.renderBasket()
	if p.active == PanelPreview {
		p.preview.SetInBasket(p.app.Basket().Has(p.preview.Product().ID))
	}
	p.refresh()
}

func (p *Presenter) onTotalUpdated(e events.Event) {
	if change, ok := e.Payload.(logic.TotalChange); ok {
		p.basket.SetTotal(change.Total)
		p.refresh()
	}
}

func (p *Presenter) onPaymentUpdated(e events.Event) {
	if change, ok := e.Payload.(logic.PaymentChange); ok {
		p.orderForm.SetPayment(string(change.Payment))
		p.refresh()
	}
}

func (p *Presenter) onFormErrors(e events.Event) {
	errs, ok := e.Payload.(logic.FormErrors)
	if !ok {
		return
	}
	form := p.activeForm()
	if form == nil {
		return
	}
	form.SetErrors(errs.Messages())
	form.SetValid(errs.Valid())
	p.refresh()
}

func (p *Presenter) onOrderReady(events.Event) {
	if form := p.activeForm(); form != nil {
		form.SetValid(true)
		p.refresh()
	}
}

func (p *Presenter) onCardSelect(e events.Event) {
	product, ok := e.Payload.(logic.Product)
	if !ok {
		return
	}
	if err := p.app.SetPreview(product); err != nil {
		p.logger.Warn("cannot preview product", zap.String("product_id", product.ID), zap.Error(err))
	}
}

func (p *Presenter) onCardAdd(e events.Event) {
	product, ok := e.Payload.(logic.Product)
	if !ok {
		return
	}
	if err := p.app.AddProductToBasket(product); err != nil {
		p.logger.Info("product not added", zap.String("product_id", product.ID), zap.Error(err))
		p.page.SetNotice(err.Error())
		return
	}
	p.page.SetNotice("")
}

func (p *Presenter) onCardRemove(e events.Event) {
	if product, ok := e.Payload.(logic.Product); ok {
		p.app.RemoveProductFromBasket(product)
	}
}

func (p *Presenter) onOrderInput(e events.Event) {
	in, ok := e.Payload.(view.FieldInput)
	if !ok {
		return
	}
	if err := p.app.SetOrderField(logic.Field(in.Field), in.Value); err != nil {
		p.logger.Warn("order field rejected", zap.String("field", in.Field), zap.Error(err))
	}
}

func (p *Presenter) onContactsInput(e events.Event) {
	in, ok := e.Payload.(view.FieldInput)
	if !ok {
		return
	}
	if err := p.app.SetContactsField(logic.Field(in.Field), in.Value); err != nil {
		p.logger.Warn("contacts field rejected", zap.String("field", in.Field), zap.Error(err))
	}
}

func (p *Presenter) onPaymentChange(e events.Event) {
	choice, ok := e.Payload.(view.PaymentChoice)
	if !ok {
		return
	}
	if err := p.app.SetOrderPayment(choice.Payment); err != nil {
		p.logger.Warn("payment rejected", zap.String("payment", choice.Payment), zap.Error(err))
		p.orderForm.SetPayment(string(p.app.OrderForm().Payment))
		p.refresh()
		return
	}
	p.app.ValidateOrder()
}

func (p *Presenter) onContactsSubmit(events.Event) {
	if _, err := p.Submit(p.ctx); err != nil && !errors.Is(err, ErrSubmitInFlight) {
		p.logger.Debug("submission did not complete", zap.Error(err))
	}
}

func (p *Presenter) onModalClose(events.Event) {
	p.active = PanelNone
	p.page.SetLocked(false)
}

func (p *Presenter) activeForm() *view.Form {
	switch p.active {
	case PanelOrder:
		return &p.orderForm.Form
	case PanelContacts:
		return &p.contactsForm.Form
	}
	return nil
}

func (p *Presenter) renderBasket() {
	items := p.app.Basket().Items()
	p.basketLines = make([]*view.CardBasket, len(items))
	frags := make([]view.Fragment, len(items))
	for i, item := range items {
		line := view.NewCardBasket(p.bus)
		frags[i] = line.Render(item, i+1)
		p.basketLines[i] = line
	}
	p.basket.Render(frags, p.app.GetTotal())
}

func (p *Presenter) showBasket() {
	p.renderBasket()
	p.show(PanelBasket, p.basket.Fragment())
}

func (p *Presenter) showOrderForm() {
	form := p.app.OrderForm()
	p.orderForm.Render(view.OrderFormData{
		FormState: view.FormState{Valid: logic.ValidateOrderForm(form).Valid()},
		Payment:   string(form.Payment),
		Address:   form.Address,
	})
	p.show(PanelOrder, p.orderForm.Fragment())
}

func (p *Presenter) showContactsForm(errs []string) {
	form := p.app.OrderForm()
	p.contactsForm.Render(view.ContactsFormData{
		FormState: view.FormState{
			Valid:  logic.ValidateContactsForm(form).Valid(),
			Errors: errs,
		},
		Email: form.Email,
		Phone: form.Phone,
	})
	p.show(PanelContacts, p.contactsForm.Fragment())
}
