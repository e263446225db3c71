package logic

import (
	"reflect"
	"testing"

	"github.com/Liscuitle/web-larek/internal/events"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) names() []string {
	return eventNames(r.events)
}

func (r *recorder) reset() {
	r.events = nil
}

func newRecordedState(t *testing.T) (*AppState, *recorder) {
	t.Helper()
	bus := events.NewBus()
	rec := &recorder{}
	bus.OnAll(func(e events.Event) { rec.events = append(rec.events, e) })
	return NewAppState(bus, nil), rec
}

func TestAppStateBasketScenario(t *testing.T) {
	app, rec := newRecordedState(t)
	app.SetCatalog([]Product{productA(), productB()})

	a, _ := app.Product(idA)
	if err := app.AddProductToBasket(a); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if app.GetTotal() != priceA {
		t.Errorf("expected total %d, got %d", priceA, app.GetTotal())
	}

	rec.reset()
	b, _ := app.Product(idB)
	err := app.AddProductToBasket(b)
	cmdErr, ok := AsCommandError(err)
	if !ok || cmdErr.Code != StatusFailedPrecondition {
		t.Fatalf("expected FAILED_PRECONDITION, got %v", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("rejected add emitted %v", rec.names())
	}
	if !reflect.DeepEqual(app.Basket().IDs(), []string{idA}) {
		t.Errorf("expected [a], got %v", app.Basket().IDs())
	}

	app.ClearBasket()
	if !app.IsBasketEmpty() || app.GetTotal() != 0 {
		t.Errorf("expected empty basket, got %v total %d", app.Basket().IDs(), app.GetTotal())
	}
}

func TestAppStateCreateOrderScenario(t *testing.T) {
	app, _ := newRecordedState(t)
	app.SetCatalog([]Product{productA(), productB()})

	if _, err := app.CreateOrder(); err == nil {
		t.Fatal("expected failure on fresh state")
	}

	a, _ := app.Product(idA)
	_ = app.AddProductToBasket(a)
	steps := []func() error{
		func() error { return app.SetOrderField(FieldAddress, testAddr) },
		func() error { return app.SetOrderPayment("card") },
		func() error { return app.SetContactsField(FieldEmail, testEmail) },
		func() error { return app.SetContactsField(FieldPhone, testPhone) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	order, err := app.CreateOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Order{Payment: PaymentCard, Address: testAddr, Email: testEmail, Phone: testPhone, Items: []string{idA}, Total: priceA}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("expected %#v, got %#v", want, order)
	}
}

func TestAppStateCreateOrderFailsOnEmptyBasket(t *testing.T) {
	app, _ := newRecordedState(t)
	_ = app.SetOrderField(FieldAddress, testAddr)
	_ = app.SetContactsField(FieldEmail, testEmail)
	_ = app.SetContactsField(FieldPhone, testPhone)

	_, err := app.CreateOrder()
	cmdErr, ok := AsCommandError(err)
	if !ok || cmdErr.Message != ErrMsgBasketEmpty {
		t.Errorf("expected %q, got %v", ErrMsgBasketEmpty, err)
	}
}

func TestAppStateCreateOrderPublishesMergedErrors(t *testing.T) {
	app, rec := newRecordedState(t)

	_, _ = app.CreateOrder()

	if got := rec.names(); !reflect.DeepEqual(got, []string{events.FormErrorsChange}) {
		t.Fatalf("expected one formErrors:change, got %v", got)
	}
	errs := rec.events[0].Payload.(FormErrors)
	if len(errs) != 3 {
		t.Errorf("expected address, email and phone errors, got %v", errs)
	}
}

func TestAppStateAddressRoundTrip(t *testing.T) {
	app, _ := newRecordedState(t)

	_ = app.SetOrderField(FieldAddress, "X")
	if app.OrderForm().Address != "X" {
		t.Errorf("expected address X, got %q", app.OrderForm().Address)
	}
	if _, ok := app.FormErrors()[FieldAddress]; ok {
		t.Error("expected no address error")
	}

	_ = app.SetOrderField(FieldAddress, "")
	if got := app.FormErrors()[FieldAddress]; got != ErrMsgAddressRequired {
		t.Errorf("expected %q, got %q", ErrMsgAddressRequired, got)
	}
}

func TestAppStateOrderFieldEvents(t *testing.T) {
	app, rec := newRecordedState(t)

	_ = app.SetOrderField(FieldAddress, testAddr)
	if got := rec.names(); !reflect.DeepEqual(got, []string{events.FormErrorsChange, events.OrderReady}) {
		t.Errorf("valid field: got %v", got)
	}

	rec.reset()
	_ = app.SetOrderField(FieldAddress, " ")
	if got := rec.names(); !reflect.DeepEqual(got, []string{events.FormErrorsChange}) {
		t.Errorf("blank field: got %v", got)
	}
}

func TestAppStateValidationIsRepeatable(t *testing.T) {
	app, _ := newRecordedState(t)

	first := app.ValidateContacts()
	firstErrs := app.FormErrors()
	second := app.ValidateContacts()

	if first != second || !reflect.DeepEqual(firstErrs, app.FormErrors()) {
		t.Errorf("validation changed between calls: %v / %v", firstErrs, app.FormErrors())
	}
	if app.ValidateOrder() {
		t.Error("expected delivery pass to fail without an address")
	}
}

func TestAppStateIdempotentBasketOps(t *testing.T) {
	app, rec := newRecordedState(t)

	app.RemoveProductFromBasket(productA())
	if len(rec.events) != 0 {
		t.Errorf("remove from empty basket emitted %v", rec.names())
	}

	_ = app.AddProductToBasket(productA())
	_ = app.AddProductToBasket(productA())
	if app.Basket().Len() != 1 {
		t.Errorf("expected one item, got %d", app.Basket().Len())
	}
	if got := rec.names(); !reflect.DeepEqual(got, []string{events.BasketUpdated, events.TotalUpdated}) {
		t.Errorf("expected one basket change, got %v", got)
	}
}

func TestAppStatePreview(t *testing.T) {
	app, rec := newRecordedState(t)

	if err := app.SetPreview(productC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Preview() != idC {
		t.Errorf("expected preview %q, got %q", idC, app.Preview())
	}
	payload := rec.events[0].Payload.(PreviewChange)
	if payload.Product.ID != idC {
		t.Errorf("unexpected payload %#v", payload)
	}
}

func TestAppStateResetOrder(t *testing.T) {
	app, _ := newRecordedState(t)
	_ = app.AddProductToBasket(productA())
	_ = app.SetOrderPayment(methodCash)
	_ = app.SetContactsField(FieldEmail, testEmail)

	app.ResetOrder()

	if !app.IsBasketEmpty() {
		t.Error("expected empty basket")
	}
	if app.OrderForm() != EmptyOrderForm() {
		t.Errorf("expected fresh form, got %#v", app.OrderForm())
	}
}

func TestAppStateSnapshotIsIndependent(t *testing.T) {
	app, _ := newRecordedState(t)
	_ = app.SetOrderField(FieldAddress, "")

	snap := app.Snapshot()
	snap.Errors[FieldEmail] = "changed"

	if _, ok := app.FormErrors()[FieldEmail]; ok {
		t.Error("snapshot mutation leaked into state")
	}
}

func TestCatalogPayloadIsDetachedFromState(t *testing.T) {
	bus := events.NewBus()
	app := NewAppState(bus, nil)
	bus.On(events.CatalogUpdated, func(e events.Event) {
		e.Payload.(CatalogChange).Catalog[0].Title = "changed"
	})

	app.SetCatalog([]Product{productA(), productB()})

	if got := app.Catalog()[0].Title; got != productA().Title {
		t.Errorf("subscriber changed the catalog: %q", got)
	}
}

func TestAppStateWithoutEmitter(t *testing.T) {
	app := NewAppState(nil, nil)
	if err := app.AddProductToBasket(productA()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.GetTotal() != priceA {
		t.Errorf("expected %d, got %d", priceA, app.GetTotal())
	}
}
