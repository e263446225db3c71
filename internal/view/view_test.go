package view

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/Liscuitle/web-larek/internal/events"
	"github.com/Liscuitle/web-larek/internal/logic"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) Emit(name string, payload any) {
	r.events = append(r.events, events.Event{Name: name, Payload: payload})
}

func (r *recorder) names() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func price(v int64) *int64 { return &v }

var (
	alpha = logic.Product{ID: "a", Title: "Alpha", Category: "софт-скил", Price: price(100), Description: "first"}
	beta  = logic.Product{ID: "b", Title: "Beta", Category: "кнопка"}
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price *int64
		want  string
	}{
		{price(100), "100 synapses"},
		{price(2500), "2 500 synapses"},
		{price(1234567), "1 234 567 synapses"},
		{price(0), "Priceless"},
		{nil, "Priceless"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
	if got := FormatNumber(-1500); got != "-1 500" {
		t.Errorf("expected %q, got %q", "-1 500", got)
	}
}

func TestCategoryClass(t *testing.T) {
	tests := map[string]string{
		"софт-скил":      "soft",
		"хард-скил":      "hard",
		"другое":         "other",
		"дополнительное": "additional",
		"кнопка":         "button",
		"unknown":        "other",
	}
	for category, want := range tests {
		if got := CategoryClass(category); got != want {
			t.Errorf("%s: expected %q, got %q", category, want, got)
		}
	}
}

func TestCardClickEmitsSelect(t *testing.T) {
	rec := &recorder{}
	card := NewCard(rec)

	frag := card.Render(alpha)
	card.Click()

	if !strings.Contains(frag.String(), "[soft] Alpha") || !strings.Contains(frag.String(), "100 synapses") {
		t.Errorf("unexpected card %q", frag)
	}
	if rec.names()[0] != events.CardSelect || rec.events[0].Payload.(logic.Product).ID != "a" {
		t.Errorf("unexpected events %v", rec.events)
	}
}

func TestCardPreviewButton(t *testing.T) {
	rec := &recorder{}
	preview := NewCardPreview(rec)

	preview.Render(alpha, false)
	if preview.ButtonLabel() != buyLabel || !preview.ClickButton() {
		t.Fatal("expected enabled buy button")
	}

	preview.SetInBasket(true)
	if preview.ButtonLabel() != removeLabel || !preview.ClickButton() {
		t.Fatal("expected enabled remove button")
	}

	want := []string{events.CardAdd, events.CardRemove}
	if !reflect.DeepEqual(rec.names(), want) {
		t.Errorf("expected %v, got %v", want, rec.names())
	}
}

func TestCardPreviewPricelessIsDisabled(t *testing.T) {
	rec := &recorder{}
	preview := NewCardPreview(rec)

	frag := preview.Render(beta, false)
	if !preview.ButtonDisabled() {
		t.Error("expected disabled button")
	}
	if preview.ClickButton() {
		t.Error("expected click to be refused")
	}
	if len(rec.events) != 0 {
		t.Errorf("unexpected events %v", rec.names())
	}
	if !strings.Contains(frag.String(), "Priceless") {
		t.Errorf("expected priceless label in %q", frag)
	}
}

func TestCardBasketDelete(t *testing.T) {
	rec := &recorder{}
	line := NewCardBasket(rec)

	if got := line.Render(alpha, 2); got != "2. Alpha  100 synapses\n" {
		t.Errorf("unexpected line %q", got)
	}
	line.ClickDelete()
	if rec.names()[0] != events.CardRemove {
		t.Errorf("expected card:remove, got %v", rec.names())
	}
}

func TestBasketEmptyDisablesCheckout(t *testing.T) {
	rec := &recorder{}
	basket := NewBasket(rec)

	frag := basket.Render(nil, 0)
	if !strings.Contains(frag.String(), "Basket is empty") {
		t.Errorf("expected empty label in %q", frag)
	}
	if basket.ClickCheckout() {
		t.Error("expected checkout to be refused")
	}

	line := NewCardBasket(rec).Render(alpha, 1)
	frag = basket.Render([]Fragment{line}, 100)
	if strings.Contains(frag.String(), "Basket is empty") || !strings.Contains(frag.String(), "Total: 100 synapses") {
		t.Errorf("unexpected basket %q", frag)
	}
	if !basket.ClickCheckout() || rec.names()[0] != events.OrderOpen {
		t.Errorf("expected order:open, got %v", rec.names())
	}
}

func TestModalLifecycle(t *testing.T) {
	rec := &recorder{}
	modal := NewModal(rec)

	modal.Render("hello\n")
	if !modal.IsOpen() || !strings.Contains(modal.Fragment().String(), "| hello") {
		t.Errorf("unexpected modal %q", modal.Fragment())
	}

	modal.Close()
	if modal.IsOpen() || modal.Content() != "" || modal.Fragment() != "" {
		t.Error("expected closed empty modal")
	}

	want := []string{events.ModalOpen, events.ModalClose}
	if !reflect.DeepEqual(rec.names(), want) {
		t.Errorf("expected %v, got %v", want, rec.names())
	}
}

func TestPage(t *testing.T) {
	rec := &recorder{}
	page := NewPage(rec)

	page.SetCounter(3)
	page.SetCatalog([]Fragment{NewCard(rec).Render(alpha), NewCard(rec).Render(beta)})
	page.SetNotice("Failed to load products. Try again later.")

	out := page.Fragment().String()
	for _, want := range []string{"basket (3)", "Alpha", "Beta", "! Failed to load"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}

	page.SetLocked(true)
	if page.ClickBasket() {
		t.Error("expected locked page to refuse clicks")
	}
	page.SetLocked(false)
	if !page.ClickBasket() || rec.names()[0] != events.BasketOpen {
		t.Errorf("expected basket:open, got %v", rec.names())
	}
}

func TestFormInputEmitsFieldChange(t *testing.T) {
	rec := &recorder{}
	form := NewOrderForm(rec)

	form.Input("address", "Main st")

	if rec.names()[0] != "order.address:change" {
		t.Errorf("expected order.address:change, got %v", rec.names())
	}
	if got := rec.events[0].Payload.(FieldInput); got != (FieldInput{Field: "address", Value: "Main st"}) {
		t.Errorf("unexpected payload %#v", got)
	}
	if form.Value("address") != "Main st" {
		t.Errorf("expected value kept, got %q", form.Value("address"))
	}
}

func TestFormSubmitRefusedWhileInvalid(t *testing.T) {
	rec := &recorder{}
	form := NewContactsForm(rec)

	if form.Submit() {
		t.Error("expected refusal on invalid form")
	}
	form.SetValid(true)
	if !form.Submit() || rec.names()[0] != "contacts:submit" {
		t.Errorf("expected contacts:submit, got %v", rec.names())
	}
}

func TestFormErrorsJoined(t *testing.T) {
	form := NewContactsForm(nil)
	frag := form.Render(ContactsFormData{
		FormState: FormState{Errors: []string{"Enter an email", "Enter a phone number"}},
		Email:     "",
	})

	if form.Errors() != "Enter an email; Enter a phone number" {
		t.Errorf("unexpected errors %q", form.Errors())
	}
	if !strings.Contains(frag.String(), "[Pay] (unavailable)") {
		t.Errorf("expected disabled pay button in %q", frag)
	}
}

func TestOrderFormChoosePayment(t *testing.T) {
	rec := &recorder{}
	form := NewOrderForm(rec)
	form.Render(OrderFormData{Payment: "card", Address: "Addr", FormState: FormState{Valid: true}})

	form.ChoosePayment("cash")

	if form.Payment() != "card" || !strings.Contains(form.Fragment().String(), "[*card]") {
		t.Errorf("highlight moved before the state answered: %q", form.Fragment())
	}
	if got := rec.events[0]; got.Name != events.PaymentChange || got.Payload.(PaymentChoice).Payment != "cash" {
		t.Errorf("unexpected event %#v", got)
	}
}

func TestSuccess(t *testing.T) {
	rec := &recorder{}
	success := NewSuccess(rec)

	if frag := success.Render(1500); !strings.Contains(frag.String(), "Charged 1 500 synapses") {
		t.Errorf("unexpected fragment %q", frag)
	}
	success.Close()
	if rec.names()[0] != events.SuccessClose {
		t.Errorf("expected success:close, got %v", rec.names())
	}
}

func TestEventLogger(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewBus()
	NewEventLogger(&buf).Attach(bus)

	bus.Emit(events.TotalUpdated, logic.TotalChange{Total: 300})
	bus.Emit(events.FormErrorsChange, logic.FormErrors{logic.FieldEmail: "Enter an email"})
	bus.Emit("custom", 42)

	out := buf.String()
	for _, want := range []string{"order:totalUpdated", "300 synapses", "Enter an email", "#3", "(int)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestEventColor(t *testing.T) {
	tests := map[string]string{
		events.OrderReady:     Green,
		events.BasketCleared:  Red,
		events.TotalUpdated:   Yellow,
		events.CatalogUpdated: Yellow,
		events.ModalOpen:      Cyan,
		events.CardAdd:        Blue,
	}
	for name, want := range tests {
		if got := EventColor(name); got != want {
			t.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}
}
