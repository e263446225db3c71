package events

// Change events, emitted by the application state after a mutation.
const (
	CatalogUpdated   = "catalog:updated"
	PreviewUpdated   = "preview:updated"
	BasketUpdated    = "basket:updated"
	BasketCleared    = "basket:cleared"
	PaymentUpdated   = "order:paymentUpdated"
	TotalUpdated     = "order:totalUpdated"
	FormErrorsChange = "formErrors:change"
	OrderReady       = "order:ready"
)

// Intent events, emitted by views in response to user action.
const (
	CardSelect     = "card:select"
	CardAdd        = "card:add"
	CardRemove     = "card:remove"
	BasketOpen     = "basket:open"
	OrderOpen      = "order:open"
	OrderSubmit    = "order:submit"
	ContactsSubmit = "contacts:submit"
	PaymentChange  = "payment:change"
	SuccessClose   = "success:close"
)

// Modal lifecycle.
const (
	ModalOpen  = "modal:open"
	ModalClose = "modal:close"
)

// FieldChange builds the name a form emits when one of its inputs changes,
// e.g. "order.address:change".
func FieldChange(form, field string) string {
	return form + "." + field + ":change"
}

// Submit builds the name a form emits when it is submitted.
func Submit(form string) string {
	return form + ":submit"
}
