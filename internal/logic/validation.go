package logic

import "strings"

// RequireNotEmptyString checks that a value has non-blank content.
func RequireNotEmptyString(value, errMsg string) *CommandError {
	if strings.TrimSpace(value) == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNotEmpty checks that a slice has at least one element.
func RequireNotEmpty[T any](items []T, errMsg string) *CommandError {
	if len(items) == 0 {
		return NewFailedPrecondition(errMsg)
	}
	return nil
}

// RequirePriced checks that a product can be bought.
func RequirePriced(p Product, errMsg string) *CommandError {
	if !p.Priced() {
		return NewFailedPrecondition(errMsg)
	}
	return nil
}

// RequireOneOf checks that a field belongs to an allowed set.
func RequireOneOf(field Field, allowed []Field, errMsg string) *CommandError {
	for _, f := range allowed {
		if f == field {
			return nil
		}
	}
	return NewInvalidArgumentf("%s: %q", errMsg, string(field))
}

// ValidateOrderForm is the delivery pass: address and payment are required.
func ValidateOrderForm(f OrderForm) FormErrors {
	errs := FormErrors{}
	errs.add(FieldAddress, RequireNotEmptyString(f.Address, ErrMsgAddressRequired))
	errs.add(FieldPayment, RequireNotEmptyString(string(f.Payment), ErrMsgPaymentRequired))
	return errs
}

// ValidateContactsForm is the contacts pass: email and phone are required.
func ValidateContactsForm(f OrderForm) FormErrors {
	errs := FormErrors{}
	errs.add(FieldEmail, RequireNotEmptyString(f.Email, ErrMsgEmailRequired))
	errs.add(FieldPhone, RequireNotEmptyString(f.Phone, ErrMsgPhoneRequired))
	return errs
}
