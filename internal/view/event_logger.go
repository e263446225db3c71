package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/Liscuitle/web-larek/internal/events"
	"github.com/Liscuitle/web-larek/internal/logic"
)

// ANSI color codes
const (
	Blue    = "\033[94m"
	Green   = "\033[92m"
	Yellow  = "\033[93m"
	Cyan    = "\033[96m"
	Magenta = "\033[95m"
	Red     = "\033[91m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Reset   = "\033[0m"
)

// EventColor returns the color for an event name.
func EventColor(name string) string {
	switch {
	case strings.HasSuffix(name, ":ready"):
		return Green
	case strings.HasSuffix(name, ":cleared"), strings.HasPrefix(name, "formErrors"):
		return Red
	case strings.Contains(name, "Updated"), strings.HasSuffix(name, ":updated"):
		return Yellow
	case strings.HasPrefix(name, "modal:"):
		return Cyan
	default:
		return Blue
	}
}

// EventLogger pretty-prints every event on the bus.
type EventLogger struct {
	out io.Writer
	seq int
}

func NewEventLogger(out io.Writer) *EventLogger {
	return &EventLogger{out: out}
}

// Attach subscribes the logger to every event.
func (l *EventLogger) Attach(bus *events.Bus) events.Subscription {
	return bus.OnAll(l.LogEvent)
}

// LogEvent prints a single event with pretty formatting.
func (l *EventLogger) LogEvent(e events.Event) {
	l.seq++

	// Header
	fmt.Fprintf(l.out, "%s%s%s\n", Bold, strings.Repeat("─", 60), Reset)
	fmt.Fprintf(l.out, "%s%s%s%s %s#%d%s\n",
		Bold, EventColor(e.Name), e.Name, Reset,
		Dim, l.seq, Reset)

	l.printDetails(e.Payload)
}

func (l *EventLogger) printDetails(payload any) {
	w := l.out
	switch p := payload.(type) {
	case logic.CatalogChange:
		fmt.Fprintf(w, "  %sproducts:%s %d\n", Dim, Reset, len(p.Catalog))

	case logic.PreviewChange:
		fmt.Fprintf(w, "  %sproduct:%s %s (%s)\n", Dim, Reset, p.Product.Title, p.Product.ID)

	case logic.BasketChange:
		fmt.Fprintf(w, "  %sitems:%s\n", Dim, Reset)
		for _, item := range p.Basket {
			fmt.Fprintf(w, "    - %s @ %s\n", item.Title, FormatPrice(item.Price))
		}

	case logic.TotalChange:
		fmt.Fprintf(w, "  %stotal:%s %s\n", Dim, Reset, FormatAmount(p.Total))

	case logic.PaymentChange:
		fmt.Fprintf(w, "  %spayment:%s %s\n", Dim, Reset, p.Payment)

	case logic.FormErrors:
		if p.Valid() {
			fmt.Fprintf(w, "  %s(valid)%s\n", Dim, Reset)
		}
		for _, msg := range p.Messages() {
			fmt.Fprintf(w, "  %s!%s %s\n", Red, Reset, msg)
		}

	case logic.Order:
		fmt.Fprintf(w, "  %spayment:%s %s\n", Dim, Reset, p.Payment)
		fmt.Fprintf(w, "  %saddress:%s %s\n", Dim, Reset, p.Address)
		fmt.Fprintf(w, "  %semail:%s   %s\n", Dim, Reset, p.Email)
		fmt.Fprintf(w, "  %sphone:%s   %s\n", Dim, Reset, p.Phone)
		fmt.Fprintf(w, "  %sitems:%s   %s\n", Dim, Reset, strings.Join(p.Items, ", "))
		fmt.Fprintf(w, "  %stotal:%s   %s\n", Dim, Reset, FormatAmount(p.Total))

	case logic.Product:
		fmt.Fprintf(w, "  %sproduct:%s %s (%s)\n", Dim, Reset, p.Title, p.ID)

	case FieldInput:
		fmt.Fprintf(w, "  %s%s:%s %q\n", Dim, p.Field, Reset, p.Value)

	case PaymentChoice:
		fmt.Fprintf(w, "  %spayment:%s %s\n", Dim, Reset, p.Payment)

	case struct{}, logic.BasketCleared:

	default:
		fmt.Fprintf(w, "  %s(%T)%s\n", Dim, payload, Reset)
	}
}
