package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Liscuitle/web-larek/internal/presenter"
)

const prompt = "larek> "

var errQuit = errors.New("quit")

const helpText = `commands:
  list                 redraw the screen
  select N             preview catalog item N
  buy                  add or remove the previewed item
  basket               open the basket
  delete N             remove basket line N
  checkout             go to delivery
  pay card|cash        choose the payment method
  address TEXT         set the delivery address
  next                 go to contacts
  email TEXT           set the email
  phone TEXT           set the phone
  submit               place the order
  close                close the modal
  quit                 leave
`

// shell maps typed commands to view interactions.
type shell struct {
	p   *presenter.Presenter
	in  io.Reader
	out io.Writer
}

func newShell(p *presenter.Presenter, in io.Reader, out io.Writer) *shell {
	return &shell{p: p, in: in, out: out}
}

func (s *shell) run(ctx context.Context) error {
	fmt.Fprint(s.out, s.p.Screen())
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		err := s.exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		fmt.Fprint(s.out, s.p.Screen())
	}
}

func (s *shell) exec(line string) error {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "":
		return nil
	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return nil
	case "quit", "exit":
		return errQuit
	case "list", "ls":
		return nil
	case "select":
		n, err := index(arg)
		if err != nil {
			return err
		}
		card, ok := s.p.Card(n)
		if !ok {
			return fmt.Errorf("no catalog item %s", arg)
		}
		card.Click()
		return nil
	case "buy":
		if s.p.Active() != presenter.PanelPreview {
			return errors.New("select an item first")
		}
		return refused(s.p.Preview().ClickButton())
	case "basket":
		if s.p.Modal().IsOpen() {
			s.p.Modal().Close()
		}
		return refused(s.p.Page().ClickBasket())
	case "delete":
		n, err := index(arg)
		if err != nil {
			return err
		}
		line, ok := s.p.BasketLine(n)
		if !ok || s.p.Active() != presenter.PanelBasket {
			return fmt.Errorf("no basket line %s", arg)
		}
		line.ClickDelete()
		return nil
	case "checkout":
		if s.p.Active() != presenter.PanelBasket {
			return errors.New("open the basket first")
		}
		return refused(s.p.Basket().ClickCheckout())
	case "pay":
		if s.p.Active() != presenter.PanelOrder {
			return errors.New("checkout first")
		}
		s.p.OrderForm().ChoosePayment(arg)
		return nil
	case "address":
		if s.p.Active() != presenter.PanelOrder {
			return errors.New("checkout first")
		}
		s.p.OrderForm().Input("address", arg)
		return nil
	case "next":
		if s.p.Active() != presenter.PanelOrder {
			return errors.New("checkout first")
		}
		return refused(s.p.OrderForm().Submit())
	case "email", "phone":
		if s.p.Active() != presenter.PanelContacts {
			return errors.New("fill in delivery first")
		}
		s.p.ContactsForm().Input(verb, arg)
		return nil
	case "submit":
		if s.p.Active() != presenter.PanelContacts {
			return errors.New("fill in delivery first")
		}
		return refused(s.p.ContactsForm().Submit())
	case "close":
		if s.p.Active() == presenter.PanelSuccess {
			s.p.Success().Close()
			return nil
		}
		if s.p.Modal().IsOpen() {
			s.p.Modal().Close()
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q, try help", verb)
	}
}

// index parses a 1-based position into a 0-based index.
func index(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("expected a positive number, got %q", arg)
	}
	return n - 1, nil
}

func refused(ok bool) error {
	if !ok {
		return errors.New("not available right now")
	}
	return nil
}
