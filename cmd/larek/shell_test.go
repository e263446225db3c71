package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liscuitle/web-larek/internal/api"
	"github.com/Liscuitle/web-larek/internal/events"
	"github.com/Liscuitle/web-larek/internal/logic"
	"github.com/Liscuitle/web-larek/internal/presenter"
)

const catalogJSON = `{"total":2,"items":[
	{"id":"a","title":"Alpha","category":"софт-скил","image":"/a.svg","price":100,"description":"first"},
	{"id":"b","title":"Beta","category":"другое","image":"/b.svg","price":null,"description":"second"}
]}`

func newTestShell(t *testing.T, input string) (*shell, *bytes.Buffer, *logic.AppState, *[]string) {
	t.Helper()
	var orders []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/product":
			_, _ = w.Write([]byte(catalogJSON))
		case "/order":
			orders = append(orders, r.Method)
			_, _ = w.Write([]byte(`{"id":"o-1","total":100}`))
		}
	}))
	t.Cleanup(server.Close)

	bus := events.NewBus()
	app := logic.NewAppState(bus, nil)
	client := api.NewClient(api.Config{BaseURL: server.URL, CDNURL: "https://cdn.test"})
	p, err := presenter.New(bus, app, client, nil)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	require.NoError(t, p.Load(context.Background()))

	var out bytes.Buffer
	return newShell(p, strings.NewReader(input), &out), &out, app, &orders
}

func TestShellPlacesOrder(t *testing.T) {
	script := strings.Join([]string{
		"select 1", "buy", "basket", "checkout", "pay cash", "address Main st 1",
		"next", "email a@b.c", "phone 123", "submit", "close", "quit",
	}, "\n")
	sh, out, app, orders := newTestShell(t, script)

	require.NoError(t, sh.run(context.Background()))

	assert.Len(t, *orders, 1)
	assert.Contains(t, out.String(), "Charged 100 synapses")
	assert.True(t, app.IsBasketEmpty())
	assert.NotContains(t, out.String(), "not available")
}

func TestShellRefusesOutOfOrderCommands(t *testing.T) {
	sh, out, _, _ := newTestShell(t, "")

	tests := []struct {
		line string
		want string
	}{
		{"buy", "select an item first"},
		{"checkout", "open the basket first"},
		{"submit", "fill in delivery first"},
		{"select 9", "no catalog item 9"},
		{"select x", "expected a positive number"},
		{"dance", "unknown command"},
	}
	for _, tt := range tests {
		err := sh.exec(tt.line)
		require.Error(t, err, tt.line)
		assert.Contains(t, err.Error(), tt.want)
	}

	require.NoError(t, sh.exec("help"))
	assert.Contains(t, out.String(), "select N")
}

func TestShellPricelessItemCannotBeBought(t *testing.T) {
	sh, _, app, _ := newTestShell(t, "")

	require.NoError(t, sh.exec("select 2"))
	err := sh.exec("buy")

	require.Error(t, err)
	assert.True(t, app.IsBasketEmpty())
}

func TestShellDeleteFromBasket(t *testing.T) {
	sh, _, app, _ := newTestShell(t, "")

	require.NoError(t, sh.exec("select 1"))
	require.NoError(t, sh.exec("buy"))
	require.NoError(t, sh.exec("basket"))
	require.NoError(t, sh.exec("delete 1"))

	assert.True(t, app.IsBasketEmpty())
	assert.Error(t, sh.exec("checkout"))
}
