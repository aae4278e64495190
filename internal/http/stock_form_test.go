package handlers_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

func loggedInSession(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp, err := app.Test(postForm("/register", url.Values{
		"name":     {"Tester"},
		"email":    {"tester@example.com"},
		"password": {"Passw0rd!"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	sid := sidCookie(resp)
	if sid == nil {
		t.Fatal("no sid cookie after register")
	}
	return sid
}

func TestRecordMovementRejectionShowsMessage(t *testing.T) {
	app, store := newTestApp(t)
	sess := loggedInSession(t, app)

	items := repos.NewItemRepo(store)
	moves := repos.NewMovementRepo(store)
	if err := items.Upsert(domain.Item{ID: "i1", Name: "Hammer", CategoryID: "c1", Quantity: 5}); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(postForm("/history", url.Values{
		"itemId":   {"i1"},
		"type":     {"out"},
		"quantity": {"10"},
	}, sess))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "insufficient stock") {
		t.Fatalf("rejection message missing from page: %s", body)
	}

	// nothing was written
	it, err := items.Get("i1")
	if err != nil {
		t.Fatal(err)
	}
	if it.Quantity != 5 {
		t.Fatalf("quantity changed on rejection: %d", it.Quantity)
	}
	ledger, err := moves.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(ledger) != 0 {
		t.Fatalf("ledger entry created on rejection: %+v", ledger)
	}
}

func TestRecordMovementApplies(t *testing.T) {
	app, store := newTestApp(t)
	sess := loggedInSession(t, app)

	items := repos.NewItemRepo(store)
	if err := items.Upsert(domain.Item{ID: "i1", Name: "Hammer", CategoryID: "c1", Quantity: 5}); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(postForm("/history", url.Values{
		"itemId":   {"i1"},
		"type":     {"in"},
		"quantity": {"4"},
		"notes":    {"restock"},
	}, sess))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("want redirect after apply, got %d", resp.StatusCode)
	}

	it, err := items.Get("i1")
	if err != nil {
		t.Fatal(err)
	}
	if it.Quantity != 9 {
		t.Fatalf("want quantity 9, got %d", it.Quantity)
	}
}
