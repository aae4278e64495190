package services_test

import (
	"testing"

	"stockroom/internal/kv"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

func TestRegisterLoginLogout(t *testing.T) {
	users := repos.NewUserRepo(kv.NewMemStore())
	svc := services.NewAuthService(users)

	u, err := svc.Register("sid-1", "Alice", "alice@example.com", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != "ADMIN" {
		t.Fatalf("first account must be admin, got %q", u.Role)
	}
	if u.Hash == "Passw0rd!" {
		t.Fatal("password stored in plain text")
	}

	// register logs the session in
	cur, err := svc.CurrentUser("sid-1")
	if err != nil || cur.ID != u.ID {
		t.Fatalf("want current user after register, got %v %v", cur, err)
	}

	// second account is a plain user
	u2, err := svc.Register("sid-2", "Bob", "bob@example.com", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if u2.Role != "USER" {
		t.Fatalf("second account must be USER, got %q", u2.Role)
	}

	if _, err := svc.Register("sid-3", "Eve", "ALICE@example.com", "Passw0rd!"); err != services.ErrEmailTaken {
		t.Fatalf("want ErrEmailTaken for duplicate email, got %v", err)
	}

	if err := svc.Logout("sid-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CurrentUser("sid-1"); err == nil {
		t.Fatal("session should be unbound after logout")
	}

	if _, err := svc.Login("sid-1", "alice@example.com", "Passw0rd!"); err != nil {
		t.Fatalf("login after logout failed: %v", err)
	}
	if _, err := svc.Login("sid-9", "alice@example.com", "wrong-pass"); err != services.ErrBadCreds {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	if _, err := svc.Login("sid-9", "nobody@example.com", "Passw0rd!"); err != services.ErrBadCreds {
		t.Fatalf("want ErrBadCreds for unknown email, got %v", err)
	}
}
