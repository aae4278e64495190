package records_test

import (
	"errors"
	"reflect"
	"testing"

	"stockroom/internal/domain"
	"stockroom/internal/kv"
	"stockroom/internal/records"
)

func TestListNeverWritten(t *testing.T) {
	store := kv.NewMemStore()
	got, err := records.List[domain.Category](store, "categories")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty sequence, got %+v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	store := kv.NewMemStore()
	in := []domain.Item{
		{ID: "i1", Name: "Hammer", CategoryID: "c1", Quantity: 7, Unit: "pcs", MinStock: 2},
		{ID: "i2", Name: "Nails", CategoryID: "c1", Quantity: 500, Unit: "pcs"},
	}
	if err := records.Write(store, "items", in); err != nil {
		t.Fatal(err)
	}
	out, err := records.List[domain.Item](store, "items")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in=%+v\nout=%+v", in, out)
	}
}

func TestRoundTripMovements(t *testing.T) {
	store := kv.NewMemStore()
	in := []domain.StockMovement{
		{ID: "m1", ItemID: "i1", Type: "in", Quantity: 10, Date: "2026-01-02T03:04:05Z", Notes: "delivery"},
		{ID: "m2", ItemID: "i1", Type: "out", Quantity: 3, Date: "2026-01-03T03:04:05Z", Notes: ""},
	}
	if err := records.Write(store, "stockMovements", in); err != nil {
		t.Fatal(err)
	}
	out, err := records.List[domain.StockMovement](store, "stockMovements")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in=%+v\nout=%+v", in, out)
	}
}

func TestCorruptPayload(t *testing.T) {
	store := kv.NewMemStore()
	if err := store.Set("categories", "{not json"); err != nil {
		t.Fatal(err)
	}
	_, err := records.List[domain.Category](store, "categories")
	var cerr *domain.CorruptStateError
	if !errors.As(err, &cerr) {
		t.Fatalf("want CorruptStateError, got %v", err)
	}
	if cerr.Collection != "categories" {
		t.Fatalf("want collection name in error, got %+v", cerr)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := kv.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, ok, err := store.Get("categories"); err != nil || ok {
		t.Fatalf("fresh store should report never-written, ok=%v err=%v", ok, err)
	}
	if err := records.Write(store, "categories", []domain.Category{{ID: "c1", Name: "Tools"}}); err != nil {
		t.Fatal(err)
	}
	out, err := records.List[domain.Category](store, "categories")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Name != "Tools" {
		t.Fatalf("bad read back: %+v", out)
	}
}
