package storage

import (
	"errors"
	"testing"
	"time"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreStartsEmpty(t *testing.T) {
	store := openTest(t)

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}

	if _, ok, err := store.Best(); err != nil || ok {
		t.Errorf("Best() = ok %v, err %v; want nothing", ok, err)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTest(t)
	b := openTest(t)

	if _, err := a.SaveResult(Result{SessionID: "a", Hits: 1}); err != nil {
		t.Fatal(err)
	}

	if n, _ := b.Count(); n != 0 {
		t.Errorf("second store sees %d results, want 0", n)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTest(t)

	when := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	saved := []Result{
		{SessionID: "s1", Player: "ann", Hits: 10, Misses: 15, Charges: 25, Accuracy: 0.4, CreatedAt: when},
		{SessionID: "s1", Player: "ann", Hits: 18, Misses: 7, Charges: 25, Accuracy: 0.72, CreatedAt: when},
		{SessionID: "s2", Player: "bob", Hits: 18, Misses: 5, Charges: 23, Accuracy: 18.0 / 23, CreatedAt: when},
		{SessionID: "s2", Player: "bob", Hits: 3, Misses: 22, Charges: 25, Accuracy: 0.12, CreatedAt: when},
	}
	for i, r := range saved {
		id, err := store.SaveResult(r)
		if err != nil {
			t.Fatalf("SaveResult(%d) failed: %v", i, err)
		}
		if id != int64(i+1) {
			t.Errorf("SaveResult(%d) id = %d, want %d", i, id, i+1)
		}
	}

	top, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopResults() returned %d rows, want 3", len(top))
	}

	// Equal hits: fewer misses first
	wantIDs := []int64{3, 2, 1}
	for i, r := range top {
		if r.ID != wantIDs[i] {
			t.Errorf("top[%d].ID = %d, want %d", i, r.ID, wantIDs[i])
		}
	}
	if top[0].Player != "bob" || top[0].Charges != 23 {
		t.Errorf("top[0] = %+v", top[0])
	}
	if !top[1].CreatedAt.Equal(when) {
		t.Errorf("CreatedAt = %v, want %v", top[1].CreatedAt, when)
	}
	if top[1].Accuracy != 0.72 {
		t.Errorf("Accuracy = %v, want 0.72", top[1].Accuracy)
	}

	best, ok, err := store.Best()
	if err != nil || !ok || best.ID != 3 {
		t.Errorf("Best() = %+v, %v, %v; want id 3", best, ok, err)
	}

	n, err := store.Count()
	if err != nil || n != 4 {
		t.Errorf("Count() = %d, %v; want 4", n, err)
	}
}

func TestSessionResults(t *testing.T) {
	store := openTest(t)

	for i := 0; i < 5; i++ {
		session := "even"
		if i%2 == 1 {
			session = "odd"
		}
		if _, err := store.SaveResult(Result{SessionID: session, Hits: i}); err != nil {
			t.Fatal(err)
		}
	}

	results, err := store.SessionResults("even", 0)
	if err != nil {
		t.Fatalf("SessionResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	// Newest first
	for i, want := range []int{4, 2, 0} {
		if results[i].Hits != want {
			t.Errorf("results[%d].Hits = %d, want %d", i, results[i].Hits, want)
		}
	}

	if got, _ := store.SessionResults("nobody", 5); len(got) != 0 {
		t.Errorf("unknown session returned %d results", len(got))
	}
}

func TestSaveFillsCreatedAt(t *testing.T) {
	store := openTest(t)
	before := time.Now().Add(-time.Second)

	if _, err := store.SaveResult(Result{SessionID: "s"}); err != nil {
		t.Fatal(err)
	}

	best, _, err := store.Best()
	if err != nil {
		t.Fatal(err)
	}
	if best.CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, want a current time", best.CreatedAt)
	}
}

func TestClosedStore(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}

	if _, err := store.SaveResult(Result{}); !errors.Is(err, ErrClosed) {
		t.Errorf("SaveResult() after Close = %v, want ErrClosed", err)
	}
	if _, err := store.TopResults(1); !errors.Is(err, ErrClosed) {
		t.Errorf("TopResults() after Close = %v, want ErrClosed", err)
	}
	if _, err := store.Count(); !errors.Is(err, ErrClosed) {
		t.Errorf("Count() after Close = %v, want ErrClosed", err)
	}
}
