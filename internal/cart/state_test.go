package cart

import (
	"testing"

	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/money"
)

func line(id uuid.UUID, price money.Fils, qty int) Line {
	return Line{
		ProductID: id,
		Title:     i18n.Text{EN: "Sofa Cleaning", AR: "تنظيف الكنب"},
		UnitPrice: price,
		Qty:       qty,
	}
}

func TestAddKeepsLinesUniquePerProduct(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	var state State
	state.Add(line(productID, 2500, 1))
	state.Add(line(productID, 2500, 2))

	if len(state.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(state.Lines))
	}
	if state.Lines[0].Qty != 3 {
		t.Fatalf("expected merged qty 3, got %d", state.Lines[0].Qty)
	}
}

func TestAddLocksPriceAndTitleOnFirstAdd(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	var state State
	state.Add(line(productID, 2500, 1))

	repriced := line(productID, 9999, 1)
	repriced.Title = i18n.Text{EN: "Renamed"}
	state.Add(repriced)

	if state.Lines[0].UnitPrice != 2500 {
		t.Fatalf("expected locked price 2500, got %d", state.Lines[0].UnitPrice)
	}
	if state.Lines[0].Title.EN != "Sofa Cleaning" {
		t.Fatalf("expected locked title, got %q", state.Lines[0].Title.EN)
	}
}

func TestInsertionOrderSurvivesRemoval(t *testing.T) {
	t.Parallel()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	var state State
	state.Add(line(a, 1000, 1))
	state.Add(line(b, 2000, 1))
	state.Add(line(c, 3000, 1))

	if !state.Remove(b) {
		t.Fatal("expected removal to succeed")
	}
	if len(state.Lines) != 2 || state.Lines[0].ProductID != a || state.Lines[1].ProductID != c {
		t.Fatalf("expected order [a c], got %+v", state.Lines)
	}
}

func TestRemoveMissingProductReportsFalse(t *testing.T) {
	t.Parallel()

	var state State
	state.Add(line(uuid.New(), 1000, 1))
	if state.Remove(uuid.New()) {
		t.Fatal("removing an absent product should report false")
	}
	if len(state.Lines) != 1 {
		t.Fatal("absent removal must not change the cart")
	}
}

func TestTotalsSumLineExtensions(t *testing.T) {
	t.Parallel()

	var state State
	state.Add(line(uuid.New(), 2500, 2))  // 5.000
	state.Add(line(uuid.New(), 12345, 3)) // 37.035

	if got := state.ItemCount(); got != 5 {
		t.Fatalf("expected item count 5, got %d", got)
	}
	if got := state.Total(); got != 42035 {
		t.Fatalf("expected total 42035 fils, got %d", got)
	}
	if got := state.Total().String(); got != "42.035" {
		t.Fatalf("expected three decimal rendering, got %q", got)
	}
}

func TestClearEmptiesState(t *testing.T) {
	t.Parallel()

	var state State
	state.Add(line(uuid.New(), 1000, 4))
	state.Clear()

	if !state.IsEmpty() || state.ItemCount() != 0 || state.Total() != 0 {
		t.Fatalf("expected empty cart, got %+v", state)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	var state State
	state.Add(line(productID, 1000, 1))

	copied := state.Copy()
	copied.Lines[0].Qty = 50

	if state.Lines[0].Qty != 1 {
		t.Fatal("mutating a copy must not affect the original")
	}
}
