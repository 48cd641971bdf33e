package enums

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	t.Parallel()

	allowed := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusProcessing},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusCompleted},
		{OrderStatusProcessing, OrderStatusCancelled},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusCompleted},
		{OrderStatusCompleted, OrderStatusProcessing},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusProcessing, OrderStatusPending},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()

	if status, err := ParseOrderStatus("processing"); err != nil || status != OrderStatusProcessing {
		t.Fatalf("unexpected: %v %v", status, err)
	}
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if !OrderStatusCompleted.IsTerminal() || OrderStatusPending.IsTerminal() {
		t.Fatal("terminal flags wrong")
	}
}
