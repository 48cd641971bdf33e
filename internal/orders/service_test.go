package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khaldoun-digital/baytkum-backend/pkg/db/models"
	"github.com/khaldoun-digital/baytkum-backend/pkg/enums"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

type stubRepo struct {
	orders  map[uuid.UUID]*models.Order
	updated []enums.OrderStatus
}

func (s *stubRepo) WithTx(*gorm.DB) Repository { return s }

func (s *stubRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	s.orders[order.ID] = order
	return order, nil
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *stubRepo) List(_ context.Context, _ ListFilter, _ pagination.Params) ([]models.Order, int64, error) {
	var out []models.Order
	for _, order := range s.orders {
		out = append(out, *order)
	}
	return out, int64(len(out)), nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enums.OrderStatus) error {
	order, ok := s.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	s.updated = append(s.updated, status)
	return nil
}

func stubWithOrder(status enums.OrderStatus) (*stubRepo, uuid.UUID) {
	id := uuid.New()
	return &stubRepo{orders: map[uuid.UUID]*models.Order{
		id: {ID: id, Status: status, TotalFils: 1000},
	}}, id
}

func TestUpdateStatusAllowsForwardTransition(t *testing.T) {
	t.Parallel()

	repo, id := stubWithOrder(enums.OrderStatusPending)
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	order, err := svc.UpdateStatus(context.Background(), id, enums.OrderStatusProcessing)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if order.Status != enums.OrderStatusProcessing {
		t.Fatalf("expected processing, got %s", order.Status)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one persisted update, got %d", len(repo.updated))
	}
}

func TestUpdateStatusRejectsTerminalTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		from enums.OrderStatus
		to   enums.OrderStatus
	}{
		{"completed is terminal", enums.OrderStatusCompleted, enums.OrderStatusPending},
		{"cancelled is terminal", enums.OrderStatusCancelled, enums.OrderStatusProcessing},
		{"pending cannot jump to completed", enums.OrderStatusPending, enums.OrderStatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo, id := stubWithOrder(tc.from)
			svc, err := NewService(repo)
			if err != nil {
				t.Fatalf("NewService: %v", err)
			}

			_, err = svc.UpdateStatus(context.Background(), id, tc.to)
			if !pkgerrors.IsCode(err, pkgerrors.CodeStateConflict) {
				t.Fatalf("expected state conflict, got %v", err)
			}
			if len(repo.updated) != 0 {
				t.Fatal("disallowed transition must not persist")
			}
		})
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{orders: map[uuid.UUID]*models.Order{}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), uuid.New(), enums.OrderStatusProcessing)
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	repo, id := stubWithOrder(enums.OrderStatusPending)
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), id, enums.OrderStatus("shipped"))
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
