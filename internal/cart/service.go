package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khaldoun-digital/baytkum-backend/pkg/db/models"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

type productLoader interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service exposes the session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) (State, error)
	AddItem(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (State, error)
	SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (State, error)
	RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (State, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	storage  Storage
	products productLoader
	log      *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService builds the cart service backed by the provided stack.
func NewService(storage Storage, products productLoader, log *logger.Logger) (Service, error) {
	if storage == nil {
		return nil, fmt.Errorf("cart storage required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		storage:  storage,
		products: products,
		log:      log,
		locks:    map[string]*sync.Mutex{},
	}, nil
}

// sessionLock serializes mutations per session so concurrent requests from
// the same browser cannot interleave load/save cycles.
func (s *service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

func (s *service) load(ctx context.Context, sessionID string) (*State, error) {
	state, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = &State{}
	}
	return state, nil
}

// save writes the state back best-effort. A failed write never fails the
// request; the in-flight response already reflects the mutation.
func (s *service) save(ctx context.Context, sessionID string, state *State) {
	if err := s.storage.Save(ctx, sessionID, state); err != nil {
		s.log.Warn(s.log.WithCartSession(ctx, sessionID), "cart save failed: "+err.Error())
	}
}

func (s *service) Get(ctx context.Context, sessionID string) (State, error) {
	if sessionID == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return State{}, err
	}
	return state.Copy(), nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (State, error) {
	if sessionID == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	if productID == uuid.Nil {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	// Non-positive quantities are normalized to 1 instead of rejected.
	if qty < 1 {
		qty = 1
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return State{}, err
	}

	if idx := state.find(productID); idx >= 0 {
		state.Lines[idx].Qty += qty
		s.save(ctx, sessionID, state)
		return state.Copy(), nil
	}

	product, err := s.products.GetActiveByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return State{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return State{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	state.Add(Line{
		ProductID: product.ID,
		Title:     product.Title,
		UnitPrice: product.PriceFils,
		ImageURL:  product.ImageURL,
		Qty:       qty,
	})
	s.save(ctx, sessionID, state)
	return state.Copy(), nil
}

func (s *service) SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (State, error) {
	if sessionID == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return State{}, err
	}

	// A non-positive quantity removes the line. Unknown product ids are a
	// no-op either way, the cart is returned unchanged.
	var changed bool
	if qty < 1 {
		changed = state.Remove(productID)
	} else {
		changed = state.SetQuantity(productID, qty)
	}
	if changed {
		s.save(ctx, sessionID, state)
	}
	return state.Copy(), nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (State, error) {
	if sessionID == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return State{}, err
	}
	// Removing an absent line is a no-op, not an error.
	if state.Remove(productID) {
		s.save(ctx, sessionID, state)
	}
	return state.Copy(), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.storage.Delete(ctx, sessionID); err != nil {
		s.log.Warn(s.log.WithCartSession(ctx, sessionID), "cart delete failed: "+err.Error())
	}
	return nil
}
