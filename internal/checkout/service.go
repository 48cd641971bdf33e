package checkout

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/khaldoun-digital/baytkum-backend/internal/cart"
	"github.com/khaldoun-digital/baytkum-backend/internal/orders"
	"github.com/khaldoun-digital/baytkum-backend/pkg/db/models"
	"github.com/khaldoun-digital/baytkum-backend/pkg/enums"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/money"
)

// phonePattern accepts Kuwaiti numbers with or without the +965 prefix.
var phonePattern = regexp.MustCompile(`^(\+?965)?[0-9]{8}$`)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartService interface {
	Get(ctx context.Context, sessionID string) (cart.State, error)
	Clear(ctx context.Context, sessionID string) error
}

// SubmitInput carries the customer details collected at checkout.
type SubmitInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Notes           *string
}

// Service turns a session cart into a pending order.
type Service interface {
	Submit(ctx context.Context, sessionID string, input SubmitInput) (*models.Order, error)
}

type service struct {
	carts         cartService
	ordersRepo    orders.Repository
	tx            txRunner
	log           *logger.Logger
	submitTimeout time.Duration
}

// NewService builds the checkout service backed by the provided stack.
func NewService(carts cartService, ordersRepo orders.Repository, tx txRunner, log *logger.Logger, submitTimeout time.Duration) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if submitTimeout <= 0 {
		submitTimeout = 15 * time.Second
	}
	return &service{
		carts:         carts,
		ordersRepo:    ordersRepo,
		tx:            tx,
		log:           log,
		submitTimeout: submitTimeout,
	}, nil
}

func validateInput(input SubmitInput) error {
	name := strings.TrimSpace(input.CustomerName)
	phone := strings.ReplaceAll(strings.TrimSpace(input.CustomerPhone), " ", "")
	address := strings.TrimSpace(input.CustomerAddress)

	details := map[string]string{}
	if name == "" {
		details["customerName"] = "required"
	}
	if phone == "" {
		details["customerPhone"] = "required"
	} else if !phonePattern.MatchString(phone) {
		details["customerPhone"] = "must be a valid phone number"
	}
	if address == "" {
		details["customerAddress"] = "required"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid checkout details").WithDetails(details)
	}
	return nil
}

// Submit validates the customer details, snapshots the cart into an order
// and persists it atomically. The cart is cleared only after the order is
// committed; any failure leaves the cart intact for a retry.
func (s *service) Submit(ctx context.Context, sessionID string, input SubmitInput) (*models.Order, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	state, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	order, err := buildOrder(ctx, state, input)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		_, txErr := s.ordersRepo.WithTx(tx).Create(ctx, order)
		return txErr
	})
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	// Persisted and acknowledged; the cart can go now.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.log.Warn(s.log.WithCartSession(ctx, sessionID), "cart clear after checkout failed: "+err.Error())
	}

	s.log.Info(s.log.WithFields(ctx, map[string]any{
		"orderId":   order.ID.String(),
		"totalFils": int64(order.TotalFils),
		"items":     len(order.Items),
	}), "order submitted")
	return order, nil
}

// buildOrder freezes the cart lines into order items. Titles and unit
// prices come from the cart, not the live catalog, so later product edits
// never change what the customer agreed to.
func buildOrder(ctx context.Context, state cart.State, input SubmitInput) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(state.Lines))
	var total money.Fils
	for _, line := range state.Lines {
		if line.Qty < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart line has invalid quantity")
		}
		productID := line.ProductID
		items = append(items, models.OrderItem{
			ProductID:     &productID,
			Title:         line.Title,
			UnitPriceFils: line.UnitPrice,
			Qty:           line.Qty,
			TotalFils:     line.Total(),
		})
		total += line.Total()
	}
	if total != state.Total() {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "order total does not match cart total")
	}

	var notes *string
	if input.Notes != nil {
		trimmed := strings.TrimSpace(*input.Notes)
		if trimmed != "" {
			notes = &trimmed
		}
	}

	return &models.Order{
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.ReplaceAll(strings.TrimSpace(input.CustomerPhone), " ", ""),
		CustomerAddress: strings.TrimSpace(input.CustomerAddress),
		Notes:           notes,
		Lang:            i18n.FromContext(ctx),
		Status:          enums.OrderStatusPending,
		TotalFils:       total,
		Items:           items,
	}, nil
}
