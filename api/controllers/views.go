package controllers

import (
	"time"

	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/internal/cart"
	"github.com/khaldoun-digital/baytkum-backend/pkg/db/models"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
)

// Public views render one language; admin views carry both so the
// dashboard can edit them side by side.

type productView struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Price          string    `json:"price"`
	PriceFormatted string    `json:"priceFormatted"`
	ImageURL       *string   `json:"imageUrl,omitempty"`
	Category       *string   `json:"category,omitempty"`
}

func newProductView(product *models.Product, lang i18n.Lang) productView {
	return productView{
		ID:             product.ID,
		Title:          product.Title.In(lang),
		Description:    product.Description.In(lang),
		Price:          product.PriceFils.String(),
		PriceFormatted: product.PriceFils.Localize(lang),
		ImageURL:       product.ImageURL,
		Category:       product.Category,
	}
}

func newProductViews(products []models.Product, lang i18n.Lang) []productView {
	views := make([]productView, 0, len(products))
	for i := range products {
		views = append(views, newProductView(&products[i], lang))
	}
	return views
}

type adminProductView struct {
	ID          uuid.UUID `json:"id"`
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Price       string    `json:"price"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Category    *string   `json:"category,omitempty"`
	IsActive    bool      `json:"isActive"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newAdminProductView(product *models.Product) adminProductView {
	return adminProductView{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.PriceFils.String(),
		ImageURL:    product.ImageURL,
		Category:    product.Category,
		IsActive:    product.IsActive,
		SortOrder:   product.SortOrder,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

type cartLineView struct {
	ProductID          uuid.UUID `json:"productId"`
	Title              string    `json:"title"`
	UnitPrice          string    `json:"unitPrice"`
	UnitPriceFormatted string    `json:"unitPriceFormatted"`
	Qty                int       `json:"qty"`
	LineTotal          string    `json:"lineTotal"`
	ImageURL           *string   `json:"imageUrl,omitempty"`
}

type cartView struct {
	Lines          []cartLineView `json:"lines"`
	ItemCount      int            `json:"itemCount"`
	Total          string         `json:"total"`
	TotalFormatted string         `json:"totalFormatted"`
}

func newCartView(state cart.State, lang i18n.Lang) cartView {
	lines := make([]cartLineView, 0, len(state.Lines))
	for _, line := range state.Lines {
		lines = append(lines, cartLineView{
			ProductID:          line.ProductID,
			Title:              line.Title.In(lang),
			UnitPrice:          line.UnitPrice.String(),
			UnitPriceFormatted: line.UnitPrice.Localize(lang),
			Qty:                line.Qty,
			LineTotal:          line.Total().String(),
			ImageURL:           line.ImageURL,
		})
	}
	return cartView{
		Lines:          lines,
		ItemCount:      state.ItemCount(),
		Total:          state.Total().String(),
		TotalFormatted: state.Total().Localize(lang),
	}
}

type orderItemView struct {
	ProductID *uuid.UUID `json:"productId,omitempty"`
	Title     i18n.Text  `json:"title"`
	UnitPrice string     `json:"unitPrice"`
	Qty       int        `json:"qty"`
	Total     string     `json:"total"`
}

type orderView struct {
	ID              uuid.UUID       `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerAddress string          `json:"customerAddress"`
	Notes           *string         `json:"notes,omitempty"`
	Lang            string          `json:"lang"`
	Status          string          `json:"status"`
	Total           string          `json:"total"`
	Items           []orderItemView `json:"items"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func newOrderView(order *models.Order) orderView {
	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPriceFils.String(),
			Qty:       item.Qty,
			Total:     item.TotalFils.String(),
		})
	}
	return orderView{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		Notes:           order.Notes,
		Lang:            string(order.Lang),
		Status:          string(order.Status),
		Total:           order.TotalFils.String(),
		Items:           items,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func newOrderViews(orders []models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, newOrderView(&orders[i]))
	}
	return views
}

type listMeta struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type listEnvelope[T any] struct {
	Items []T      `json:"items"`
	Meta  listMeta `json:"meta"`
}

type postView struct {
	ID            uuid.UUID  `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Body          string     `json:"body,omitempty"`
	CoverImageURL *string    `json:"coverImageUrl,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
}

func newPostView(post *models.BlogPost, lang i18n.Lang, includeBody bool) postView {
	view := postView{
		ID:            post.ID,
		Slug:          post.Slug,
		Title:         post.Title.In(lang),
		Excerpt:       post.Excerpt.In(lang),
		CoverImageURL: post.CoverImageURL,
		PublishedAt:   post.PublishedAt,
	}
	if includeBody {
		view.Body = post.Body.In(lang)
	}
	return view
}

type adminPostView struct {
	ID            uuid.UUID  `json:"id"`
	Slug          string     `json:"slug"`
	Title         i18n.Text  `json:"title"`
	Excerpt       i18n.Text  `json:"excerpt"`
	Body          i18n.Text  `json:"body"`
	CoverImageURL *string    `json:"coverImageUrl,omitempty"`
	IsPublished   bool       `json:"isPublished"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func newAdminPostView(post *models.BlogPost) adminPostView {
	return adminPostView{
		ID:            post.ID,
		Slug:          post.Slug,
		Title:         post.Title,
		Excerpt:       post.Excerpt,
		Body:          post.Body,
		CoverImageURL: post.CoverImageURL,
		IsPublished:   post.IsPublished,
		PublishedAt:   post.PublishedAt,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

type testimonialView struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"authorName"`
	Quote      string    `json:"quote"`
	Rating     int       `json:"rating"`
}

func newTestimonialViews(items []models.Testimonial, lang i18n.Lang) []testimonialView {
	views := make([]testimonialView, 0, len(items))
	for _, item := range items {
		views = append(views, testimonialView{
			ID:         item.ID,
			AuthorName: item.AuthorName,
			Quote:      item.Quote.In(lang),
			Rating:     item.Rating,
		})
	}
	return views
}
