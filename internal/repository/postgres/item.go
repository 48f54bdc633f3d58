package postgres

import (
	"context"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/repository"
)

type itemRepository struct {
	entities *entity.Store
}

func NewItemRepository(entities *entity.Store) repository.ItemRepository {
	return &itemRepository{entities: entities}
}

func (r *itemRepository) Get(ctx context.Context, barcode string) (*domain.Item, error) {
	item := &domain.Item{}
	if err := r.entities.Get(ctx, itemSchema, barcode, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	return r.entities.Create(ctx, itemSchema, itemRecord(item))
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	rec := itemRecord(item)
	delete(rec, "barcode")
	return r.entities.Update(ctx, itemSchema, item.Barcode, rec)
}

func (r *itemRepository) Delete(ctx context.Context, barcode string) error {
	return r.entities.Remove(ctx, itemSchema, barcode)
}

func (r *itemRepository) List(ctx context.Context, q entity.Criteria, opt entity.ReadOptions) ([]domain.Item, int, error) {
	var items []domain.Item
	count, err := r.entities.Read(ctx, itemSchema, q, opt, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func itemRecord(item *domain.Item) map[string]any {
	return map[string]any{
		"barcode":                item.Barcode,
		"title":                  item.Title,
		"author":                 item.Author,
		"description":            item.Description,
		"subject":                item.Subject,
		"publicationyear":        item.PublicationYear,
		"publishercode":          item.PublisherCode,
		"age":                    item.Age,
		"media":                  item.Media,
		"seriestitle":            item.SeriesTitle,
		"classification":         item.Classification,
		"itemnotes":              item.ItemNotes,
		"replacementprice_cents": item.ReplacementPriceCents,
		"state":                  string(item.State),
		"antolin_sticker":        item.AntolinSticker,
		"isbn10":                 item.ISBN10,
		"isbn13":                 item.ISBN13,
	}
}
