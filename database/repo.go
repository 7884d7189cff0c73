package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/models"
)

// Query narrows a FindAll or Count call. Zero value means every row, newest first.
type Query struct {
	Where   map[string]any
	Not     map[string]any
	OrderBy string
	Limit   int
}

const newestFirst = "created_at DESC"

// record ties a model type to its pointer, which carries the Base accessors.
type record[M any] interface {
	*M
	models.Record
}

// Repo is the CRUD repository shared by every content entity.
type Repo[M any, P record[M]] struct {
	db     *gorm.DB
	entity string
}

func NewRepo[M any, P record[M]](db *gorm.DB, entity string) *Repo[M, P] {
	return &Repo[M, P]{db: db, entity: entity}
}

// Entity names the model in error messages.
func (r *Repo[M, P]) Entity() string {
	return r.entity
}

func (r *Repo[M, P]) scoped(ctx context.Context, q Query) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(new(M))
	if len(q.Where) > 0 {
		tx = tx.Where(q.Where)
	}
	if len(q.Not) > 0 {
		tx = tx.Not(q.Not)
	}
	return tx
}

// FindAll returns the rows matching q, never nil.
func (r *Repo[M, P]) FindAll(ctx context.Context, q Query) ([]M, error) {
	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = newestFirst
	}
	tx := r.scoped(ctx, q).Order(orderBy)
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	items := []M{}
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repo[M, P]) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	err := r.scoped(ctx, q).Count(&n).Error
	return n, err
}

// FindByID returns errs.ErrNotFound when no row has id.
func (r *Repo[M, P]) FindByID(ctx context.Context, id uuid.UUID) (M, error) {
	var item M
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, errs.NewNotFound(r.entity)
	}
	return item, err
}

// Add inserts item, filling in its id and timestamps.
func (r *Repo[M, P]) Add(ctx context.Context, item *M) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update replaces every column of the row with id except its creation time, then
// reloads item from the database.
func (r *Repo[M, P]) Update(ctx context.Context, id uuid.UUID, item *M) error {
	P(item).Meta().ID = id

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(item).Select("*").Omit("id", "created_at").Updates(item)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NewNotFound(r.entity)
		}
		return tx.First(item, "id = ?", id).Error
	})
}

// Delete returns errs.ErrNotFound when no row has id.
func (r *Repo[M, P]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound(r.entity)
	}
	return nil
}
