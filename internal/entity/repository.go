// Package entity is the CRUD gateway every feature package reads and writes through.
// Each entity kind gets a Repository over its gorm model.
package entity

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("record already exists")
	ErrInvalidField = errors.New("invalid field name")
)

var columnPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Query is an exact-match filter. Sort is a column name, "-" prefixed for descending.
type Query struct {
	Fields map[string]any
	Sort   string
	Limit  int
}

type Repository[T any] struct {
	DB *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{DB: db}
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	return r.Filter(ctx, Query{})
}

func (r *Repository[T]) Filter(ctx context.Context, q Query) ([]T, error) {
	tx := r.DB.WithContext(ctx)

	// deterministic clause order keeps generated SQL stable
	keys := make([]string, 0, len(q.Fields))
	for k := range q.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !columnPattern.MatchString(k) {
			return nil, ErrInvalidField
		}
		tx = tx.Where(k+" = ?", q.Fields[k])
	}

	if q.Sort != "" {
		order, err := orderClause(q.Sort)
		if err != nil {
			return nil, err
		}
		tx = tx.Order(order)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	out := []T{}
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := r.DB.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *Repository[T]) Create(ctx context.Context, rec *T) error {
	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return Translate(err)
	}
	return nil
}

// Update applies a partial column map and returns the stored record.
func (r *Repository[T]) Update(ctx context.Context, id uint, fields map[string]any) (*T, error) {
	for k := range fields {
		if !columnPattern.MatchString(k) {
			return nil, ErrInvalidField
		}
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return current, nil
	}

	if err := r.DB.WithContext(ctx).Model(current).Updates(fields).Error; err != nil {
		return nil, Translate(err)
	}
	return r.Get(ctx, id)
}

func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	var rec T
	res := r.DB.WithContext(ctx).Delete(&rec, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func orderClause(sortField string) (string, error) {
	dir := "asc"
	col := sortField
	if strings.HasPrefix(col, "-") {
		dir = "desc"
		col = col[1:]
	}
	if !columnPattern.MatchString(col) {
		return "", ErrInvalidField
	}
	return col + " " + dir, nil
}

// Translate maps unique-constraint violations onto ErrDuplicate.
func Translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return ErrDuplicate
	}
	return err
}
