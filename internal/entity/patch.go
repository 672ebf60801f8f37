package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// DecodePatch reads a partial JSON object into a T and reports which columns it set.
// Keys outside allowed are rejected.
func DecodePatch[T any](body []byte, allowed map[string]bool) (*T, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, err
	}

	cols := make([]string, 0, len(raw))
	for k := range raw {
		if !allowed[k] {
			return nil, nil, fmt.Errorf("%w: %s", ErrInvalidField, k)
		}
		cols = append(cols, k)
	}
	sort.Strings(cols)

	var patch T
	if err := json.Unmarshal(body, &patch); err != nil {
		return nil, nil, err
	}
	return &patch, cols, nil
}

// Patch writes the given columns of input onto record id, zero values included.
func (r *Repository[T]) Patch(ctx context.Context, id uint, input *T, columns []string) (*T, error) {
	for _, c := range columns {
		if !columnPattern.MatchString(c) {
			return nil, ErrInvalidField
		}
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return current, nil
	}

	if err := r.DB.WithContext(ctx).Model(current).Select(columns).Updates(input).Error; err != nil {
		return nil, Translate(err)
	}
	return r.Get(ctx, id)
}
