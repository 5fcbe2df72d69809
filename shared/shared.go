package shared

import (
	"context"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"

	"oasis/shared/cache"
	"oasis/shared/dto"
)

// BuildCacheKey joins the given parts into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// PatchFields converts a patch struct into the map of columns to update.
// Patchable fields are pointers: a nil pointer means "not provided" and is
// skipped, so explicit zero values (isPaid=false, discount=0) still reach
// the database. Non-pointer fields are included only when non-zero.
func PatchFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	fields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)

		column := typ.Field(index).Tag.Get("db")
		if column == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}

			fields[column] = field.Elem().Interface()

			continue
		}

		if field.IsZero() {
			continue
		}

		fields[column] = field.Interface()
	}

	return fields
}

// FilterByID builds a filter matching a single row by its numeric key.
func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByValue builds a filter matching rows by an arbitrary column value.
func FilterByValue(value any, field, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
