package model

// All returns every model managed by the persistence layer, in migration order.
func All() []any {
	return []any{&CategoryModel{}, &SourceModel{}, &ItemModel{}}
}
