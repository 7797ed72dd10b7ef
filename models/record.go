package models

// Record is a loosely-typed payload as returned by the wardrobe store.
// Field names follow the store contract (e.g. "id", "pantLength", "itemIds"),
// values may arrive in several shapes and are normalized by the decoder package.
type Record map[string]interface{}

// Lookup returns the value stored under key, treating explicit nils as absent
func (r Record) Lookup(key string) (interface{}, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
