package physics

import "github.com/elliotchance/orderedmap/v2"

// Filter excludes entities from casts and contact queries. The ground caster
// always excludes the controlled body itself, and games typically add held
// objects or vehicle parts. Iteration order is insertion order so query
// behavior stays deterministic across runs.
type Filter struct {
	exclude *orderedmap.OrderedMap[Entity, struct{}]
}

// NewFilter returns a filter excluding the given entities.
func NewFilter(exclude ...Entity) *Filter {
	f := &Filter{exclude: orderedmap.NewOrderedMap[Entity, struct{}]()}
	for _, e := range exclude {
		f.exclude.Set(e, struct{}{})
	}
	return f
}

// Exclude adds an entity to the exclusion set.
func (f *Filter) Exclude(e Entity) {
	f.exclude.Set(e, struct{}{})
}

// Excluded reports whether the entity is excluded. A nil filter excludes
// nothing.
func (f *Filter) Excluded(e Entity) bool {
	if f == nil || f.exclude == nil {
		return false
	}
	_, ok := f.exclude.Get(e)
	return ok
}

// Excludes returns the excluded entities in insertion order.
func (f *Filter) Excludes() []Entity {
	if f == nil || f.exclude == nil {
		return nil
	}
	out := make([]Entity, 0, f.exclude.Len())
	for el := f.exclude.Front(); el != nil; el = el.Next() {
		out = append(out, el.Key)
	}
	return out
}
