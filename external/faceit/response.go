package faceit

import (
	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// Response holds the entities of one listing or search call, in the order the
// upstream returned them.
type Response[T any] struct {
	items []T
}

func NewResponse[T any](items []T) *Response[T] {
	owned := make([]T, len(items))
	copy(owned, items)
	return &Response[T]{items: owned}
}

// Items returns a copy of the entities.
func (r *Response[T]) Items() []T {
	if r == nil {
		return nil
	}
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Response[T]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

func (r *Response[T]) At(i int) (T, bool) {
	var zero T
	if r == nil || i < 0 || i >= len(r.items) {
		return zero, false
	}
	return r.items[i], true
}

func (r *Response[T]) MarshalJSON() ([]byte, error) {
	items := []T{}
	if r != nil && r.items != nil {
		items = r.items
	}
	return sonic.Marshal(struct {
		Items []T `json:"items"`
	}{Items: items})
}

// GamesResult is what GetGames returns: a single game document when an id was
// given, the full game listing otherwise.
type GamesResult struct {
	game  Document
	games *Response[Game]
}

func (r GamesResult) IsList() bool { return r.games != nil }

func (r GamesResult) Game() (Document, bool) {
	if r.games != nil {
		return nil, false
	}
	return r.game, true
}

func (r GamesResult) List() (*Response[Game], bool) {
	return r.games, r.games != nil
}

func (r GamesResult) MarshalJSON() ([]byte, error) {
	if r.games != nil {
		return r.games.MarshalJSON()
	}
	return sonic.Marshal(map[string]any(r.game))
}

// mapItems builds one entity per element of the body's items array.
func mapItems[T any](body any, build func(Document) T) (*Response[T], error) {
	root, ok := asObject(body)
	if !ok {
		return nil, crerr.Wrapf(ErrMapping, "listing body is %T, not an object", body)
	}
	raw, ok := root["items"]
	if !ok {
		return nil, crerr.Wrap(ErrMapping, "listing body has no items field")
	}
	elements, ok := raw.([]any)
	if !ok {
		return nil, crerr.Wrapf(ErrMapping, "listing items is %T, not an array", raw)
	}

	items := make([]T, 0, len(elements))
	for i, element := range elements {
		doc, ok := asObject(element)
		if !ok {
			return nil, crerr.Wrapf(ErrMapping, "listing item %d is %T, not an object", i, element)
		}
		items = append(items, build(doc))
	}
	return &Response[T]{items: items}, nil
}

// asDocument accepts an object body or an empty one.
func asDocument(body any) (Document, error) {
	if body == nil {
		return nil, nil
	}
	doc, ok := asObject(body)
	if !ok {
		return nil, crerr.Wrapf(ErrMapping, "resource body is %T, not an object", body)
	}
	return doc, nil
}
