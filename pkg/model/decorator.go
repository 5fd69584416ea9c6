package model

import (
	"strconv"
	"strings"
)

// Decorator enriches a document model after the canonical structure has been
// built but before rendering.
type Decorator interface {
	Decorate(*DocumentModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*DocumentModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(doc *DocumentModel) error {
	return fn(doc)
}

// NewAnchorDecorator returns a decorator that assigns each function a
// deterministic in-page anchor derived from its name. Collisions get a
// numeric suffix; suffixed anchors are reserved too, so a function literally
// named add-2 never collides with a suffixed add.
func NewAnchorDecorator() Decorator {
	return DecoratorFunc(func(doc *DocumentModel) error {
		if doc == nil {
			return nil
		}
		used := make(map[string]struct{}, len(doc.Functions))
		for i := range doc.Functions {
			base := slugify(doc.Functions[i].Name)
			if base == "" {
				base = "fn"
			}
			anchor := base
			for n := 2; ; n++ {
				if _, taken := used[anchor]; !taken {
					break
				}
				anchor = base + "-" + strconv.Itoa(n)
			}
			used[anchor] = struct{}{}
			doc.Functions[i].Anchor = anchor
		}
		return nil
	})
}

func slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
