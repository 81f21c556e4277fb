//go:build unit || e2e

package builder

import (
	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/usecase/queries"
)

type ResourceBuilder struct {
	Spec resource.Spec
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{Spec: resource.Spec{
		ID:       "R1",
		Name:     "Room 1",
		Kind:     resource.KindRoom,
		Capacity: 4,
	}}
}

func (b *ResourceBuilder) With(mutate func(*resource.Spec)) *ResourceBuilder {
	mutate(&b.Spec)
	return b
}

func (b *ResourceBuilder) BuildDomain(h resource.Handle) (*resource.Resource, error) {
	return resource.NewResource(h, b.Spec)
}

func (b *ResourceBuilder) BuildView() *queries.ResourceView {
	id := string(b.Spec.ID)
	name := b.Spec.Name
	if name == "" {
		name = id
	}
	return &queries.ResourceView{
		ID:       id,
		Name:     name,
		Kind:     b.Spec.Kind.String(),
		Mode:     b.Spec.Kind.Mode().String(),
		Capacity: b.Spec.Capacity,
		Level:    b.Spec.Level,
	}
}

func Room(id string, capacity int) resource.Spec {
	return resource.Spec{ID: resource.ID(id), Kind: resource.KindRoom, Capacity: capacity}
}

func Spot(id string, kind resource.Kind) resource.Spec {
	return resource.Spec{ID: resource.ID(id), Kind: kind, Capacity: 1, Level: 1}
}
