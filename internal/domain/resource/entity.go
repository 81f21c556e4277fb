package resource

import (
	"strings"

	"reservation-engine/internal/pkg/errs"
)

var (
	ErrEmptyResourceID     = errs.New("resource id cannot be empty")
	ErrResourceIDTooLong   = errs.New("resource id is too long (max 64 characters)")
	ErrNegativeCapacity    = errs.New("capacity cannot be negative")
	ErrInvalidKind         = errs.New("invalid resource kind")
	ErrResourceNameTooLong = errs.New("resource name is too long (max 255 characters)")
)

const (
	MaxResourceIDLength   = 64
	MaxResourceNameLength = 255
)

type ID string

func (id ID) String() string { return string(id) }

// Handle is the dense slot index assigned when a resource is provisioned.
type Handle int

// Spec describes a resource before it is placed in the catalog.
type Spec struct {
	ID       ID
	Name     string
	Kind     Kind
	Capacity int
	Level    int
}

type Resource struct {
	id       ID
	handle   Handle
	name     string
	kind     Kind
	mode     Mode
	capacity int
	level    int
}

// NewResource validates spec and binds it to handle. The mode is derived from the kind.
func NewResource(handle Handle, spec Spec) (*Resource, error) {
	id := ID(strings.TrimSpace(string(spec.ID)))
	if id == "" {
		return nil, ErrEmptyResourceID
	}
	if len(id) > MaxResourceIDLength {
		return nil, ErrResourceIDTooLong
	}
	if !spec.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if spec.Capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	name := strings.TrimSpace(spec.Name)
	if name == "" {
		name = string(id)
	}
	if len(name) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}

	return &Resource{
		id:       id,
		handle:   handle,
		name:     name,
		kind:     spec.Kind,
		mode:     spec.Kind.Mode(),
		capacity: spec.Capacity,
		level:    spec.Level,
	}, nil
}

func (r *Resource) Satisfies(c Constraint) bool {
	if r.capacity < c.MinCapacity {
		return false
	}
	if len(c.Kinds) == 0 {
		return true
	}
	for _, k := range c.Kinds {
		if k == r.kind {
			return true
		}
	}
	return false
}

func (r *Resource) ID() ID            { return r.id }
func (r *Resource) Handle() Handle    { return r.handle }
func (r *Resource) Name() string      { return r.name }
func (r *Resource) Kind() Kind        { return r.kind }
func (r *Resource) Mode() Mode        { return r.mode }
func (r *Resource) Capacity() int     { return r.capacity }
func (r *Resource) Level() int        { return r.level }
func (r *Resource) IsTimed() bool     { return r.mode == ModeTimed }
func (r *Resource) IsOccupancy() bool { return r.mode == ModeOccupancy }
