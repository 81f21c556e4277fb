// Package selection holds the interchangeable strategies that pick one
// resource out of a candidate set.
package selection

import (
	"strings"

	"reservation-engine/internal/domain/resource"
	"reservation-engine/internal/pkg/errs"
)

var ErrUnknownPolicy = errs.New("unknown selection policy")

const (
	NameSmallestFit = "smallest_fit"
	NameFirstFit    = "first_fit"
)

// Policy chooses a resource among candidates, or nil when none qualifies.
// Implementations must be pure.
type Policy interface {
	Select(candidates []*resource.Resource, c resource.Constraint) *resource.Resource
}

// SmallestFit picks the qualifying candidate with the least capacity.
// Equal capacities resolve to the earliest candidate.
type SmallestFit struct{}

func (SmallestFit) Select(candidates []*resource.Resource, c resource.Constraint) *resource.Resource {
	var best *resource.Resource
	for _, r := range candidates {
		if r == nil || !r.Satisfies(c) {
			continue
		}
		if best == nil || r.Capacity() < best.Capacity() {
			best = r
		}
	}
	return best
}

// FirstFit picks the first qualifying candidate in order.
type FirstFit struct{}

func (FirstFit) Select(candidates []*resource.Resource, c resource.Constraint) *resource.Resource {
	for _, r := range candidates {
		if r != nil && r.Satisfies(c) {
			return r
		}
	}
	return nil
}

func ByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSmallestFit, "smallest-fit", "best_fit":
		return SmallestFit{}, nil
	case NameFirstFit, "first-fit":
		return FirstFit{}, nil
	default:
		return nil, errs.Wrap(ErrUnknownPolicy, name)
	}
}
