package response

import (
	"reservation-engine/internal/usecase/queries"
)

type ResourceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Mode     string `json:"mode"`
	Capacity int    `json:"capacity"`
	Level    int    `json:"level,omitempty"`
}

func FromResourceViews(vs []*queries.ResourceView) []*ResourceResponse {
	out := make([]*ResourceResponse, len(vs))
	for i, v := range vs {
		out[i] = &ResourceResponse{
			ID:       v.ID,
			Name:     v.Name,
			Kind:     v.Kind,
			Mode:     v.Mode,
			Capacity: v.Capacity,
			Level:    v.Level,
		}
	}
	return out
}
