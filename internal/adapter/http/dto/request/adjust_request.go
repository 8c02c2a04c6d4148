package request

// AdjustRequest is the PUT /cotizaciones/{id}/ajustar body. The adjustment is
// an opaque structured payload; a missing "ajuste" key means an empty one.
type AdjustRequest struct {
	Adjustment map[string]any `json:"ajuste"`
}

func (r AdjustRequest) ResolveAdjustment() map[string]any {
	if r.Adjustment == nil {
		return map[string]any{}
	}
	return r.Adjustment
}
