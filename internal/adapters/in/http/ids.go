package http

import (
	"laundry/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// kernelID turns a bound path, header or body uuid into a domain identifier.
// The nil UUID is rejected as invalid.
func kernelID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.ParseID(name, id.String())
}

func apiID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func apiIDPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

// optional returns nil for the zero value so omitempty fields disappear.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
