package riskform

import (
	"io/fs"

	"github.com/goliatone/go-riskform/pkg/contract"
	"github.com/goliatone/go-riskform/pkg/render"
	"github.com/goliatone/go-riskform/pkg/uischema"
)

// EmbeddedTemplates exposes the bundled result templates so callers can reuse
// or extend them without importing the render package directly.
func EmbeddedTemplates() fs.FS {
	return render.Templates()
}

// EmbeddedSchema exposes the bundled UI schema (labels, units, placeholders).
func EmbeddedSchema() fs.FS {
	return uischema.EmbeddedFS()
}

// ContractDocument returns the OpenAPI document describing POST /predict.
func ContractDocument() []byte {
	return contract.Document()
}
