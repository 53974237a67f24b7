package tex

import (
	"bytes"
	"os"

	"github.com/sungodmoth/glyfi/core"
)

// Document accumulates a complete markup document: the contents of a
// base template followed by generated definition blocks and a document
// body. It does not interpret any of the markup.
type Document struct {
	buf bytes.Buffer
}

// LoadTemplate starts a document from the base template at path. The
// template carries the macro definitions which the generated blocks
// refer to.
func LoadTemplate(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read document template %s", path)
	}
	doc := &Document{}
	doc.buf.Write(data)
	return doc, nil
}

// Append adds a chunk of markup to the end of the document.
func (doc *Document) Append(chunk string) *Document {
	doc.buf.WriteString(chunk)
	return doc
}

// Bytes returns the document assembled so far.
func (doc *Document) Bytes() []byte {
	return doc.buf.Bytes()
}

// WriteFile writes the assembled document to path, overwriting any
// previous version.
func (doc *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, doc.buf.Bytes(), 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write document %s", path)
	}
	tracer().Infof("wrote %s (%d bytes)", path, doc.buf.Len())
	return nil
}
