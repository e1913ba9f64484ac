package xml

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/TerameTechYT/luadata"
)

// Decoder reads and decodes an XML document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the XML document from the input and returns the table
// for its root element.
func (d *Decoder) Decode() (any, error) {
	o, err := applyOptions(d.opts)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, luadata.ErrEmptyInput
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &luadata.SyntaxError{Format: "xml", Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("xml: document has no root element")
	}

	ds := &decodeState{depth: o.maxDepth}
	return ds.element(root)
}

type decodeState struct {
	depth int
}

// element maps el onto the fixed tag/attr/text/children schema. attr
// and children are always present, text only when the element carries
// non-whitespace character data.
func (ds *decodeState) element(el *etree.Element) (*luadata.Table, error) {
	ds.depth--
	if ds.depth <= 0 {
		return nil, fmt.Errorf("xml: maximum nesting depth exceeded")
	}
	defer func() { ds.depth++ }()

	t := luadata.New()
	t.SetField("tag", el.Tag)

	attr := luadata.New()
	for _, a := range el.Attr {
		attr.SetField(a.Key, a.Value)
	}
	t.SetField("attr", attr)

	if text := strings.TrimSpace(el.Text()); text != "" {
		t.SetField("text", text)
	}

	children := luadata.New()
	for i, ch := range el.ChildElements() {
		sub, err := ds.element(ch)
		if err != nil {
			return nil, err
		}
		children.SetInt(int64(i)+1, sub)
	}
	t.SetField("children", children)

	return t, nil
}
