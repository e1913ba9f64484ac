package xml

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/TerameTechYT/luadata"
)

// Encoder writes XML-encoded element tables to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the XML encoding of the element described by t to the
// stream. The table must follow the tag/attr/text/children schema; this
// is not a generic table encoder.
func (e *Encoder) Encode(t *luadata.Table) error {
	o, err := applyOptions(e.opts)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("xml: cannot serialize nil table")
	}

	es := &encodeState{seen: make(map[*luadata.Table]struct{}), depth: o.maxDepth}
	root, err := es.element(t)
	if err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.SetRoot(root)
	doc.IndentTabs()
	b, err := doc.WriteToBytes()
	if err != nil {
		return &luadata.SyntaxError{Format: "xml", Err: err}
	}
	_, err = e.w.Write(b)
	return err
}

type encodeState struct {
	seen  map[*luadata.Table]struct{}
	depth int
}

func (es *encodeState) element(t *luadata.Table) (*etree.Element, error) {
	es.depth--
	if es.depth <= 0 {
		return nil, fmt.Errorf("xml: maximum nesting depth exceeded")
	}
	if _, ok := es.seen[t]; ok {
		return nil, &luadata.CycleError{Format: "xml"}
	}
	es.seen[t] = struct{}{}
	defer func() {
		delete(es.seen, t)
		es.depth++
	}()

	tag, err := stringField(t, "tag")
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return nil, fmt.Errorf("xml: element missing non-empty tag field")
	}
	el := etree.NewElement(tag)

	if av, ok := t.GetField("attr"); ok && av != nil {
		attrs, ok := av.(*luadata.Table)
		if !ok {
			return nil, fmt.Errorf("xml: attr must be a table, got %T", av)
		}
		for k, v := range attrs.All() {
			if k.IsInt() {
				return nil, &luadata.KeyTypeError{Format: "xml", In: "attr", Key: k}
			}
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("xml: attr values must be strings, got %T", v)
			}
			el.CreateAttr(k.String(), s)
		}
	}

	text, err := stringField(t, "text")
	if err != nil {
		return nil, err
	}
	if text != "" {
		el.SetText(text)
	}

	if cv, ok := t.GetField("children"); ok && cv != nil {
		children, ok := cv.(*luadata.Table)
		if !ok {
			return nil, fmt.Errorf("xml: children must be a table, got %T", cv)
		}
		for i := int64(1); i <= children.MaxN(); i++ {
			entry, _ := children.GetInt(i)
			child, ok := entry.(*luadata.Table)
			if !ok {
				return nil, fmt.Errorf("xml: children entries must be tables, got %T", entry)
			}
			sub, err := es.element(child)
			if err != nil {
				return nil, err
			}
			el.AddChild(sub)
		}
	}

	return el, nil
}

// stringField reads an optional string field, distinguishing an absent
// or nil field (empty result) from a field of the wrong type.
func stringField(t *luadata.Table, name string) (string, error) {
	v, ok := t.GetField(name)
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("xml: %s must be a string, got %T", name, v)
	}
	return s, nil
}
