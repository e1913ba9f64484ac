package luadata

// Codec is the uniform serialization surface implemented by each format
// subpackage. It allows callers to drive any of the supported formats
// through one interface.
type Codec interface {
	// ContentType returns the MIME type of the encoded form.
	ContentType() string

	// Marshal encodes t into the codec's textual format.
	Marshal(t *Table) ([]byte, error)

	// Unmarshal decodes data into a host value, usually a *Table.
	Unmarshal(data []byte) (any, error)
}
