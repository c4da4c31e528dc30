package document

// MinLines is the initial number of line slots in a new Document.
const MinLines = 100

// Option configures a Document during creation.
type Option func(*Document)

// WithLineCapacity sets the initial gap capacity of every line the document
// creates. Values below 1 keep buffer.MinCapacity.
func WithLineCapacity(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.lineCapacity = n
		}
	}
}

// WithTableCapacity sets the initial number of line slots.
func WithTableCapacity(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.tableCapacity = n
		}
	}
}
