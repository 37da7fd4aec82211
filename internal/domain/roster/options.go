package roster

// Option applies a configuration option to the parser.
type Option func(*parser)

// WithMaxRows caps the number of data rows read from the table. Zero or
// negative means unbounded.
func WithMaxRows(n int) Option {
	return func(p *parser) {
		p.maxRows = n
	}
}

// WithDelimiter forces a field delimiter instead of sniffing the header row.
func WithDelimiter(d rune) Option {
	return func(p *parser) {
		if d != 0 {
			p.delimiter = d
		}
	}
}
