package loader

// Options controls how delimited text is read
type Options struct {
	Delimiter rune // field separator, ',' when zero
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// Source names one input to LoadAll
type Source struct {
	Name string // table name; derived from Path when empty
	Path string
}
