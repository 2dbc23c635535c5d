package domain

// Keywords is the free-text query sent to the upstream "keywords" parameter.
// It doubles as the tag accumulation buffer.
type Keywords string

func (k Keywords) String() string { return string(k) }

// WithTag appends a clicked tag, separated by a single space.
func (k Keywords) WithTag(tag string) Keywords {
	if k == "" {
		return Keywords(tag)
	}
	return k + " " + Keywords(tag)
}
