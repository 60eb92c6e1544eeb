package render

import "strings"

// builder accumulates rendered SQL text. It is the single sink every
// sub-visitor writes into; nothing downstream of Render ever builds its
// own string and splices it in, so operator precedence and spacing stay
// centralized in the renderers that call write.
type builder struct {
	sb strings.Builder
}

func (b *builder) write(s string) {
	b.sb.WriteString(s)
}

func (b *builder) String() string {
	return b.sb.String()
}
