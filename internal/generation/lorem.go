package generation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	loremgen "github.com/bozaro/golorem"
)

// lorem produces placeholder text without any network access.
type lorem struct {
	mu    sync.Mutex
	gen   *loremgen.Lorem
	delay time.Duration
}

// NewLorem creates an offline backend that answers every model with
// lorem ipsum after delay, laid out for the document type named in the prompt.
func NewLorem(delay time.Duration) Backend {
	return &lorem{
		gen:   loremgen.New(),
		delay: delay,
	}
}

func (l *lorem) Generate(ctx context.Context, _, prompt string) (string, error) {
	if l.delay > 0 {
		select {
		case <-time.After(l.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(l.gen.Sentence(3, 6))

	switch promptType(prompt) {
	case "slide":
		l.slides(&b)
	case "spreadsheet":
		l.table(&b)
	default:
		l.sections(&b)
	}
	return b.String(), nil
}

func (l *lorem) sections(b *strings.Builder) {
	for range 3 {
		b.WriteString("\n\n## ")
		b.WriteString(l.gen.Sentence(2, 5))
		b.WriteString("\n\n")
		b.WriteString(l.gen.Paragraph(3, 5))
	}
}

func (l *lorem) slides(b *strings.Builder) {
	for n := range 4 {
		fmt.Fprintf(b, "\n\n## Slide %d: %s\n", n+1, l.gen.Sentence(2, 4))
		for range 3 {
			b.WriteString("\n- ")
			b.WriteString(l.gen.Sentence(4, 8))
		}
	}
}

func (l *lorem) table(b *strings.Builder) {
	const cols = 4

	row := func(cell func(int) string) {
		b.WriteString("\n|")
		for c := range cols {
			b.WriteString(" ")
			b.WriteString(cell(c))
			b.WriteString(" |")
		}
	}

	b.WriteString("\n")
	row(func(int) string { return l.gen.Word(4, 10) })
	row(func(int) string { return "---" })
	for r := range 5 {
		row(func(c int) string {
			if c == 0 {
				return l.gen.Word(3, 8)
			}
			return strconv.Itoa((r + 1) * (c + 1) * 100)
		})
	}
}

// promptType reads the document type from the first line of a prompt
// rendered by BuildPrompt.
func promptType(prompt string) string {
	rest, ok := strings.CutPrefix(prompt, "Create a ")
	if !ok {
		return ""
	}
	kind, _, _ := strings.Cut(rest, " ")
	return kind
}
