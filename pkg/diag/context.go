package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Context is a range of text in a named source. It is attached to parse errors
// and evaluation exceptions so that they can be shown with the offending code.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Styles of the culprit and of error messages. Both honor color.NoColor, which
// is set automatically when stdout is not a terminal.
var (
	culpritStyle = color.New(color.Bold, color.Underline)
	messageStyle = color.New(color.FgRed, color.Bold)
)

const culpritPlaceHolder = "^"

// Culprit returns the source text covered by the context.
func (c *Context) Culprit() string {
	if c.checkPosition() != nil {
		return ""
	}
	return c.Source[c.From:c.To]
}

// Position returns the 1-based line and column of the start of the range.
// Columns count bytes.
func (c *Context) Position() (line, col int) {
	from := c.From
	if from < 0 {
		return 0, 0
	}
	if from > len(c.Source) {
		from = len(c.Source)
	}
	before := c.Source[:from]
	line = strings.Count(before, "\n") + 1
	col = from - (strings.LastIndexByte(before, '\n') + 1) + 1
	return line, col
}

// Describe returns "name:line:col".
func (c *Context) Describe() string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	line, col := c.Position()
	return fmt.Sprintf("%s:%d:%d", c.Name, line, col)
}

// Show shows the position description followed by the line containing the
// culprit, with the culprit highlighted.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Describe() + ": " + c.relevantSource(indent)
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) relevantSource(indent string) string {
	before := c.Source[:c.From]
	culprit := strings.TrimSuffix(c.Source[c.From:c.To], "\n")
	after := c.Source[c.To:]

	head := before[strings.LastIndexByte(before, '\n')+1:]
	tail := ""
	if !strings.Contains(culprit, "\n") {
		if i := strings.IndexByte(after, '\n'); i != -1 {
			tail = after[:i]
		} else {
			tail = after
		}
	}
	if culprit == "" {
		culprit = culpritPlaceHolder
	}

	var sb strings.Builder
	sb.WriteString(head)
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteString("\n" + indent)
		}
		sb.WriteString(culpritStyle.Sprint(line))
	}
	sb.WriteString(tail)
	return sb.String()
}
