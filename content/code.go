package content

import (
	"fmt"
	"strconv"

	"github.com/gogpu/bookmark/rng"
)

// Probabilities for the weighted slot draws.
const (
	suffixChance = 0.4
	poeticChance = 0.25
)

// template renders one line, drawing its slots from g left to right.
type template func(g *gen, line int) string

// templates is the fixed, ordered template table. The first draw of every
// line selects an index into it.
var templates = []template{
	func(g *gen, _ int) string {
		return fmt.Sprintf("const %s = %s;", g.ident(), g.number())
	},
	func(g *gen, _ int) string {
		return fmt.Sprintf("let %s = %s;", g.ident(), g.str())
	},
	func(g *gen, _ int) string {
		name := g.ident()
		arg := g.ident()
		return fmt.Sprintf("function %s(%s) { return %s; }", name, arg, g.ident())
	},
	func(g *gen, _ int) string {
		lhs := g.ident()
		rhs := g.number()
		return fmt.Sprintf("if (%s > %s) { %s++; }", lhs, rhs, g.ident())
	},
	func(g *gen, _ int) string {
		n := g.s.Intn(3, 12)
		return fmt.Sprintf("for (let i = 0; i < %d; i++) { %s.push(i); }", n, g.ident())
	},
	func(g *gen, _ int) string {
		id := g.ident()
		return fmt.Sprintf("console.log(%s, %s);", id, g.str())
	},
	func(g *gen, _ int) string {
		name := g.ident()
		arg := g.ident()
		return fmt.Sprintf("export const %s = (%s) => %s;", name, arg, g.ident())
	},
	func(g *gen, _ int) string {
		recv := g.ident()
		method := rng.Choice(g.s, methods)
		return fmt.Sprintf("%s.%s(%s);", recv, method, g.ident())
	},
	func(g *gen, line int) string {
		tag := rng.Choice(g.s, commentTags)
		return fmt.Sprintf("// %s: %s %d", tag, rng.Choice(g.s, commentNotes), line)
	},
	func(g *gen, _ int) string {
		id := g.ident()
		return fmt.Sprintf("let %s = %s;", id, rng.Choice(g.s, boolLiterals))
	},
}

// gen fills template slots. Multi-slot templates bind slots to locals so
// the draw order reads top to bottom.
type gen struct {
	s *rng.Stream
}

func (g *gen) ident() string {
	if g.s.Bool(suffixChance) {
		part := rng.Choice(g.s, identParts)
		return part + rng.Choice(g.s, identSuffixes)
	}
	return rng.Choice(g.s, identParts)
}

func (g *gen) str() string {
	word := rng.Choice(g.s, stringWords)
	return strconv.Quote(fmt.Sprintf("%s-%d", word, g.s.Intn(1, 99)))
}

func (g *gen) number() string {
	if g.s.Bool(poeticChance) {
		return rng.Choice(g.s, poeticNumbers)
	}
	return strconv.Itoa(g.s.Intn(0, 999))
}

// Code returns n fake source lines drawn from s. Line numbers used by
// comment lines start at 1. n <= 0 yields nil.
func Code(s *rng.Stream, n int) []string {
	if n <= 0 {
		return nil
	}
	g := &gen{s: s}
	lines := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		t := rng.Choice(s, templates)
		lines = append(lines, t(g, i))
	}
	return lines
}

// TemplateCount returns the number of line templates.
func TemplateCount() int {
	return len(templates)
}
