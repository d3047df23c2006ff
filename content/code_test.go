package content

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/gogpu/bookmark/rng"
)

func TestCodeLength(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{5, 5},
		{400, 400},
	}
	for _, tt := range tests {
		got := Code(rng.New("len"), tt.n)
		if len(got) != tt.want {
			t.Errorf("len(Code(%d)) = %d, want %d", tt.n, len(got), tt.want)
		}
	}
}

func TestCodeDeterministic(t *testing.T) {
	a := Code(rng.New("abc123"), 50)
	b := Code(rng.New("abc123"), 50)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different lines")
	}
	c := Code(rng.New("abc124"), 50)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical lines")
	}
}

func TestCodePrefixStable(t *testing.T) {
	// Asking for more lines never changes the earlier ones.
	short := Code(rng.New("prefix"), 10)
	long := Code(rng.New("prefix"), 30)
	if !reflect.DeepEqual(short, long[:10]) {
		t.Errorf("Code(10) = %q, want prefix of Code(30)", short)
	}
}

func TestCodeLinesMatchTemplates(t *testing.T) {
	ident := `(?:user|room|token|state|node|view|data|rect|path|font|line|clip)(?:Id|Map|List|Cfg|Ref|Count|Index|Value|State)?`
	str := `"(?:hello|bookmark|paper|opentype|svg|render|stroke|path)-(?:[1-9]|[1-9][0-9])"`
	num := `(?:[0-9]+(?:\.[0-9]+)?)`
	patterns := []string{
		`const ` + ident + ` = ` + num + `;`,
		`let ` + ident + ` = ` + str + `;`,
		`function ` + ident + `\(` + ident + `\) \{ return ` + ident + `; \}`,
		`if \(` + ident + ` > ` + num + `\) \{ ` + ident + `\+\+; \}`,
		`for \(let i = 0; i < (?:[3-9]|1[0-2]); i\+\+\) \{ ` + ident + `\.push\(i\); \}`,
		`console\.log\(` + ident + `, ` + str + `\);`,
		`export const ` + ident + ` = \(` + ident + `\) => ` + ident + `;`,
		ident + `\.(?:add|set|get|map|filter)\(` + ident + `\);`,
		`// (?:TODO|FIXME|NOTE): (?:cleanup|optimize|refactor|edge case) [0-9]+`,
		`let ` + ident + ` = (?:true|false);`,
	}
	if len(patterns) != TemplateCount() {
		t.Fatalf("have %d patterns for %d templates", len(patterns), TemplateCount())
	}
	re := regexp.MustCompile(`^(?:` + strings.Join(patterns, "|") + `)$`)

	for _, seed := range []string{"abc123", "K7mXq2Pz9BcDeF", "x"} {
		for i, line := range Code(rng.New(seed), 200) {
			if !re.MatchString(line) {
				t.Errorf("seed %q line %d = %q matches no template", seed, i+1, line)
			}
		}
	}
}

func TestCodeCommentLineNumbers(t *testing.T) {
	re := regexp.MustCompile(`^// [A-Z]+: [a-z ]+ ([0-9]+)$`)
	found := false
	for i, line := range Code(rng.New("comments"), 300) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		found = true
		if want := i + 1; m[1] != strconv.Itoa(want) {
			t.Errorf("comment on line %d carries number %s", want, m[1])
		}
	}
	if !found {
		t.Error("no comment lines in 300 draws")
	}
}

// Draw order is part of the output: any change to a template, a vocabulary
// or the order of draws shows up here.
func TestCodeGolden(t *testing.T) {
	want := []string{
		"data.get(clipState);",
		"// TODO: optimize 2",
		"viewValue.filter(userState);",
		"function rectValue(fontCfg) { return line; }",
		"const line = 80;",
	}
	if got := Code(rng.New("abc123"), 5); !reflect.DeepEqual(got, want) {
		t.Errorf("Code(abc123, 5) =\n%q\nwant\n%q", got, want)
	}
}
