// Package script parses rover command sequences.
//
// Two input forms exist. Plain letter sequences ("MMRMLM") are the
// forgiving interactive alphabet: case-insensitive, whitespace ignored,
// unknown characters collected for the caller to report. Mission scripts
// are the strict file form with comments and repeat counts:
//
//	# climb two cells, box around the rock
//	2M R M L M
package script

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
)

// ParseLetters scans a plain letter sequence. Whitespace is ignored and
// anything that is not a rover instruction is returned in skipped, in
// input order.
func ParseLetters(s string) (verbs []rover.Verb, skipped []rune) {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		v, ok := rover.ParseVerb(r)
		if !ok {
			skipped = append(skipped, r)
			continue
		}
		verbs = append(verbs, v)
	}
	return verbs, skipped
}

// Format renders verbs as a compact letter sequence.
func Format(verbs []rover.Verb) string {
	var b strings.Builder
	for _, v := range verbs {
		b.WriteByte(byte(v))
	}
	return b.String()
}

type missionScript struct {
	Steps []*missionStep `parser:"@@*"`
}

type missionStep struct {
	Count *int   `parser:"@Int?"`
	Verb  string `parser:"@Verb"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Verb", Pattern: `[MLRmlr]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var scriptParser = participle.MustBuild[missionScript](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ParseScript parses a strict mission script and expands repeat counts,
// so "3M R" becomes M M M R. A count of zero is a no-op. Malformed input
// is an error; this form never skips.
func ParseScript(src string) ([]rover.Verb, error) {
	parsed, err := scriptParser.ParseString("script", src)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	var verbs []rover.Verb
	for _, step := range parsed.Steps {
		v, ok := rover.ParseVerb(rune(step.Verb[0]))
		if !ok {
			return nil, fmt.Errorf("parse script: bad verb %q", step.Verb)
		}
		count := 1
		if step.Count != nil {
			count = *step.Count
		}
		for i := 0; i < count; i++ {
			verbs = append(verbs, v)
		}
	}
	return verbs, nil
}

// LoadFile reads and parses a mission script file.
func LoadFile(path string) ([]rover.Verb, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	verbs, err := ParseScript(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return verbs, nil
}
