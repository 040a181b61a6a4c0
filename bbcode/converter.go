// Package bbcode converts the engine's BBCode documentation markup to
// Markdown. It covers the tag vocabulary the class reference actually uses;
// unknown tags pass through verbatim rather than failing, since the markup
// vocabulary grows between engine releases.
package bbcode

import (
	"strings"

	"github.com/gddoc/gddoc"
)

// Ensure Converter implements gddoc.Converter at compile time.
var _ gddoc.Converter = (*Converter)(nil)

// Converter translates BBCode markup to Markdown.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// simpleTags maps tags with a fixed Markdown replacement.
var simpleTags = map[string]string{
	"b":           "**",
	"/b":          "**",
	"i":           "*",
	"/i":          "*",
	"u":           "_",
	"/u":          "_",
	"code":        "`",
	"/code":       "`",
	"codeblock":   "```",
	"/codeblock":  "```",
	"codeblocks":  "",
	"/codeblocks": "",
	"gdscript":    "```gdscript",
	"/gdscript":   "```",
	"csharp":      "```csharp",
	"/csharp":     "```",
	"br":          "\n",
}

// refTags are tags whose argument names another symbol; the argument is
// rendered as an inline code span.
var refTags = map[string]bool{
	"method":     true,
	"member":     true,
	"constant":   true,
	"signal":     true,
	"enum":       true,
	"param":      true,
	"annotation": true,
	"theme_item": true,
}

// Convert transforms BBCode markup into Markdown. Returns EINVALID when the
// markup is syntactically broken (unterminated tag, url without a closing
// tag).
func (c *Converter) Convert(markup string) (string, error) {
	var b strings.Builder
	rest := markup

	for {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:open])
		rest = rest[open:]

		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", gddoc.Errorf(gddoc.EINVALID, "unterminated tag in markup: %q", truncate(rest))
		}
		tag := rest[1:end]
		rest = rest[end+1:]

		replaced, consumed, err := replaceTag(tag, rest)
		if err != nil {
			return "", err
		}
		b.WriteString(replaced)
		rest = rest[consumed:]
	}
}

// replaceTag renders one tag. It may consume extra input beyond the tag
// itself (the url body); consumed reports how much.
func replaceTag(tag, rest string) (replaced string, consumed int, err error) {
	if md, ok := simpleTags[tag]; ok {
		return md, 0, nil
	}

	if name, arg, ok := strings.Cut(tag, " "); ok && refTags[name] {
		return "`" + arg + "`", 0, nil
	}

	if tag == "url" || strings.HasPrefix(tag, "url=") {
		return replaceURL(tag, rest)
	}

	// Bare class reference, e.g. [Node2D].
	if isClassRef(tag) {
		return "`" + tag + "`", 0, nil
	}

	// Unknown tag: keep it verbatim.
	return "[" + tag + "]", 0, nil
}

// replaceURL renders [url=target]text[/url] as [text](target) and
// [url]target[/url] as <target>.
func replaceURL(tag, rest string) (string, int, error) {
	const closing = "[/url]"
	end := strings.Index(rest, closing)
	if end < 0 {
		return "", 0, gddoc.Errorf(gddoc.EINVALID, "url tag without closing tag: %q", truncate(rest))
	}
	body := rest[:end]
	consumed := end + len(closing)

	if target, ok := strings.CutPrefix(tag, "url="); ok {
		return "[" + body + "](" + target + ")", consumed, nil
	}
	return "<" + body + ">", consumed, nil
}

// isClassRef reports whether the tag looks like a bare class name: an
// upper-case initial and no spaces or tag syntax.
func isClassRef(tag string) bool {
	if tag == "" || tag[0] < 'A' || tag[0] > 'Z' {
		return false
	}
	return !strings.ContainsAny(tag, " =/")
}

func truncate(s string) string {
	const max = 40
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
