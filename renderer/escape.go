package renderer

import "strings"

// markdownEscaper backslash-escapes the characters of names that markdown
// would read as table separators, emphasis, code, links or html.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`|`, `\|`,
)

// escape returns s as markdown text, rendering literally.
func escape(s string) string { return markdownEscaper.Replace(s) }
