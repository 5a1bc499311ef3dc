package sheet

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces an item description to plain text. List items become
// "- " lines, every other tag is dropped and non-breaking spaces become
// plain spaces.
func StripHTML(raw string) string {
	var b strings.Builder

	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF, or a malformed tail; keep what was read
			break
		}

		switch tt {
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "li" {
				b.WriteString("- ")
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "li" {
				b.WriteString("\n")
			}
		}
	}

	return strings.TrimSpace(strings.ReplaceAll(b.String(), "\u00a0", " "))
}
