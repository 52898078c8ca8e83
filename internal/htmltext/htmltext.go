// Package htmltext pulls readable body text out of HTML input so the
// summarizer can also consume saved web pages.
package htmltext

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// skipTags are containers whose content is boilerplate, never prose.
var skipTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {},
	"nav": {}, "footer": {}, "aside": {}, "iframe": {},
}

// blockTags get surrounding newlines so sentence boundaries survive.
var blockTags = map[string]struct{}{
	"p": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"li": {}, "br": {}, "div": {}, "tr": {},
}

// Extract returns the readable text of an HTML document, preferring
// <main> or <article> over <body>. Unparseable input yields an empty
// string rather than an error; the caller treats empty output as the
// empty-document condition.
func Extract(input []byte) string {
	root, err := html.Parse(bytes.NewReader(input))
	if err != nil || root == nil {
		return ""
	}

	content := firstElement(root, "main")
	if content == nil {
		content = firstElement(root, "article")
	}
	if content == nil {
		content = firstElement(root, "body")
	}
	if content == nil {
		return ""
	}

	var b strings.Builder
	walk(&b, content)
	return tidy(b.String())
}

func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func walk(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		name := strings.ToLower(n.Data)
		if _, skip := skipTags[name]; skip {
			return
		}
		if _, block := blockTags[name]; block {
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(b, c)
	}
	if n.Type == html.ElementNode {
		if _, block := blockTags[strings.ToLower(n.Data)]; block {
			b.WriteString("\n")
		}
	}
}

// tidy trims each line and squeezes blank-line runs so downstream
// normalization sees compact paragraphs.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, "\n")
}
