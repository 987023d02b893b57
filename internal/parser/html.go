package parser

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docoutline/internal/heading"
	"github.com/dgallion1/docoutline/internal/outline"
	"golang.org/x/net/html"
)

// HTMLParser extracts the outline from h1-h6 elements. The <title> tag
// becomes the document title; nav/header/footer chrome is skipped.
type HTMLParser struct {
	Opts heading.Options
}

func (p *HTMLParser) Parse(ctx context.Context, r io.Reader, filename string) (*outline.Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	res := outline.NewResult()
	res.Title = findTitle(doc)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				if text := textContent(n); text != "" {
					res.Outline = append(res.Outline, outline.Entry{
						Level: outline.ForLevel(level, p.Opts.MaxLevels),
						Text:  text,
						Page:  1,
					})
				}
				return
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	return outline.Validate(res), nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
