package service

import (
	"strings"

	"golang.org/x/net/html"
)

// stripTags removes every HTML tag and comment from s and keeps the text content.
func stripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader can produce
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}
