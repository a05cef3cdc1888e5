package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a primitive stylesheet: rulesets whose selectors are a single .class
// or #id (comma-separated lists allowed) and "key: value;" declarations. Other
// selectors and at-rules are skipped. Later rules override earlier ones.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	l := css.NewLexer(parse.NewInputString(content))
	var (
		selectors []string
		sel       strings.Builder
		props     map[string]string
		key       string
		val       strings.Builder
		inValue   bool
		skipDepth int // >0 while inside an at-rule block
		inAtRule  bool
	)
	endDecl := func() {
		if props != nil && key != "" {
			props[strings.ToLower(key)] = strings.TrimSpace(val.String())
		}
		key, inValue = "", false
		val.Reset()
	}
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("ui: css: %w", err)
			}
			return sheet, nil
		}
		if tt == css.CommentToken {
			continue
		}
		switch {
		case skipDepth > 0:
			switch tt {
			case css.LeftBraceToken:
				skipDepth++
			case css.RightBraceToken:
				skipDepth--
			}
		case inAtRule:
			switch tt {
			case css.SemicolonToken:
				inAtRule = false
			case css.LeftBraceToken:
				inAtRule = false
				skipDepth = 1
			}
		case props == nil:
			// Selector prelude.
			switch tt {
			case css.AtKeywordToken:
				inAtRule = true
			case css.CommaToken:
				selectors = append(selectors, strings.TrimSpace(sel.String()))
				sel.Reset()
			case css.LeftBraceToken:
				selectors = append(selectors, strings.TrimSpace(sel.String()))
				sel.Reset()
				props = make(map[string]string)
			default:
				sel.Write(data)
			}
		default:
			// Declaration block.
			switch tt {
			case css.SemicolonToken:
				endDecl()
			case css.RightBraceToken:
				endDecl()
				for _, s := range selectors {
					if !simpleSelector(s) {
						continue
					}
					rule := Rule{Selector: s, Props: make(map[string]string, len(props))}
					for k, v := range props {
						rule.Props[k] = v
					}
					sheet.Rules = append(sheet.Rules, rule)
				}
				selectors, props = nil, nil
			case css.ColonToken:
				if !inValue {
					inValue = true
				} else {
					val.Write(data)
				}
			case css.IdentToken:
				if !inValue {
					key = string(data)
				} else {
					val.Write(data)
				}
			default:
				if inValue {
					val.Write(data)
				}
			}
		}
	}
}

// simpleSelector accepts ".name" and "#name" with no combinators.
func simpleSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " \t\n>+~:[.#")
}
