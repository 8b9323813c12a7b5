package directive

import (
	"regexp"
	"strings"
)

// Kind identifies which handler a line is dispatched to.
type Kind int

const (
	// Blank lines and lines without identifiers. Nothing to do.
	None Kind = iota
	Comment
	Include
	DefineFunction
	DefineConstant
	Undef
	Conditional
	Unknown
	// A recognised directive keyword whose operands do not parse.
	Malformed
	Reference
)

var kindNames = map[Kind]string{
	None:           "none",
	Comment:        "comment",
	Include:        "include",
	DefineFunction: "define-function",
	DefineConstant: "define-constant",
	Undef:          "undef",
	Conditional:    "conditional",
	Unknown:        "unknown",
	Malformed:      "malformed",
	Reference:      "reference",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

var (
	includeRe      = regexp.MustCompile(`^\s*#include\s+([<"])([^>"]*)[>"]`)
	defineFuncRe   = regexp.MustCompile(`^\s*#define\s+(\w+)\(([^()]*)\)\s*(.*)$`)
	defineConstRe  = regexp.MustCompile(`^\s*#define\s+(\w+)(?:\s+(.*))?$`)
	undefRe        = regexp.MustCompile(`^\s*#undef\s+(\w+)\s*$`)
	conditionalRe  = regexp.MustCompile(`^\s*#(if|ifdef|ifndef|else|endif)\b`)
	directiveRe    = regexp.MustCompile(`^\s*#(\w+)`)
	lineCommentRe  = regexp.MustCompile(`^\s*//`)
	paramRe        = regexp.MustCompile(`\w+`)
	identifierRe   = regexp.MustCompile(`\b[A-Za-z_]\w*`)
	structuredKeys = map[string]bool{"include": true, "define": true, "undef": true}
)

const (
	blockStart = "/*"
	blockEnd   = "*/"
)

// Line is the classification of one line of text.
type Line struct {
	Kind Kind

	// Name is the macro name for defines and #undef, or the directive
	// keyword for unknown and malformed directives.
	Name   string
	Params []string
	Value  string

	// Path is the include target as written; System is set for <...>.
	Path   string
	System bool

	Text string
}

// Classifier carries the block-comment state across consecutive lines of
// one file. The zero value is ready to use.
type Classifier struct {
	inBlock bool
}

// InBlockComment reports whether the previous line left a block comment open.
func (c *Classifier) InBlockComment() bool {
	return c.inBlock
}

// Classify determines the construct governing text.
func (c *Classifier) Classify(text string) Line {
	if c.inBlock {
		if strings.Contains(text, blockEnd) {
			c.inBlock = false
		}
		return Line{Kind: Comment, Text: text}
	}
	if i := strings.Index(text, blockStart); i >= 0 {
		if !strings.Contains(text[i+len(blockStart):], blockEnd) {
			c.inBlock = true
		}
		return Line{Kind: Comment, Text: text}
	}
	return ClassifyCode(text)
}

// ClassifyCode classifies text that is known to lie outside any block
// comment. It carries no state and is used for continuation-joined text.
func ClassifyCode(text string) Line {
	if lineCommentRe.MatchString(text) {
		return Line{Kind: Comment, Text: text}
	}
	if m := includeRe.FindStringSubmatch(text); m != nil {
		return Line{Kind: Include, Path: m[2], System: m[1] == "<", Text: text}
	}
	if m := defineFuncRe.FindStringSubmatch(text); m != nil {
		return Line{
			Kind:   DefineFunction,
			Name:   m[1],
			Params: paramRe.FindAllString(m[2], -1),
			Value:  strings.TrimSpace(m[3]),
			Text:   text,
		}
	}
	if m := defineConstRe.FindStringSubmatch(text); m != nil {
		return Line{Kind: DefineConstant, Name: m[1], Value: strings.TrimSpace(m[2]), Text: text}
	}
	if m := undefRe.FindStringSubmatch(text); m != nil {
		return Line{Kind: Undef, Name: m[1], Text: text}
	}
	if m := conditionalRe.FindStringSubmatch(text); m != nil {
		return Line{Kind: Conditional, Name: m[1], Text: text}
	}
	if m := directiveRe.FindStringSubmatch(text); m != nil {
		if structuredKeys[m[1]] {
			return Line{Kind: Malformed, Name: m[1], Text: text}
		}
		return Line{Kind: Unknown, Name: m[1], Text: text}
	}
	if identifierRe.MatchString(text) {
		return Line{Kind: Reference, Text: text}
	}
	return Line{Kind: None, Text: text}
}

// IsDefine reports whether k is either form of #define.
func (k Kind) IsDefine() bool {
	return k == DefineFunction || k == DefineConstant
}
