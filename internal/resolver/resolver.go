package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vk/ppcheck/internal/directive"
	"github.com/vk/ppcheck/internal/macro"
)

// placeholder replaces every consumed span. It is not an identifier
// character, so it can never be matched again.
const placeholder = "\x1a"

var (
	callRe      = regexp.MustCompile(`\b([A-Za-z_]\w*)\(([^()]*)\)`)
	referenceRe = regexp.MustCompile(`\b([A-Za-z_]\w*)(\()?`)
)

// Lookup resolves macro names. *macro.Table satisfies it.
type Lookup interface {
	Lookup(name string) (*macro.Definition, bool)
}

// ProblemKind classifies a failed macro reference.
type ProblemKind int

const (
	NotDefined ProblemKind = iota
	NotFunction
	WrongArgCount
	MissingBrackets
)

// Problem is one invalid macro reference.
type Problem struct {
	Kind ProblemKind
	Name string
	Want int
	Got  int
}

// Message renders the problem for a diagnostic.
func (p Problem) Message() string {
	switch p.Kind {
	case NotDefined:
		return fmt.Sprintf("Macro error: Macro %q is not defined", p.Name)
	case NotFunction:
		return fmt.Sprintf("Macro error: Macro %q is not a function", p.Name)
	case WrongArgCount:
		return fmt.Sprintf("Macro error: Wrong number of arguments for macro %q (%d instead of %d)", p.Name, p.Got, p.Want)
	case MissingBrackets:
		return fmt.Sprintf("Macro error: Macro %q is missing brackets", p.Name)
	default:
		return fmt.Sprintf("Macro error: Macro %q is invalid", p.Name)
	}
}

// CheckLines joins lines[start] with its continuation lines and checks the
// result. It returns the problems found and the number of physical lines
// consumed.
func CheckLines(lines []string, start int, table Lookup) ([]Problem, int) {
	content, consumed := directive.JoinContinued(lines, start)
	return Check(content, table), consumed
}

// Check validates every macro reference in content.
func Check(content string, table Lookup) []Problem {
	content, problem := resolveCalls(content, table)
	if problem != nil {
		return []Problem{*problem}
	}
	return resolveReferences(content, table)
}

func resolveCalls(content string, table Lookup) (string, *Problem) {
	for {
		loc := callRe.FindStringSubmatchIndex(content)
		if loc == nil {
			return content, nil
		}
		name := content[loc[2]:loc[3]]
		args := content[loc[4]:loc[5]]
		content = content[:loc[0]] + placeholder + content[loc[1]:]

		def, ok := table.Lookup(name)
		switch {
		case !ok:
			return content, &Problem{Kind: NotDefined, Name: name}
		case !def.Function:
			return content, &Problem{Kind: NotFunction, Name: name}
		}
		if got := countArgs(args, def.Arity()); got != def.Arity() {
			return content, &Problem{Kind: WrongArgCount, Name: name, Want: def.Arity(), Got: got}
		}
	}
}

func resolveReferences(content string, table Lookup) []Problem {
	var problems []Problem
	for {
		loc := referenceRe.FindStringSubmatchIndex(content)
		if loc == nil {
			return problems
		}
		name := content[loc[2]:loc[3]]
		hasBracket := loc[4] >= 0
		content = content[:loc[0]] + placeholder + content[loc[1]:]

		def, ok := table.Lookup(name)
		if !ok {
			continue
		}
		if !def.Function && hasBracket {
			problems = append(problems, Problem{Kind: NotFunction, Name: name})
		}
		if def.Function && !hasBracket {
			problems = append(problems, Problem{Kind: MissingBrackets, Name: name})
		}
	}
}

// countArgs counts comma-separated arguments. An empty list is a single
// empty argument unless the macro takes no parameters.
func countArgs(args string, arity int) int {
	if strings.TrimSpace(args) == "" {
		if arity == 0 {
			return 0
		}
		return 1
	}
	return strings.Count(args, ",") + 1
}
