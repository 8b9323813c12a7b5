package directive

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want Line
	}{
		{"blank", "", Line{Kind: None}},
		{"punctuation only", "  ; { } 12 ", Line{Kind: None}},
		{"line comment", "  // #include \"x.h\"", Line{Kind: Comment}},
		{"quoted include", `#include "lib/a.h"`, Line{Kind: Include, Path: "lib/a.h"}},
		{"system include", `  #include <sys.h>`, Line{Kind: Include, Path: "sys.h", System: true}},
		{"function define", "#define ADD(x, y) x+y", Line{Kind: DefineFunction, Name: "ADD", Params: []string{"x", "y"}, Value: "x+y"}},
		{"zero param function", "#define NOW() time", Line{Kind: DefineFunction, Name: "NOW", Value: "time"}},
		{"function define no body", "#define F(a)", Line{Kind: DefineFunction, Name: "F", Params: []string{"a"}}},
		{"constant define", "#define VERSION 3", Line{Kind: DefineConstant, Name: "VERSION", Value: "3"}},
		{"constant with parenthesised body", "#define A (x)", Line{Kind: DefineConstant, Name: "A", Value: "(x)"}},
		{"flag define", "#define DEBUG", Line{Kind: DefineConstant, Name: "DEBUG"}},
		{"undef", "#undef DEBUG", Line{Kind: Undef, Name: "DEBUG"}},
		{"if", "#if VERSION > 2", Line{Kind: Conditional, Name: "if"}},
		{"ifdef", "#ifdef DEBUG", Line{Kind: Conditional, Name: "ifdef"}},
		{"ifndef", "#ifndef DEBUG", Line{Kind: Conditional, Name: "ifndef"}},
		{"else", "#else", Line{Kind: Conditional, Name: "else"}},
		{"endif", "  #endif // DEBUG", Line{Kind: Conditional, Name: "endif"}},
		{"unknown directive", "#pragma once", Line{Kind: Unknown, Name: "pragma"}},
		{"conditional prefix is not conditional", "#iffy", Line{Kind: Unknown, Name: "iffy"}},
		{"define without name", "#define", Line{Kind: Malformed, Name: "define"}},
		{"include without target", "#include", Line{Kind: Malformed, Name: "include"}},
		{"undef with extra tokens", "#undef A B", Line{Kind: Malformed, Name: "undef"}},
		{"reference", "_x = ADD(1, 2);", Line{Kind: Reference}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var c Classifier
			got := c.Classify(tc.text)

			if diff := cmp.Diff(tc.want, got, cmpopts.IgnoreFields(Line{}, "Text"), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify_BlockComments(t *testing.T) {
	lines := []string{
		"/* header",
		"#bogus",
		"ADD(1)",
		"end */",
		"#pragma after",
		"/* one line */ #bogus",
		"#pragma still scanned",
	}
	want := []Kind{Comment, Comment, Comment, Comment, Unknown, Comment, Unknown}

	var c Classifier
	var got []Kind
	for _, l := range lines {
		got = append(got, c.Classify(l).Kind)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, c.InBlockComment())
}

func TestClassify_UnterminatedBlockComment(t *testing.T) {
	var c Classifier
	c.Classify("code /* starts")
	assert.True(t, c.InBlockComment())
	assert.Equal(t, Comment, c.Classify("#include \"x.h\"").Kind)
}

func TestJoinContinued(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		start    int
		want     string
		consumed int
	}{
		{"single line", []string{"A(1)", "B"}, 0, "A(1)", 1},
		{"two lines", []string{"A(1, \\", "2)", "B"}, 0, "A(1, 2)", 2},
		{"trailing spaces after marker", []string{"x \\  ", "y"}, 0, "x y", 2},
		{"marker on last line", []string{"a", "b \\"}, 1, "b ", 1},
		{"from middle", []string{"a", "b\\", "c\\", "d", "e"}, 1, "bcd", 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, consumed := JoinContinued(tc.lines, tc.start)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.consumed, consumed)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "define-function", DefineFunction.String())
	assert.Equal(t, "invalid", Kind(99).String())
	assert.True(t, DefineConstant.IsDefine())
	assert.False(t, Undef.IsDefine())
}
