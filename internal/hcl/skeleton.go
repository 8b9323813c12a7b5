package hcl

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/ppcheck/internal/config"
)

// WriteSkeleton writes a commented starter project file that Load accepts
// unchanged.
func (l *Loader) WriteSkeleton(w io.Writer) error {
	conv := NewConverter()
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.AppendUnstructuredTokens(comments(
		"ppcheck project configuration.",
		"Relative include_dirs are resolved against this file's directory.",
	))
	settings := body.AppendNewBlock("settings", nil).Body()
	exts, err := conv.ToCtyValue(config.DefaultExtensions)
	if err != nil {
		return err
	}
	settings.SetAttributeValue("extensions", exts)
	settings.SetAttributeValue("include_dirs", cty.ListValEmpty(cty.String))
	body.AppendNewline()

	body.AppendUnstructuredTokens(comments("Macros every file sees as already defined."))
	body.AppendNewBlock("macro", []string{"DEBUG"})
	body.AppendNewline()

	maxMacro := body.AppendNewBlock("macro", []string{"MAX"}).Body()
	params, err := conv.ToCtyValue([]string{"a", "b"})
	if err != nil {
		return err
	}
	maxMacro.SetAttributeValue("params", params)
	maxMacro.SetAttributeValue("value", cty.StringVal("((a) > (b) ? (a) : (b))"))
	body.AppendNewline()

	body.AppendUnstructuredTokens(comments(
		"Publish diagnostics to a socket.io server.",
		`reporter "socketio" {`,
		`  url       = "http://localhost:3000/"`,
		`  namespace = "/"`,
		`  event     = "ppcheck:diagnostic"`,
		`  timeout   = "10s"`,
		`}`,
	))

	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("failed to write config skeleton: %w", err)
	}
	return nil
}

func comments(lines ...string) hclwrite.Tokens {
	toks := make(hclwrite.Tokens, 0, len(lines))
	for _, line := range lines {
		toks = append(toks, &hclwrite.Token{
			Type:  hclsyntax.TokenComment,
			Bytes: []byte("# " + line + "\n"),
		})
	}
	return toks
}
