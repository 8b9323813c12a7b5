package hcl

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/ppcheck/internal/config"
	"github.com/vk/ppcheck/internal/ctxlog"
)

const (
	defaultNamespace = "/"
	defaultEvent     = "ppcheck:diagnostic"
	defaultTimeout   = 10 * time.Second
)

// macroNameRe matches the identifiers the line classifier accepts as macro
// names. HCL identifiers also allow dashes, which macros do not.
var macroNameRe = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// translateSettings normalizes extensions to a leading dot and resolves
// include directories against the configuration file's directory.
func translateSettings(s *settingsBlock, baseDir string) (*config.Settings, error) {
	out := &config.Settings{}
	for _, ext := range s.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out.Extensions = append(out.Extensions, ext)
	}
	for _, dir := range s.IncludeDirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve include dir %q: %w", dir, err)
		}
		out.IncludeDirs = append(out.IncludeDirs, abs)
	}
	return out, nil
}

// translateMacro converts a `macro` block into a predefined macro. A block
// with a params attribute is function-like, even when the list is empty.
func translateMacro(ctx context.Context, conv *Converter, m *macroBlock, evalCtx *hcl.EvalContext) (*config.MacroDefinition, error) {
	if !hclsyntax.ValidIdentifier(m.Name) || !macroNameRe.MatchString(m.Name) {
		return nil, fmt.Errorf("invalid macro name %q", m.Name)
	}

	def := &config.MacroDefinition{Name: m.Name}
	if m.Value != nil {
		rng := m.Value.Range()
		def.File = rng.Filename
		def.Line = rng.Start.Line
	}

	var params []string
	isFunction, err := conv.DecodeExpression(ctx, m.Params, evalCtx, &params)
	if err != nil {
		return nil, fmt.Errorf("macro %q: failed to decode params: %w", m.Name, err)
	}
	if isFunction {
		seen := make(map[string]bool, len(params))
		for _, p := range params {
			if !macroNameRe.MatchString(p) {
				return nil, fmt.Errorf("macro %q: invalid parameter name %q", m.Name, p)
			}
			if seen[p] {
				return nil, fmt.Errorf("macro %q: duplicate parameter %q", m.Name, p)
			}
			seen[p] = true
		}
		def.Function = true
		def.Params = params
	}

	var value string
	if _, err := conv.DecodeExpression(ctx, m.Value, evalCtx, &value); err != nil {
		return nil, fmt.Errorf("macro %q: failed to decode value: %w", m.Name, err)
	}
	def.Value = value

	ctxlog.FromContext(ctx).Debug("Translated predefined macro.", "name", def.Name, "function", def.Function)
	return def, nil
}

// translateReporter decodes a `reporter` block body according to its type.
func translateReporter(ctx context.Context, r *reporterBlock, evalCtx *hcl.EvalContext) (*config.Reporter, error) {
	switch r.Type {
	case "socketio":
		var b socketIOBlock
		if diags := gohcl.DecodeBody(r.Body, evalCtx, &b); diags.HasErrors() {
			return nil, fmt.Errorf("reporter %q: %w", r.Type, diags)
		}
		if b.URL == "" {
			return nil, fmt.Errorf("reporter %q: url must not be empty", r.Type)
		}
		sio := &config.SocketIOReporter{
			URL:                b.URL,
			Namespace:          b.Namespace,
			Event:              b.Event,
			Timeout:            defaultTimeout,
			InsecureSkipVerify: b.InsecureSkipVerify,
		}
		if sio.Namespace == "" {
			sio.Namespace = defaultNamespace
		}
		if sio.Event == "" {
			sio.Event = defaultEvent
		}
		if b.Timeout != "" {
			d, err := time.ParseDuration(b.Timeout)
			if err != nil || d <= 0 {
				ctxlog.FromContext(ctx).Warn("Invalid reporter timeout, using default.",
					"timeout", b.Timeout,
					"default", defaultTimeout,
				)
			} else {
				sio.Timeout = d
			}
		}
		return &config.Reporter{Type: r.Type, SocketIO: sio}, nil
	default:
		return nil, fmt.Errorf("unknown reporter type %q", r.Type)
	}
}
