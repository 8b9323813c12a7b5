package validator

import (
	"context"
	"fmt"

	"github.com/vk/ppcheck/internal/ctxlog"
	"github.com/vk/ppcheck/internal/directive"
	"github.com/vk/ppcheck/internal/macro"
	"github.com/vk/ppcheck/internal/resolver"
	"github.com/vk/ppcheck/internal/source"
)

// validateFile scans the file at path line by line and recurses into its
// includes. path must be canonical.
func (v *Validator) validateFile(ctx context.Context, path string, ancestors []string, inherited map[string]*macro.Definition) (*fileScope, error) {
	logger := ctxlog.FromContext(ctx).With("file", path)
	logger.Debug("Entering file.", "depth", len(ancestors), "inherited_macros", len(inherited))

	text, err := v.loader.Load(path)
	if err != nil {
		return nil, err
	}
	if v.graph != nil {
		if err := v.graph.AddFile(ctx, path); err != nil {
			return nil, err
		}
	}

	scope := newFileScope(path, ancestors, inherited)
	lines := source.Lines(text)
	var classifier directive.Classifier

	for i := 0; i < len(lines); {
		lineNo := i + 1
		consumed := 1
		line := classifier.Classify(lines[i])

		switch line.Kind {
		case directive.Include:
			if err := v.include(ctx, scope, line, lineNo); err != nil {
				return nil, err
			}
		case directive.DefineFunction, directive.DefineConstant:
			if directive.Continues(lines[i]) {
				var joined string
				joined, consumed = directive.JoinContinued(lines, i)
				line = directive.ClassifyCode(joined)
			}
			define(scope, line, lineNo)
		case directive.Undef:
			if !scope.table.Undefine(line.Name) {
				scope.warnf(lineNo, "Undef warning: Macro %q is not defined", line.Name)
			}
		case directive.Unknown:
			scope.errorf(lineNo, "Directive error: Unknown directive %q", line.Name)
		case directive.Malformed:
			scope.errorf(lineNo, "Directive error: Malformed #%s directive", line.Name)
		case directive.Reference:
			var problems []resolver.Problem
			problems, consumed = resolver.CheckLines(lines, i, scope.table)
			for _, p := range problems {
				scope.errorf(lineNo, "%s", p.Message())
			}
		}
		i += consumed
	}

	logger.Debug("Leaving file.", "macros", scope.table.Len(), "valid", scope.result.IsValid())
	return scope, nil
}

// define records a #define, warning when it shadows a visible definition.
func define(scope *fileScope, line directive.Line, lineNo int) {
	var def *macro.Definition
	if line.Kind == directive.DefineFunction {
		def = macro.NewFunction(line.Name, line.Params, line.Value, scope.path, lineNo)
	} else {
		def = macro.NewConstant(line.Name, line.Value, scope.path, lineNo)
	}
	if prev, ok := scope.table.Define(def); ok {
		scope.warnf(lineNo, "Define warning: Macro %q already defined in %q", def.Name, prev.File)
	}
}

// include follows one #include directive. Only failures to read a file that
// exists are returned; everything else becomes a diagnostic.
func (v *Validator) include(ctx context.Context, scope *fileScope, line directive.Line, lineNo int) error {
	logger := ctxlog.FromContext(ctx).With("file", scope.path)

	target, found, err := v.resolver.Resolve(scope.path, line.Path)
	if err != nil {
		return err
	}
	if !found {
		scope.errorf(lineNo, "Include error: File %q not found", target)
		return nil
	}
	if scope.alreadyIncluded(target) {
		logger.Debug("Skipping include already on the chain.", "target", target, "line", lineNo)
		scope.warnf(lineNo, "Include warning: File %q already included", target)
		return nil
	}

	logger.Debug("Following include.", "target", target, "line", lineNo)
	child, err := v.validateFile(ctx, target, scope.childAncestors(), v.inherit(scope))
	if err != nil {
		return fmt.Errorf("error in included file %s (from %s:%d): %w", target, scope.path, lineNo, err)
	}

	scope.absorb(child)
	if !child.result.IsValid() {
		scope.errorf(lineNo, "Include error: File %q invalid content", target)
	}
	if v.graph != nil {
		if err := v.graph.AddInclude(ctx, scope.path, target, lineNo); err != nil {
			return err
		}
	}
	return nil
}

// inherit builds the inherited view of a file included from scope: the
// includer's local macros layered over the predefined ones.
func (v *Validator) inherit(scope *fileScope) map[string]*macro.Definition {
	local := scope.table.Snapshot()
	if len(v.predefined) == 0 {
		return local
	}
	view := make(map[string]*macro.Definition, len(v.predefined)+len(local))
	for name, def := range v.predefined {
		view[name] = def
	}
	for name, def := range local {
		view[name] = def
	}
	return view
}
