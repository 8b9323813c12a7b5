package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes all top-level blocks of a project file. Unknown blocks
// and attributes are rejected.
type fileRoot struct {
	Settings  *settingsBlock   `hcl:"settings,block"`
	Macros    []*macroBlock    `hcl:"macro,block"`
	Reporters []*reporterBlock `hcl:"reporter,block"`
}

// settingsBlock is the optional `settings` block.
type settingsBlock struct {
	Extensions  []string `hcl:"extensions,optional"`
	IncludeDirs []string `hcl:"include_dirs,optional"`
}

// macroBlock is a `macro "NAME"` block. A macro with a params attribute,
// even an empty list, is function-like.
type macroBlock struct {
	Name   string         `hcl:"name,label"`
	Params hcl.Expression `hcl:"params,optional"`
	Value  hcl.Expression `hcl:"value,optional"`
}

// reporterBlock is a `reporter "TYPE"` block whose body is decoded once the
// type is known.
type reporterBlock struct {
	Type string   `hcl:"type,label"`
	Body hcl.Body `hcl:",remain"`
}

// socketIOBlock is the body of `reporter "socketio"`.
type socketIOBlock struct {
	URL                string `hcl:"url"`
	Namespace          string `hcl:"namespace,optional"`
	Event              string `hcl:"event,optional"`
	Timeout            string `hcl:"timeout,optional"`
	InsecureSkipVerify bool   `hcl:"insecure_skip_verify,optional"`
}
