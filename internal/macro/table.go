package macro

// Table is the per-file symbol table. Lookups check local definitions first
// and then the inherited snapshot.
type Table struct {
	local     map[string]*Definition
	inherited map[string]*Definition
}

// NewTable creates a table whose inherited view is a copy of inherited.
// The caller's map is never retained.
func NewTable(inherited map[string]*Definition) *Table {
	t := &Table{
		local:     make(map[string]*Definition),
		inherited: make(map[string]*Definition, len(inherited)),
	}
	for name, def := range inherited {
		t.inherited[name] = def
	}
	return t
}

// Lookup resolves name, local definitions shadowing inherited ones.
func (t *Table) Lookup(name string) (*Definition, bool) {
	if def, ok := t.local[name]; ok {
		return def, true
	}
	def, ok := t.inherited[name]
	return def, ok
}

// Define inserts def into the local definitions, replacing any previous
// local definition of the same name. If the name was already visible, either
// locally or through the inherited snapshot, the shadowed definition is
// returned with ok set.
func (t *Table) Define(def *Definition) (prev *Definition, ok bool) {
	prev, ok = t.Lookup(def.Name)
	t.local[def.Name] = def
	return prev, ok
}

// Undefine removes name from both levels. It returns false when the name was
// defined in neither. Removing an inherited name only affects this table.
func (t *Table) Undefine(name string) bool {
	_, inLocal := t.local[name]
	_, inInherited := t.inherited[name]
	delete(t.local, name)
	delete(t.inherited, name)
	return inLocal || inInherited
}

// Snapshot copies the local definitions. It is what an included file
// receives as its inherited view.
func (t *Table) Snapshot() map[string]*Definition {
	out := make(map[string]*Definition, len(t.local))
	for name, def := range t.local {
		out[name] = def
	}
	return out
}

// MergeLocal copies definitions into the local level without warnings.
// Used to pull an included file's definitions up into its includer.
func (t *Table) MergeLocal(defs map[string]*Definition) {
	for name, def := range defs {
		t.local[name] = def
	}
}

// Len returns the number of local definitions.
func (t *Table) Len() int {
	return len(t.local)
}
