package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_LookupPrefersLocal(t *testing.T) {
	inherited := map[string]*Definition{
		"A": NewConstant("A", "1", "parent.h", 1),
	}
	tbl := NewTable(inherited)

	def, ok := tbl.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "parent.h", def.File)

	prev, redefined := tbl.Define(NewConstant("A", "2", "child.h", 4))
	require.True(t, redefined)
	assert.Equal(t, "parent.h", prev.File)

	def, ok = tbl.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "2", def.Value)
}

func TestTable_RedefineLastWins(t *testing.T) {
	tbl := NewTable(nil)

	_, redefined := tbl.Define(NewConstant("X", "1", "a.h", 1))
	assert.False(t, redefined)

	prev, redefined := tbl.Define(NewFunction("X", []string{"a"}, "a", "a.h", 2))
	assert.True(t, redefined)
	assert.False(t, prev.Function)

	def, _ := tbl.Lookup("X")
	assert.True(t, def.Function)
	assert.Equal(t, 1, def.Arity())
}

func TestTable_Undefine(t *testing.T) {
	inherited := map[string]*Definition{"P": NewConstant("P", "", "parent.h", 1)}
	tbl := NewTable(inherited)
	tbl.Define(NewConstant("L", "", "child.h", 1))

	assert.True(t, tbl.Undefine("L"))
	assert.True(t, tbl.Undefine("P"))
	assert.False(t, tbl.Undefine("P"))
	assert.False(t, tbl.Undefine("NOPE"))

	_, ok := tbl.Lookup("P")
	assert.False(t, ok)
	_, ok = inherited["P"]
	assert.True(t, ok, "undefining an inherited macro must not touch the includer's map")
}

func TestTable_SnapshotIsIndependent(t *testing.T) {
	tbl := NewTable(nil)
	tbl.Define(NewConstant("A", "", "a.h", 1))

	snap := tbl.Snapshot()
	tbl.Define(NewConstant("B", "", "a.h", 2))

	assert.Len(t, snap, 1)
	child := NewTable(snap)
	_, ok := child.Lookup("B")
	assert.False(t, ok, "later definitions in the includer are not visible to the child")
}

func TestTable_MergeLocal(t *testing.T) {
	tbl := NewTable(nil)
	tbl.MergeLocal(map[string]*Definition{"M": NewFunction("M", nil, "", "b.h", 1)})

	def, ok := tbl.Lookup("M")
	require.True(t, ok)
	assert.True(t, def.Function)
	assert.Equal(t, 0, def.Arity())
	assert.Equal(t, 1, tbl.Len())
}
