package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeSet_KeepsOneEntryPerEntity(t *testing.T) {
	v := &Vehicle{}
	p := &Payment{}

	var cs ChangeSet
	assert.True(t, cs.IsEmpty())

	cs.Check(v)
	cs.Insert(p)
	cs.Update(v)
	cs.Update(p)
	cs.Insert(nil)

	changes := cs.Changes()
	if assert.Len(t, changes, 2) {
		assert.Same(t, v, changes[0].Entity)
		assert.Equal(t, ChangeUpdate, changes[0].Kind)
		assert.Same(t, p, changes[1].Entity)
		assert.Equal(t, ChangeInsert, changes[1].Kind)
	}
}

func TestChangeSet_Merge(t *testing.T) {
	a, b := &Vehicle{}, &Sale{}

	var left, right ChangeSet
	left.Check(a)
	right.Update(a)
	right.Insert(b)

	left.Merge(right)
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, ChangeUpdate, left.Changes()[0].Kind)
	assert.Equal(t, ChangeInsert, left.Changes()[1].Kind)
	assert.Equal(t, 2, right.Len())
}

func TestChangeSet_ChangesReturnsCopy(t *testing.T) {
	var cs ChangeSet
	cs.Update(&Client{})
	cs.Changes()[0].Kind = ChangeCheck
	assert.Equal(t, ChangeUpdate, cs.Changes()[0].Kind)
}

func TestChangeKind_String(t *testing.T) {
	assert.Equal(t, "insert", ChangeInsert.String())
	assert.Equal(t, "update", ChangeUpdate.String())
	assert.Equal(t, "check", ChangeCheck.String())
	assert.Equal(t, "unknown", ChangeKind(0).String())
}
