package jsonly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObject_SetKeepsFirstInsertionPosition(t *testing.T) {
	obj := &Object{}
	obj.Set("a", NewNumber(1))
	obj.Set("b", NewNumber(2))
	obj.Set("a", NewNumber(3))

	assert.Equal(t, 2, obj.Len())
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	value, ok := obj.Value("a")
	assert.True(t, ok)
	assert.Equal(t, 3.0, value.Float())
}

func TestObject_ValueMissingKey(t *testing.T) {
	obj := &Object{}
	value, ok := obj.Value("missing")
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestObject_Pairs(t *testing.T) {
	obj := &Object{}
	obj.Set("x", NewNumber(1))
	obj.Set("y", NewNumber(2))
	obj.Set("z", NewNumber(3))

	var visited []string
	obj.Pairs(func(key string, value *Value) bool {
		visited = append(visited, key)
		return key != "y"
	})
	assert.Equal(t, []string{"x", "y"}, visited)
}

func TestObject_Delete(t *testing.T) {
	obj := &Object{}
	obj.Set("a", NewNumber(1))
	obj.Set("b", NewNumber(2))
	obj.Set("c", NewNumber(3))

	assert.True(t, obj.Delete("b"))
	assert.False(t, obj.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, obj.Keys())

	value, ok := obj.Value("c")
	assert.True(t, ok)
	assert.Equal(t, 3.0, value.Float())

	// Re-inserting a deleted key appends at the end.
	obj.Set("b", NewNumber(4))
	assert.Equal(t, []string{"a", "c", "b"}, obj.Keys())
}
