package stack_test

import (
	"testing"

	"github.com/lestrrat-go/xmltree/internal/stack"
	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var s stack.Stack[string]

	_, ok := s.Pop()
	if !assert.False(t, ok, "Pop on empty stack fails") {
		return
	}

	s.Push("a")
	s.Push("b", "c")
	if !assert.Equal(t, 3, s.Len(), "Len == 3") {
		return
	}

	top, ok := s.Peek()
	if !assert.True(t, ok, "Peek succeeds") {
		return
	}
	if !assert.Equal(t, "c", top, "Peek returns last pushed item") {
		return
	}

	if !assert.Equal(t, []string{"a", "b", "c"}, s.Items(), "Items are bottom to top") {
		return
	}

	for _, expected := range []string{"c", "b", "a"} {
		item, ok := s.Pop()
		if !assert.True(t, ok, "Pop succeeds") {
			return
		}
		if !assert.Equal(t, expected, item, "Pop returns %s", expected) {
			return
		}
	}

	if !assert.Equal(t, 0, s.Len(), "Len == 0") {
		return
	}
}

func TestStackReset(t *testing.T) {
	var s stack.Stack[int]
	for i := range 100 {
		s.Push(i)
	}
	s.Reset()
	assert.Equal(t, 0, s.Len(), "Len == 0 after Reset")

	s.Push(42)
	item, ok := s.Pop()
	assert.True(t, ok, "Pop succeeds after Reset")
	assert.Equal(t, 42, item, "Pop returns pushed item")
}

func TestStackShrink(t *testing.T) {
	var s stack.Stack[int]
	for i := range 64 {
		s.Push(i)
	}
	for range 60 {
		s.Pop()
	}
	assert.Equal(t, 4, s.Len(), "Len == 4")
	assert.LessOrEqual(t, s.Cap(), 64, "capacity does not grow while popping")

	item, _ := s.Peek()
	assert.Equal(t, 3, item, "Peek returns remaining top")
}
