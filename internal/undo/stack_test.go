package undo

import (
	"reflect"
	"testing"
)

func TestStack_Roundtrip(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pushes   []int
	}{
		{name: "unbounded", capacity: 0, pushes: []int{1, 2, 3, 4, 5}},
		{name: "bounded not full", capacity: 8, pushes: []int{1, 2, 3}},
		{name: "bounded exactly full", capacity: 3, pushes: []int{7, 8, 9}},
		{name: "empty", capacity: 2, pushes: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack[int](tt.capacity)
			for _, v := range tt.pushes {
				s.Push(v)
			}
			if got := s.Size(); got != len(tt.pushes) {
				t.Fatalf("Size() = %v, want %v", got, len(tt.pushes))
			}
			for i := len(tt.pushes) - 1; i >= 0; i-- {
				got, ok := s.Pop()
				if !ok || got != tt.pushes[i] {
					t.Errorf("Pop() = %v, %v, want %v, true", got, ok, tt.pushes[i])
				}
			}
			if got, ok := s.Pop(); ok {
				t.Errorf("Pop() on empty = %v, %v, want empty", got, ok)
			}
			if got := s.Size(); got != 0 {
				t.Errorf("Size() = %v, want 0", got)
			}
		})
	}
}

func TestStack_BoundedEviction(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		n        int
		want     []int
	}{
		{name: "one over", capacity: 3, n: 4, want: []int{2, 3, 4}},
		{name: "many over", capacity: 3, n: 10, want: []int{8, 9, 10}},
		{name: "capacity one", capacity: 1, n: 5, want: []int{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack[int](tt.capacity)
			for i := 1; i <= tt.n; i++ {
				s.Push(i)
			}
			if got := s.Items(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Items() = %v, want %v", got, tt.want)
			}
			for i := len(tt.want) - 1; i >= 0; i-- {
				if got, _ := s.Pop(); got != tt.want[i] {
					t.Errorf("Pop() = %v, want %v", got, tt.want[i])
				}
			}
			if _, ok := s.Pop(); ok {
				t.Errorf("Pop() after draining should be empty")
			}
		})
	}
}

func TestStack_PushAfterPopWraps(t *testing.T) {
	s := NewStack[string](2)
	s.Push("a")
	s.Push("b")
	s.Push("c")
	if got, _ := s.Pop(); got != "c" {
		t.Fatalf("Pop() = %v, want c", got)
	}
	s.Push("d")
	s.Push("e")
	if got, want := s.Items(), []string{"d", "e"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
	if got, ok := s.Peek(); !ok || got != "e" {
		t.Errorf("Peek() = %v, %v, want e, true", got, ok)
	}
}

func TestStack_Clear(t *testing.T) {
	for _, capacity := range []int{0, 4} {
		s := NewStack[int](capacity)
		s.Push(1)
		s.Push(2)
		s.Clear()
		if got := s.Size(); got != 0 {
			t.Errorf("Size() after Clear = %v, want 0", got)
		}
		s.Push(3)
		if got, _ := s.Pop(); got != 3 {
			t.Errorf("Pop() after Clear = %v, want 3", got)
		}
	}
}
