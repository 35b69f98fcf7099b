// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package ring

import "testing"

func TestRingPushBackEvictsOldest(t *testing.T) {
	r := New[int](3)
	for i := 1; i <= 5; i++ {
		r.PushBack(i)
	}
	if got := r.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	want := []int{3, 4, 5}
	for i, w := range want {
		if got := r.At(i); got != w {
			t.Errorf("At(%d) = %d, want %d", i, got, w)
		}
	}
	if got := r.Back(); got != 5 {
		t.Errorf("Back() = %d, want 5", got)
	}
}

func TestRingDropWhile(t *testing.T) {
	r := New[int](10)
	for _, v := range []int{1, 2, 3, 4, 5} {
		r.PushBack(v)
	}
	r.DropWhile(func(v int) bool { return v >= 3 })
	if got := r.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := r.At(0); got != 3 {
		t.Errorf("At(0) = %d, want 3", got)
	}
}

func TestRingEachReverse(t *testing.T) {
	r := New[int](10)
	for _, v := range []int{1, 2, 3} {
		r.PushBack(v)
	}
	var got []int
	r.EachReverse(func(v int) bool {
		got = append(got, v)
		return true
	})
	want := []int{3, 2, 1}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("EachReverse[%d] = %d, want %d", i, got[i], w)
		}
	}
}
