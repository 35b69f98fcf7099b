// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package clock

import "testing"

func TestTimeSubSaturates(t *testing.T) {
	if got := Time(5).Sub(10); got != 0 {
		t.Errorf("Sub underflow: got %d, want 0", got)
	}
	if got := Time(10).Sub(5); got != 5 {
		t.Errorf("Sub: got %d, want 5", got)
	}
}

func TestFromSeconds(t *testing.T) {
	if got := FromSeconds(0.01); got != 10000 {
		t.Errorf("FromSeconds(0.01) = %d, want 10000", got)
	}
}
