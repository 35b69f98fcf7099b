// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package ndd

import "strconv"

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
