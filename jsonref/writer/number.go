/*
 * Copyright 2025 The JSONRef Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package writer

import (
	"math"
	"strconv"
	"strings"
)

// FormatReal renders a float64 in the styled format. Finite values use
// printf %g semantics for SignificantDigits and %f semantics for
// DecimalPlaces, with ".0" appended to results that would otherwise read as
// integers. Non-finite values become NaN, Infinity, and -Infinity when
// useSpecialFloats is set, and null, 1e+9999, and -1e+9999 otherwise.
func FormatReal(value float64, useSpecialFloats bool, precision uint, precisionType PrecisionType) string {
	if math.IsNaN(value) {
		if useSpecialFloats {
			return "NaN"
		}
		return "null"
	}
	if math.IsInf(value, 0) {
		switch {
		case value < 0 && useSpecialFloats:
			return "-Infinity"
		case value < 0:
			return "-1e+9999"
		case useSpecialFloats:
			return "Infinity"
		}
		return "1e+9999"
	}

	format := byte('g')
	if precisionType == DecimalPlaces {
		format = 'f'
	}
	buffer := strconv.FormatFloat(value, format, int(precision), 64)

	// Mark integral results as reals.
	if !strings.ContainsAny(buffer, ".e") {
		buffer += ".0"
	}
	if precisionType == DecimalPlaces {
		buffer = trimTrailingZeros(buffer, precision)
	}
	return buffer
}

// trimTrailingZeros strips redundant zeros from a fixed-notation rendering,
// keeping one digit after the decimal point unless precision is zero, in
// which case the point goes too.
func trimTrailingZeros(s string, precision uint) string {
	end := len(s)
	for end > 0 {
		if s[end-1] != '0' {
			return s[:end]
		}
		if end >= 3 && s[end-2] == '.' {
			if precision != 0 {
				return s[:end]
			}
			return s[:end-2]
		}
		end--
	}
	return s[:end]
}
