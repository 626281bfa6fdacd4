// Copyright 2024 imgurl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package imageurl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is a pair of image dimensions.
type Size struct {
	Width  int
	Height int
}

// Tag formats the size as "<width>x<height>".
func (s Size) Tag() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

func (s Size) String() string {
	return s.Tag()
}

// ParseSize parses a "<width>x<height>" tag such as "320x240".
func ParseSize(tag string) (Size, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(tag), "x")
	if !ok {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, tag)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Size{}, fmt.Errorf("%w: bad width in %q", ErrInvalidSize, tag)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Size{}, fmt.Errorf("%w: bad height in %q", ErrInvalidSize, tag)
	}
	return Size{Width: width, Height: height}, nil
}

// Resize returns the URL of the width x height variant of url.
//
//	Resize("a/b/c.png", 200, 100) == "a/b/c.200x100.png"
func Resize(url string, width, height int) string {
	return ResizeAs(url, width, height, "")
}

// ResizeAs is Resize with an extension override; "" keeps the original one.
//
//	ResizeAs("a/b/c.png", 10, 20, ".jpg") == "a/b/c.10x20.jpg"
func ResizeAs(url string, width, height int, extension string) string {
	return ParseFilename(url).Build(Size{Width: width, Height: height}.Tag(), extension)
}

// FormatDimension formats v the way a browser prints a number: plain decimal
// for 1e-7 <= |v| < 1e21, exponent form outside that range, "NaN" and
// "Infinity" for non-finite values.
//
//	FormatDimension(1.5) == "1.5"
//	FormatDimension(1e21) == "1e+21"
func FormatDimension(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// covers -0 as well
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-7 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// Go pads the exponent to two digits ("1e-07"); drop the padding.
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// DimensionTag formats a fractional size as "<width>x<height>".
func DimensionTag(width, height float64) string {
	return FormatDimension(width) + "x" + FormatDimension(height)
}

// ResizeFloat is ResizeAs for fractional or non-finite dimensions, which are
// formatted with FormatDimension rather than rejected.
//
//	ResizeFloat("a.png", 1.5, 2, "") == "a.1.5x2.png"
func ResizeFloat(url string, width, height float64, extension string) string {
	return ParseFilename(url).Build(DimensionTag(width, height), extension)
}
