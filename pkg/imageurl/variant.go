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
	"regexp"
	"strconv"

	log "github.com/sirupsen/logrus"
)

var (
	sizeRoute     = regexp.MustCompile(`^([^.]+)\.(\d+)x(\d+)((?:\.\w+)?)$`)
	templateRoute = regexp.MustCompile(`^([^.]+)\.(\w+)((?:\.\w+)?)$`)
)

// Variant is a decoded variant path.
// Exactly one of Size and Template is set.
type Variant struct {
	Name      string // source path without extension, may contain "/"
	Size      *Size
	Template  string
	Extension string // "" or "." followed by word characters
}

// ParseVariant decodes a path produced by Resize or Template, relative to the
// media root. Dimension tags take precedence over template names, so
// "a.100x200.png" is always a resize, and a dimension too large for an int
// fails with ErrSizeLimit.
func ParseVariant(p string) (Variant, error) {
	if m := sizeRoute.FindStringSubmatch(p); m != nil {
		width, werr := strconv.Atoi(m[2])
		height, herr := strconv.Atoi(m[3])
		if werr != nil || herr != nil {
			log.Debugf("[IMAGEURL] ParseVariant %q: dimension out of range", p)
			return Variant{}, fmt.Errorf("%w: %sx%s in %q", ErrSizeLimit, m[2], m[3], p)
		}
		return Variant{Name: m[1], Size: &Size{Width: width, Height: height}, Extension: m[4]}, nil
	}
	if m := templateRoute.FindStringSubmatch(p); m != nil {
		return Variant{Name: m[1], Template: m[2], Extension: m[3]}, nil
	}
	log.Debugf("[IMAGEURL] ParseVariant %q: no route matched", p)
	return Variant{}, fmt.Errorf("%w: %q", ErrNotVariant, p)
}

// Tag returns the dimension or template tag of the variant.
func (v Variant) Tag() string {
	if v.Size != nil {
		return v.Size.Tag()
	}
	return v.Template
}

// Source returns the source image path without extension.
// The variant extension may differ from the source one when it was overridden.
func (v Variant) Source() string {
	return v.Name
}

// Original returns Name with the variant extension. This is the source image
// only when the variant was built without an extension override.
func (v Variant) Original() string {
	return v.Name + v.Extension
}

// String re-renders the variant path.
func (v Variant) String() string {
	return v.Name + "." + v.Tag() + v.Extension
}

// Limits caps variant dimensions. Zero means unlimited.
type Limits struct {
	MaxWidth  int
	MaxHeight int
}

// Check reports whether s fits within the limits.
func (l Limits) Check(s Size) error {
	if l.MaxWidth > 0 && s.Width > l.MaxWidth {
		return fmt.Errorf("%w: width %d > %d", ErrSizeLimit, s.Width, l.MaxWidth)
	}
	if l.MaxHeight > 0 && s.Height > l.MaxHeight {
		return fmt.Errorf("%w: height %d > %d", ErrSizeLimit, s.Height, l.MaxHeight)
	}
	return nil
}
