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

package common

import "errors"

// Errors returned by the config and command layers. Wrap with %w and match
// with errors.Is.
var (
	ErrUnknownPreset   = errors.New("unknown preset")         // preset name not in settings
	ErrUnknownTemplate = errors.New("unknown template")       // template name not allowed by settings
	ErrInvalidPreset   = errors.New("invalid preset")         // preset value is not "WxH"
	ErrConflictingSize = errors.New("conflicting size flags") // more than one size source given
	ErrMissingSize     = errors.New("missing size")           // no size source, or half of --width/--height
)
