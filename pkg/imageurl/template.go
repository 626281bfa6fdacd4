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

// Build inserts tag between the name and the extension.
// A non-empty extension replaces the parsed one; it is used verbatim,
// so callers pass the leading dot themselves.
func (p ParsedPath) Build(tag, extension string) string {
	if extension == "" {
		extension = p.Extension
	}
	return p.Path + p.Name + "." + tag + extension
}

// Template rewrites url with an arbitrary tag, e.g. a template name.
func Template(url, name string) string {
	return ParseFilename(url).Build(name, "")
}

// TemplateAs is Template with an extension override.
func TemplateAs(url, name, extension string) string {
	return ParseFilename(url).Build(name, extension)
}
