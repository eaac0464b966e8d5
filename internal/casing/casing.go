//This project is the dining API for Hoagie Meal. Access to campus dining locations, events and menus as well as helper endpoints to integrate with our apps.
//API Copyright (C) 2025 Hoagie Club
//This program is free software: you can redistribute it and/or modify
//it under the terms of the GNU General Public License as published by
//the Free Software Foundation, either version 3 of the License, or
//(at your option) any later version.
//
//This program is distributed in the hope that it will be useful,
//but WITHOUT ANY WARRANTY; without even the implied warranty of
//MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//GNU General Public License for more details.
//
//You should have received a copy of the GNU General Public License
//along with this program.  If not, see <https://www.gnu.org/licenses/>.
package casing

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// ToCamel rewrites a key in any of the usual casings (snake_case,
// SCREAMING_SNAKE, kebab-case, PascalCase) as lowerCamelCase, so
// location_id, LOCATION_ID and LocationID all become locationId.
// Keys with non-ASCII characters are returned unchanged.
func ToCamel(key string) string {
	trimmed := strings.TrimLeft(key, "_-")
	if trimmed == "" || !isASCII(trimmed) {
		return key
	}
	return strcase.ToLowerCamel(trimmed)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// CamelizeKeys converts every object key in v to camelCase, descending into
// nested objects and arrays. Scalars are returned unchanged. The input is
// not modified.
//
// When several keys of one object convert to the same name, a key already
// spelled that way wins; otherwise the first key in sorted order does.
func CamelizeKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			camel := ToCamel(k)
			if _, taken := out[camel]; taken && camel != k {
				continue
			}
			out[camel] = CamelizeKeys(val[k])
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = CamelizeKeys(child)
		}
		return out
	default:
		return v
	}
}
