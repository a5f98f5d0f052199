// Copyright 2026 Ian Lewis
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

package lookup

// NoticeKind is the kind of message shown to the user after a search.
type NoticeKind int

const (
	// NoticeNone means there is nothing to show.
	NoticeNone NoticeKind = iota

	// NoticeInfo asks the user for input.
	NoticeInfo

	// NoticeNotFound reports a search with no match.
	NoticeNotFound
)

// Notice is a user visible message.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Title returns the notice's heading.
func (n Notice) Title() string {
	switch n.Kind {
	case NoticeInfo:
		return "Info"
	case NoticeNotFound:
		return "Not Found"
	default:
		return ""
	}
}
