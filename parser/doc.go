// Package parser converts emoji-delimited resource listing text into
// normalized records. Splitting is ordinal-first with a blank-line fallback;
// labeled lines are classified by an ordered rule list where the first match
// wins. Field normalizers (phone, ZIP, website, hours, badges) live here
// because they only make sense at the parse boundary: records are immutable
// afterwards.
package parser
