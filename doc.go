// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package conf provides a parser and serializer for a minimal sectioned
key/value configuration format.

The format is line-oriented and deliberately small: there are no
comments, no quoting or escape sequences, no multi-line values, and no
type coercion. Values are kept as text, and duplicate keys or section
names are preserved rather than merged.

Syntax

A configuration is Unicode text encoded in UTF-8 consisting of zero or
more sections. A section is started by writing its name in square
brackets ('[' and ']') on its own line and ends at the next section
name or the end of input:

	[section]
	key1 = value1
	key2 = value2

An entry is a key and value written on a single line, separated by the
first equals sign ('='); any later equals signs are part of the value.
Keys and values are trimmed of surrounding whitespace. Section names
are taken verbatim from between the brackets and are not trimmed, so
"[ foo ]" names the section " foo ". Every entry belongs to the most
recently opened section; an entry before the first section header is
an error.

Lines are trimmed of surrounding whitespace before they are
interpreted. Blank lines are ignored everywhere and do not end a
section.

Repeated names

Multiple entries in the same section may share a key, and multiple
sections may share a name. Neither is merged: Section.Get returns the
first matching entry, and duplicates remain visible by walking the
Sections and Entries slices directly.
*/
package conf
