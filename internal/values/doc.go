// Package values extracts the values a variable is assigned in env files and
// groups them into an envscan.ValueIndex.
//
// Lines are matched with ^NAME\s*=\s*(.*)$ where NAME is the literal variable
// name and \s covers Unicode whitespace, not only ASCII. The captured value is cut at the first '#' and trimmed, so
// `FOO=bar  # note` and `FOO = bar` both yield "bar". No quoting, escaping or
// interpolation rules are applied.
package values
