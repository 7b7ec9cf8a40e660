package ua

import (
	"fmt"
	"strconv"
	"strings"
)

// QualifiedName pairs a name and a namespace index. It is the structural
// browse name of a node, distinct from the display name.
type QualifiedName struct {
	NamespaceIndex uint16
	Name           string
}

// NewQualifiedName constructs a QualifiedName from a namespace index and a name.
func NewQualifiedName(ns uint16, name string) QualifiedName {
	return QualifiedName{ns, name}
}

// ParseQualifiedName returns a QualifiedName from a string, e.g. ParseQualifiedName("2:Boiler")
func ParseQualifiedName(s string) QualifiedName {
	pos := strings.Index(s, ":")
	if pos == -1 {
		return QualifiedName{0, s}
	}
	ns, err := strconv.ParseUint(s[:pos], 10, 16)
	if err != nil {
		return QualifiedName{0, s}
	}
	return QualifiedName{uint16(ns), s[pos+1:]}
}

// String returns a string representation, e.g. "2:Boiler"
func (a QualifiedName) String() string {
	return fmt.Sprintf("%d:%s", a.NamespaceIndex, a.Name)
}
