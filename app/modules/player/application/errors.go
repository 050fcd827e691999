package playerservice

import (
	"fmt"
	"strings"
)

// UnresolvedNamesError reports every submitted display name that did not
// resolve to a known player. Resolution is all-or-nothing: the caller must
// not proceed with a partial mapping.
type UnresolvedNamesError struct {
	Names []string
}

func (e *UnresolvedNamesError) Error() string {
	return fmt.Sprintf("unknown player name(s): %s", strings.Join(e.Names, ", "))
}
