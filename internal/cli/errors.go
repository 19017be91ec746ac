package cli

import (
	"errors"
	"fmt"

	"github.com/protolist-labs/protolist/internal/branding"
	"github.com/protolist-labs/protolist/internal/config"
	"github.com/protolist-labs/protolist/internal/proto"
	"github.com/protolist-labs/protolist/internal/registry"
	"github.com/protolist-labs/protolist/internal/resolve"
)

// suggestionsFor returns hints for the errors a user can act on.
func suggestionsFor(err error) []string {
	var (
		dup        *registry.DuplicateNameError
		unresolved *resolve.UnresolvedReferenceError
		cyclic     *resolve.CyclicHierarchyError
		parseErr   *proto.ParseError
		invalid    *config.ValidationError
	)

	switch {
	case errors.Is(err, config.ErrHomeNotSet):
		return []string{
			fmt.Sprintf("export %s=/path/to/webots", branding.HomeEnvVar()),
			fmt.Sprintf("or add %s=... to a .env file in the current directory", branding.HomeEnvVar()),
		}
	case errors.As(err, &dup):
		return []string{fmt.Sprintf("rename one of the two %s.proto files, or add it to the skipped list", dup.Name)}
	case errors.As(err, &unresolved):
		return []string{fmt.Sprintf("check that %s.proto exists under projects/ and is not skipped", unresolved.Reference)}
	case errors.As(err, &cyclic):
		return []string{"break the cycle so the chain ends on a node from resources/nodes"}
	case errors.As(err, &parseErr):
		return []string{"each descriptor needs a PROTO interface block followed by a body node"}
	case errors.As(err, &invalid):
		return []string{fmt.Sprintf("run '%s config --defaults' to see the expected settings", branding.CLIName())}
	}
	return nil
}
