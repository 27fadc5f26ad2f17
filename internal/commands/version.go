package commands

import (
	"fmt"

	"github.com/latoulicious/meeple/internal/version"
	"github.com/latoulicious/meeple/pkg/logging"
)

// VersionCommand prints build and version information.
func VersionCommand(args []string) error {
	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("version")
	logger.Info("Version command executed", nil)

	fmt.Println(version.Get().String())
	return nil
}
