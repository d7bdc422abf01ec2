package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

const (
	EnvInventoryFile = "INV_FILE"
	EnvCurrency      = "INV_CURRENCY"
	EnvVerbose       = "INV_VERBOSE"
)

// ExtensionPrefix prefixes the name of external subcommand binaries.
const ExtensionPrefix = "inv-"

// extensionEnv returns the environment passed to extensions: the current one
// plus the resolved global flags.
func extensionEnv() []string {
	env := os.Environ()
	env = append(env, EnvInventoryFile+"="+InventoryFile())
	env = append(env, EnvCurrency+"="+Currency())
	env = append(env, EnvVerbose+"="+strconv.FormatBool(IsVerbose()))
	return env
}

// RunExtension attempts to find and execute an external inv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	log := named(newLogger(IsVerbose()), "extension")
	defer log.Sync()

	externalCmdName := ExtensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug("external command not found in PATH", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
