package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvScenarioFile = "LSIM_SCENARIO_FILE"
	EnvConfigFile   = "LSIM_CONFIG_FILE"
	EnvVerbose      = "LSIM_VERBOSE"
)

// RunExtension attempts to find and execute an external lsim-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "lsim-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}
	return true, 0
}

// extensionEnv returns the global flags as environment variables.
// Files are passed as absolute paths, so that extensions can change their
// working directory.
func extensionEnv() []string {
	config := *configFile
	if config == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			config = defaultConfigFile
		}
	}
	return []string{
		EnvScenarioFile + "=" + absolute(*scenarioFile),
		EnvConfigFile + "=" + absolute(config),
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
