package main

import (
	"os"

	"obenseuer-installer/cmd" // Import the cmd package which contains the CLI command and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution,
// and exits with the code it returns.
//
// The obenseuer-installer project sets up the Obenseuer modding environment:
//   - Resolves the game's install directory through the local Steam installation
//   - Locates the latest stable BepInEx release on GitHub and the asset built for the chosen platform
//   - Streams the asset next to the game, extracts it over the install directory and removes the archive
//   - Reverses the operation on uninstall by deleting the files BepInEx and Doorstop place in the game folder
//   - Asks Steam to verify the game files on --check-integrity
//
// Error handling strategy:
//   - Every failure aborts the run with a logged message; nothing is retried
//   - Exit code 1 means the run could not complete, 0 means it did (or only help/usage was shown)
func main() {
	os.Exit(cmd.Execute())
}
