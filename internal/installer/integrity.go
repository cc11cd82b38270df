package installer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"obenseuer-installer/internal/logger"
)

// URLOpener hands a URL to the desktop environment.
type URLOpener func(url string) error

// OpenURL opens url with the platform's default handler.
func OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	logger.Debug("[DEBUG] Running command: %v\n", cmd.Args)
	return cmd.Start()
}

// FileSHA256 returns the hex encoded SHA-256 digest of the file at path.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyInstaller logs the path and SHA-256 of the running executable so it can be
// compared with the published checksum.
func VerifyInstaller() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: cannot locate installer executable: %w", ErrIO, err)
	}
	sum, err := FileSHA256(exe)
	if err != nil {
		return "", fmt.Errorf("%w: cannot hash %s: %w", ErrIO, exe, err)
	}
	logger.Info("[INFO] Installer %s\n", exe)
	logger.Info("[INFO] SHA-256 %s\n", sum)
	return sum, nil
}

// ValidateURL is the Steam URL that starts file validation for appID.
func ValidateURL(appID uint32) string {
	return fmt.Sprintf("steam://validate/%d", appID)
}

// VerifyGame asks Steam to validate the game's files.
func VerifyGame(appID uint32, open URLOpener) error {
	url := ValidateURL(appID)
	logger.Info("[INFO] Asking Steam to verify the game files (%s)...\n", url)
	if err := open(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// CheckIntegrity verifies the installer executable and then the game files.
func (s *Service) CheckIntegrity() error {
	if _, err := VerifyInstaller(); err != nil {
		return err
	}
	open := s.OpenURL
	if open == nil {
		open = OpenURL
	}
	return VerifyGame(s.Run.Profile.Game.AppID, open)
}
