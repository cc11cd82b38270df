package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"obenseuer-installer/internal/config"
	"obenseuer-installer/internal/logger"
	"obenseuer-installer/internal/release"
)

// Install extracts archivePath over destDir and deletes the archive afterwards.
// A failure part way through leaves destDir partially overwritten; nothing is rolled back.
func Install(archivePath, destDir string) error {
	if err := ExtractArchive(archivePath, destDir); err != nil {
		return fmt.Errorf("%w: %s into %s: %w", ErrExtraction, archivePath, destDir, err)
	}
	logger.Info("[INFO] Removing temporary files...\n")
	if err := os.Remove(archivePath); err != nil {
		return fmt.Errorf("%w: failed to remove %s: %w", ErrIO, archivePath, err)
	}
	return nil
}

// TempArchivePath returns where the downloaded asset is stored inside dir before extraction.
// The name is fixed so a leftover from an interrupted run is overwritten by the next one;
// the suffix is taken from the asset name so the extractor can recognise the format.
func TempArchivePath(dir, baseName, assetName string) string {
	ext := archiveExt(assetName)
	if ext == "" {
		ext = ".zip"
	}
	return filepath.Join(dir, baseName+ext)
}

// Service runs the install, update, uninstall and integrity operations for one resolved target.
type Service struct {
	Run         *config.Run
	Releases    release.Lister
	Downloader  *Downloader
	NewReporter func(label string, total int64) Reporter
	OpenURL     URLOpener
}

// NewService wires the default collaborators for run.
func NewService(run *config.Run) *Service {
	return &Service{
		Run:         run,
		Releases:    release.NewGitHubClient(run.Profile.Framework.UserAgent),
		Downloader:  NewDownloader(),
		NewReporter: NewReporter,
		OpenURL:     OpenURL,
	}
}

// Install downloads the newest stable framework release for the target platform and
// extracts it into the install directory.
func (s *Service) Install(ctx context.Context) error {
	fw := s.Run.Profile.Framework
	dir := s.Run.Target.InstallDirectory
	tag := s.Run.Target.Platform.AssetTag()

	asset, err := release.Locate(ctx, s.Releases, release.Query{
		Owner:         fw.Owner,
		Repo:          fw.Repo,
		AcceptRelease: release.NotPrerelease(),
		AcceptAsset:   release.NameContains(tag),
	})
	if err != nil {
		return err
	}

	archive := TempArchivePath(dir, fw.TempName, asset.Name)
	logger.Info("[INFO] Installing %s %s from GitHub for platform %s at filepath: %s\n", fw.Name, asset.Tag, tag, archive)

	var reporter Reporter
	if s.NewReporter != nil {
		reporter = s.NewReporter(fw.Name, asset.Size)
	}
	n, err := s.Downloader.Download(ctx, asset.DownloadURL, asset.Size, archive, reporter)
	if err != nil {
		return err
	}
	logger.Info("[INFO] Successfully downloaded %s (%d bytes)\n", asset.Name, n)

	logger.Info("[INFO] Extracting %s compressed file into %s\n", fw.Name, dir)
	if err := Install(archive, dir); err != nil {
		return err
	}

	logger.Info("[INFO] %s modding environment installed!\n", s.Run.Profile.Game.Name)
	logger.Info("[INFO] You should run the game once with the environment installed to ensure all files are correctly generated.\n")
	return nil
}

// Update replaces an existing installation by installing over it.
func (s *Service) Update(ctx context.Context) error {
	logger.Info("[INFO] Updating %s modding environment...\n", s.Run.Profile.Game.Name)
	return s.Install(ctx)
}

// Uninstall removes the files listed in the profile from the install directory.
func (s *Service) Uninstall() error {
	if err := Uninstall(s.Run.Target.InstallDirectory, s.Run.Profile.Uninstall); err != nil {
		return err
	}
	logger.Info("[INFO] Successfully uninstalled %s modding environment!\n", s.Run.Profile.Game.Name)
	logger.Info("[INFO] If you wish to remove the uninstaller, simply delete its parent folder, no other files exist.\n")
	return nil
}
