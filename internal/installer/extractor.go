package installer

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"         // For reading .7z archives
	"github.com/klauspost/compress/zstd" // For reading .zst compressed data
	"github.com/xi2/xz"                  // For reading .xz compressed data

	"obenseuer-installer/internal/logger"
)

// archiveExtensions lists the supported archive suffixes.
var archiveExtensions = []string{".tar.gz", ".tar.bz2", ".tar.xz", ".tar.zst", ".tgz", ".tar", ".zip", ".7z"}

// archiveExt returns the supported archive suffix of name, or "" when there is none.
func archiveExt(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}

// ExtractArchive extracts every entry of src into dest, replacing files that already exist.
// It stops at the first failing entry and leaves whatever was written so far in place.
func ExtractArchive(src, dest string) error {
	switch archiveExt(src) {
	case ".zip":
		logger.Debug("[DEBUG] compression type is zip\n")
		return extractZip(src, dest)
	case ".7z":
		logger.Debug("[DEBUG] compression type is .7z\n")
		return extract7z(src, dest)
	case ".tar", ".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".tar.zst":
		logger.Debug("[DEBUG] compression type is .tar.*\n")
		return extractTarArchive(src, dest)
	default:
		return fmt.Errorf("unsupported archive format: %s", src)
	}
}

// extractTarArchive handles tar and compressed tar variants
func extractTarArchive(src, dest string) error {
	logger.Debug("[DEBUG] uncompressing %s to %s\n", src, dest)
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var reader io.Reader = f
	switch archiveExt(src) {
	case ".tar.gz", ".tgz":
		gr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gr.Close()
		reader = gr
	case ".tar.bz2":
		reader = bzip2.NewReader(f)
	case ".tar.xz":
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return err
		}
		reader = xzr
	case ".tar.zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return err
		}
		defer zr.Close()
		reader = zr
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		default:
			logger.Debug("[DEBUG] skipping %s (tar type %c)\n", hdr.Name, hdr.Typeflag)
		}
	}
}

// extractZip extracts a .zip archive
func extractZip(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeEntry(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// extract7z handles .7z extraction using the sevenzip library
func extract7z(src, dest string) error {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("failed to open 7z archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeEntry(target, rc, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// writeEntry writes r to target, creating parent directories and truncating any existing file.
func writeEntry(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	perm := mode.Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// safeJoin joins an archive entry name onto dest and rejects names that would land outside it.
func safeJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(filepath.Clean(dest), target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes %s", name, dest)
	}
	return target, nil
}
