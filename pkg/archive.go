package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Suffix marks files produced by CompressFile.
const Suffix = ".hmc"

var log = logrus.New()

// SetLogger replaces the logger used by the file helpers.
func SetLogger(l *logrus.Logger) { log = l }

func Logger() *logrus.Logger { return log }

// Info describes a container on disk.
type Info struct {
	Path        string
	Size        int
	Extension   string
	TreeSize    int
	PayloadSize int
	Tree        string
	Bits        uint64
	Leaves      []Leaf
}

// SplitName returns the file name without its last extension, and that
// extension without the dot.
func SplitName(path string) (base, ext string) {
	name := filepath.Base(path)
	ext = filepath.Ext(name)
	if ext == "" || ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext[1:]
}

// CompressFile compresses src into outDir/<base>.hmc and returns the path written.
func CompressFile(src, outDir string) (string, error) {
	raw, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	base, ext := SplitName(src)
	data, err := Compress(string(raw), ext)
	if err != nil {
		return "", fmt.Errorf("compress %s: %w", src, err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	out := filepath.Join(outDir, base+Suffix)
	if err := os.WriteFile(out, data, 0644); err != nil {
		return "", err
	}

	log.WithFields(logrus.Fields{
		"src":        src,
		"extension":  ext,
		"raw":        len(raw),
		"compressed": len(data),
	}).Debug("compressed file")
	return out, nil
}

// DecompressFile restores a .hmc container into outDir under its original
// extension and returns the path written.
func DecompressFile(archive, outDir string) (string, error) {
	if filepath.Ext(archive) != Suffix {
		return "", fmt.Errorf("%w: %s", ErrNotContainer, archive)
	}

	data, err := os.ReadFile(archive)
	if err != nil {
		return "", err
	}

	text, ext, err := Decompress(data)
	if err != nil {
		return "", fmt.Errorf("decompress %s: %w", archive, err)
	}

	base, _ := SplitName(archive)
	name := base
	if ext != "" {
		name += "." + ext
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	out := filepath.Join(outDir, name)
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return "", err
	}

	log.WithFields(logrus.Fields{
		"archive":   archive,
		"extension": ext,
		"size":      len(data),
		"restored":  len(text),
	}).Debug("decompressed file")
	return out, nil
}

// Inspect reads a container and reports its sections and code table
// without decoding the payload.
func Inspect(archive string) (*Info, error) {
	data, err := os.ReadFile(archive)
	if err != nil {
		return nil, err
	}

	c, err := Unframe(data)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", archive, err)
	}
	tree, err := ParseTree(string(c.Tree))
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", archive, err)
	}

	info := &Info{
		Path:        archive,
		Size:        len(data),
		Extension:   c.Extension,
		TreeSize:    len(c.Tree),
		PayloadSize: len(c.Payload),
		Tree:        string(c.Tree),
		Leaves:      tree.Leaves(),
	}
	if bits, ok := tree.EncodedBits(); ok {
		info.Bits = bits
	}

	log.WithFields(logrus.Fields{
		"archive":   archive,
		"extension": c.Extension,
		"tree":      len(c.Tree),
		"payload":   len(c.Payload),
	}).Debug("inspected container")
	return info, nil
}
