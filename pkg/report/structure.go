package report

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	metadataFile    = "metadata.pb"
	componentPrefix = "component-"
	pbExtension     = ".pb"
	tmpExtension    = ".tmp"
	dirPerm         = 0o750
	filePerm        = 0o600
)

// FileStructure maps report entries to paths below a report directory.
// Path computations are pure; nothing is created on disk.
type FileStructure struct {
	dir string
}

// NewFileStructure returns the layout rooted at dir.
func NewFileStructure(dir string) FileStructure {
	return FileStructure{dir: dir}
}

// Root returns the report directory.
func (fs FileStructure) Root() string {
	return fs.dir
}

// MetadataFile returns the path of the metadata file.
func (fs FileStructure) MetadataFile() string {
	return filepath.Join(fs.dir, metadataFile)
}

// ComponentFile returns the path of the descriptor of component ref.
func (fs FileStructure) ComponentFile(ref int32) string {
	return filepath.Join(fs.dir, componentPrefix+strconv.FormatInt(int64(ref), 10)+pbExtension)
}

// Path returns the path of the (domain, ref) file.
func (fs FileStructure) Path(domain Domain, ref int32) string {
	return filepath.Join(fs.dir, domain.filePrefix()+strconv.FormatInt(int64(ref), 10)+pbExtension)
}

// HasData reports whether a regular file exists for (domain, ref).
func (fs FileStructure) HasData(domain Domain, ref int32) bool {
	return isFile(fs.Path(domain, ref))
}

// refFromName extracts the ref from a file name produced by Path for domain.
func refFromName(domain Domain, name string) (int32, bool) {
	trimmed, ok := strings.CutPrefix(name, domain.filePrefix())
	if !ok {
		return 0, false
	}

	trimmed, ok = strings.CutSuffix(trimmed, pbExtension)
	if !ok {
		return 0, false
	}

	ref, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil || ref <= 0 {
		return 0, false
	}

	return int32(ref), true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
