package tfvc

import "strings"

// ScanState is the state of an EntryScanner.
type ScanState int

const (
	// AwaitingEntry means no directory header has been seen yet.
	AwaitingEntry ScanState = iota
	// InDirectory means entries belong to the last header seen.
	InDirectory
)

func (s ScanState) String() string {
	switch s {
	case AwaitingEntry:
		return "AwaitingEntry"
	case InDirectory:
		return "InDirectory"
	default:
		return "Unknown"
	}
}

// EntryScanner turns tf's flat listing, where a line ending in ':' announces
// the directory of the lines after it, back into paths:
//
//	folder1\folder2:
//	file5.txt
//	file2.java
type EntryScanner struct {
	root  string
	state ScanState
	dir   string
}

// NewEntryScanner returns a scanner in the AwaitingEntry state. When root is
// set, entries under a relative directory are rooted under it.
func NewEntryScanner(root string) *EntryScanner {
	return &EntryScanner{root: root}
}

// Feed consumes one line. It reports the resolved path for file entries and
// false for headers and empty lines.
func (s *EntryScanner) Feed(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	if IsDirectoryHeader(line) {
		s.dir = strings.TrimSuffix(line, ":")
		s.state = InDirectory
		return "", false
	}
	return JoinEntryPath(s.root, s.dir, line), true
}

func (s *EntryScanner) State() ScanState {
	return s.state
}

// Directory is the current directory cursor without its trailing colon.
func (s *EntryScanner) Directory() string {
	return s.dir
}

// IsDirectoryHeader reports whether line announces a directory, e.g.
// "folder1:" or "folder1\folder2:".
func IsDirectoryHeader(line string) bool {
	return line != "" && line[len(line)-1] == ':'
}

// JoinEntryPath joins a file entry onto its directory, rooting a relative
// directory under root when root is set. tf prints Windows paths, so '\' is
// used unless the inputs only contain '/'.
func JoinEntryPath(root, dir, name string) string {
	sep := separatorFor(root, dir)
	if root != "" && !isRooted(dir) {
		dir = joinWith(sep, root, dir)
	}
	return joinWith(sep, dir, name)
}

func separatorFor(paths ...string) string {
	joined := strings.Join(paths, "")
	if !strings.Contains(joined, `\`) && strings.Contains(joined, "/") {
		return "/"
	}
	return `\`
}

func isRooted(p string) bool {
	if p == "" {
		return false
	}
	if p[0] == '/' || p[0] == '\\' {
		return true
	}
	return len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0])
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func joinWith(sep string, elems ...string) string {
	var out string
	for _, e := range elems {
		switch {
		case e == "":
		case out == "":
			out = e
		case strings.HasSuffix(out, "/") || strings.HasSuffix(out, `\`):
			out += e
		default:
			out += sep + e
		}
	}
	return out
}
