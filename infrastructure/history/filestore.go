// Package history persists a model.History to and from a plain text file,
// one entry per line (§4.6 "save"/"load").
package history

import (
	"bufio"
	"os"

	"github.com/quillline/lineedit/domain/model"
)

// filePerm matches §4.6's restrictive-permission requirement: owner
// read/write only, applied at open time rather than via umask-then-chmod
// so there is no window where the file is briefly world-readable.
const filePerm = 0o600

// Save writes h to path, one entry per line, LF-terminated, creating the
// file if absent and truncating it if present. The file is opened with
// O_CREAT|O_TRUNC and explicit 0600 mode bits per §4.6, not chmod'd after
// the fact.
func Save(h *model.History, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range h.Entries() {
		if _, err := w.WriteString(entry); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Load reads path line by line, stripping a trailing "\r" or "\n" from
// each, and calls h.Add on every resulting line in file order (§4.6). A
// missing file is not an error: a history store with nothing saved yet
// loads as empty.
func Load(h *model.History, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := stripEOL(scanner.Text())
		h.Add(line)
	}
	return scanner.Err()
}

// stripEOL removes a single trailing \r left behind by bufio.Scanner's
// line splitting on CRLF-terminated files (Scanner already strips the
// \n itself).
func stripEOL(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\r' {
		return s[:n-1]
	}
	return s
}
