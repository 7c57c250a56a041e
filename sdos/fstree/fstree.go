// Package fstree is the fake, read-only directory tree behind DIR and CD.
//
// Paths are a drive letter, a colon and a backslash for a drive root
// ("C:\"), with subdirectories appended without a trailing backslash
// ("C:\GAMES").
package fstree

import (
	"fmt"
	"strings"
)

// DirSize is the size label of directory entries.
const DirSize = "<DIR>"

// Entry is one line of a directory listing.
type Entry struct {
	Name string
	Size string
}

// IsDir reports whether e names a subdirectory.
func (e Entry) IsDir() bool { return e.Size == DirSize }

// Tree maps absolute directory paths to their entries. It never changes
// after New.
type Tree struct {
	root string
	dirs map[string][]Entry
}

// New validates dirs and returns a tree rooted at root.
func New(root string, dirs map[string][]Entry) (*Tree, error) {
	if !IsRoot(root) {
		return nil, fmt.Errorf("fstree: root %q is not a drive root", root)
	}
	if _, ok := dirs[root]; !ok {
		return nil, fmt.Errorf("fstree: root %q missing", root)
	}

	t := &Tree{root: root, dirs: make(map[string][]Entry, len(dirs))}
	for p, entries := range dirs {
		if !validPath(p) {
			return nil, fmt.Errorf("fstree: malformed path %q", p)
		}
		seen := make(map[string]bool, len(entries))
		for _, e := range entries {
			if e.Name == "" || strings.ContainsAny(e.Name, `\:`) {
				return nil, fmt.Errorf("fstree: %s: bad entry name %q", p, e.Name)
			}
			if seen[e.Name] {
				return nil, fmt.Errorf("fstree: %s: duplicate entry %q", p, e.Name)
			}
			seen[e.Name] = true
			if e.IsDir() && !dirListed(dirs, Join(p, e.Name)) {
				return nil, fmt.Errorf("fstree: %s: directory %q has no listing", p, e.Name)
			}
		}
		t.dirs[p] = append([]Entry(nil), entries...)
	}
	return t, nil
}

// Default returns the stock SDOS disk layout.
func Default() *Tree {
	t, err := New(`C:\`, map[string][]Entry{
		`C:\`: {
			{Name: "AUTOEXEC.BAT", Size: "2KB"},
			{Name: "CONFIG.SYS", Size: "1KB"},
			{Name: "COMMAND.COM", Size: "38KB"},
			{Name: "GAMES", Size: DirSize},
			{Name: "BIN", Size: DirSize},
		},
		`C:\GAMES`: {
			{Name: "SNAKE.EXE", Size: "12KB"},
			{Name: "ADVENTURE.EXE", Size: "8KB"},
		},
		`C:\BIN`: {
			{Name: "UTIL.EXE", Size: "15KB"},
			{Name: "NETSTAT.EXE", Size: "10KB"},
		},
		`D:\`: {
			{Name: "README.TXT", Size: "1KB"},
			{Name: "SETUP.EXE", Size: "64KB"},
		},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// Root is the directory a shell starts in.
func (t *Tree) Root() string { return t.root }

// Has reports whether path is a directory of the tree.
func (t *Tree) Has(path string) bool {
	_, ok := t.dirs[path]
	return ok
}

// List returns a copy of the entries of path, in listing order.
func (t *Tree) List(path string) ([]Entry, bool) {
	entries, ok := t.dirs[path]
	if !ok {
		return nil, false
	}
	return append([]Entry(nil), entries...), true
}

// DriveRoot returns the root path of drive letter d ("C" or "c" -> "C:\").
func DriveRoot(d string) string {
	return strings.ToUpper(d) + `:\`
}

// IsRoot reports whether p is a drive root such as "C:\".
func IsRoot(p string) bool {
	return len(p) == 3 && isDriveLetter(p[0]) && p[1] == ':' && p[2] == '\\'
}

// RootOf returns the drive root of p.
func RootOf(p string) string {
	if len(p) < 3 {
		return p
	}
	return p[:3]
}

// Parent returns the parent of p. A drive root is its own parent.
func Parent(p string) string {
	if IsRoot(p) {
		return p
	}
	i := strings.LastIndexByte(p, '\\')
	if i <= 2 {
		return RootOf(p)
	}
	return p[:i]
}

// Join appends a single directory name to p.
func Join(p, name string) string {
	if IsRoot(p) {
		return p + name
	}
	return p + `\` + name
}

func dirListed(dirs map[string][]Entry, p string) bool {
	_, ok := dirs[p]
	return ok
}

func validPath(p string) bool {
	if IsRoot(p) {
		return true
	}
	if len(p) < 4 || !IsRoot(p[:3]) {
		return false
	}
	for _, seg := range strings.Split(p[3:], `\`) {
		if seg == "" || strings.Contains(seg, ":") {
			return false
		}
	}
	return true
}

func isDriveLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
