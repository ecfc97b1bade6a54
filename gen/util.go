package gen

import (
	"log"
	"os"
	"sort"
	"unicode"

	"github.com/spf13/afero"
)

// infof handles logging information.
func infof(flags *Flags, s string, v ...interface{}) {
	if flags.Verbose {
		log.Printf(s, v...)
	}
}

// warnf handles logging warnings.
func warnf(flags *Flags, s string, v ...interface{}) {
	if flags.Verbose {
		log.Printf("WARNING: "+s, v...)
	}
}

// byName satisfies sort.Interface to sort []os.FileInfo by name.
type byName []os.FileInfo

func (v byName) Len() int           { return len(v) }
func (v byName) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }
func (v byName) Less(i, j int) bool { return v[i].Name() < v[j].Name() }

// readDir reads dir on fs, returning the entries sorted by name so that
// output is stable between invocations.
func readDir(fs afero.Fs, dir string, dirs bool) ([]os.FileInfo, error) {
	list, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	sort.Sort(byName(list))
	var res []os.FileInfo
	for _, fi := range list {
		if fi.IsDir() == dirs {
			res = append(res, fi)
		}
	}
	return res, nil
}

// isDir returns true when name exists on fs and is a directory.
func isDir(fs afero.Fs, name string) bool {
	ok, err := afero.IsDir(fs, name)
	return err == nil && ok
}

// isValidIdentifier determines if s is a valid Go identifier.
func isValidIdentifier(s string) bool {
	if len(s) == 0 || !unicode.IsLetter([]rune(s[0:1])[0]) {
		return false
	}

	for _, ch := range s {
		if !isIdentifierChar(ch) {
			return false
		}
	}

	return true
}

// isIdentifierChar returns true if ch is a valid identifier character.
func isIdentifierChar(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch >= 0x80 && unicode.IsLetter(ch) ||
		'0' <= ch && ch <= '9' || ch >= 0x80 && unicode.IsDigit(ch)
}
