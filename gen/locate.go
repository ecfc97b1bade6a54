package gen

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FindRepo resolves the root of the icons repository.
//
// An explicit icons directory wins, followed by the environment override.
// Otherwise the working directory and each of its ancestors are searched for
// a directory named flags.RepoName.
func FindRepo(fs afero.Fs, flags *Flags, e Env) (string, error) {
	switch {
	case flags.IconsDir != "":
		if !isDir(fs, flags.IconsDir) {
			return "", configErrorf("--icons-dir %s is not a directory", flags.IconsDir)
		}
		return flags.IconsDir, nil
	case e.IconsDir != "":
		if !isDir(fs, e.IconsDir) {
			return "", configErrorf("%s is set but not a directory: %s", EnvIconsDir, e.IconsDir)
		}
		return e.IconsDir, nil
	}
	for dir := flags.Wd; dir != ""; {
		if candidate := filepath.Join(dir, flags.RepoName); isDir(fs, candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", configErrorf("could not locate a %q directory: pass --icons-dir or set %s", flags.RepoName, EnvIconsDir)
}

// FindPlatformRoot returns the single child directory of repo containing a
// flags.Fingerprint category directory.
func FindPlatformRoot(fs afero.Fs, flags *Flags, repo string) (string, error) {
	list, err := readDir(fs, repo, true)
	if err != nil {
		return "", &ConfigError{Msg: "could not read icons repository " + repo, Err: err}
	}
	var candidates []string
	for _, fi := range list {
		dir := filepath.Join(repo, fi.Name())
		if isDir(fs, filepath.Join(dir, flags.Fingerprint)) {
			candidates = append(candidates, dir)
		}
	}
	switch len(candidates) {
	case 0:
		return "", configErrorf("could not find a platform root under %s containing a %q category directory", repo, flags.Fingerprint)
	case 1:
		return candidates[0], nil
	}
	return "", configErrorf("multiple platform roots found under %s (each contains a %q directory): %s", repo, flags.Fingerprint, strings.Join(candidates, ", "))
}
