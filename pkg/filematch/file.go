// Package filematch provides leaf matchers over filesystem paths.
// Matchers stat the path on every Test call; a path that cannot be
// stat'ed fails every type and permission check.
package filematch

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"digital.vasic.clearcheck/pkg/matcher"
)

// BeAFile matches paths naming a regular file.
func BeAFile() matcher.Matcher[string] {
	return statMatcher(os.Stat, func(fi fs.FileInfo) bool {
		return fi.Mode().IsRegular()
	}, "%q should be a file", "%q should not be a file")
}

// BeADirectory matches paths naming a directory.
func BeADirectory() matcher.Matcher[string] {
	return statMatcher(os.Stat, func(fi fs.FileInfo) bool {
		return fi.IsDir()
	}, "%q should be a directory", "%q should not be a directory")
}

// BeASymbolicLink matches paths that are themselves symbolic
// links. The link is not followed.
func BeASymbolicLink() matcher.Matcher[string] {
	return statMatcher(os.Lstat, func(fi fs.FileInfo) bool {
		return fi.Mode()&fs.ModeSymlink != 0
	}, "%q should be a symbolic link", "%q should not be a symbolic link")
}

// BeZeroSized matches paths whose size is zero bytes.
func BeZeroSized() matcher.Matcher[string] {
	return statMatcher(os.Stat, func(fi fs.FileInfo) bool {
		return fi.Size() == 0
	}, "%q should be zero sized", "%q should not be zero sized")
}

// BeReadonly matches paths without any write permission bit.
func BeReadonly() matcher.Matcher[string] {
	return statMatcher(os.Stat, func(fi fs.FileInfo) bool {
		return fi.Mode().Perm()&0o222 == 0
	}, "%q should be readonly", "%q should not be readonly")
}

// BeWritable matches paths with at least one write permission
// bit.
func BeWritable() matcher.Matcher[string] {
	return statMatcher(os.Stat, func(fi fs.FileInfo) bool {
		return fi.Mode().Perm()&0o222 != 0
	}, "%q should be writable", "%q should not be writable")
}

// BeAbsolute matches absolute paths. No filesystem access.
func BeAbsolute() matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			filepath.IsAbs(value),
			"%q should be absolute",
			"%q should not be absolute",
			value,
		)
	})
}

// BeRelative matches relative paths. No filesystem access.
func BeRelative() matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		return matcher.Formatted(
			!filepath.IsAbs(value),
			"%q should be relative",
			"%q should not be relative",
			value,
		)
	})
}

// HaveExtension matches paths whose extension, without the
// leading dot, equals extension.
func HaveExtension(extension string) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		ext := filepath.Ext(value)
		ok := ext != "" && ext[1:] == extension
		return matcher.Formatted(
			ok,
			"%q should have extension %q",
			"%q should not have extension %q",
			value, extension,
		)
	})
}

// ContainFileName matches directories that hold an entry called
// name, searching recursively.
func ContainFileName(name string) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		names, _ := walkNames(value)
		return matcher.Formatted(
			slices.Contains(names, name),
			"%q should contain a file name %q",
			"%q should not contain a file name %q",
			value, name,
		)
	})
}

// ContainAllFileNames matches directories that hold every entry in
// names, searching recursively.
func ContainAllFileNames(names []string) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		found, _ := walkNames(value)
		var missing []string
		for _, n := range names {
			if !slices.Contains(found, n) {
				missing = append(missing, n)
			}
		}
		return matcher.Formatted(
			len(missing) == 0,
			"%q should contain file names %q but was missing %q",
			"%q should not contain file names %q, missing %q",
			value, names, missing,
		)
	})
}

// walkNames lists the base names of every entry under root.
// Unreadable subtrees are skipped.
func walkNames(root string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(
		root,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				return fs.SkipDir
			}
			if path != root {
				names = append(names, d.Name())
			}
			return nil
		},
	)
	return names, err
}

func statMatcher(
	stat func(string) (fs.FileInfo, error),
	accept func(fs.FileInfo) bool,
	format, negatedFormat string,
) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Verdict {
		fi, err := stat(value)
		return matcher.Formatted(
			err == nil && accept(fi),
			format, negatedFormat,
			value,
		)
	})
}
