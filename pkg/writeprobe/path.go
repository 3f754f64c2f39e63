package writeprobe

import (
	"os"
	"path/filepath"
	"strings"
)

// normalizePath drops repeated separators and "." elements. Unlike
// filepath.Clean it keeps ".." so that the operating system resolves it
// after following symlinks.
func normalizePath(p string) string {
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]
	rooted := len(rest) > 0 && os.IsPathSeparator(rest[0])

	elems := strings.FieldsFunc(rest, isSeparator)
	kept := elems[:0]
	for _, e := range elems {
		if e != "." {
			kept = append(kept, e)
		}
	}

	out := vol
	if rooted {
		out += string(filepath.Separator)
	}
	out += strings.Join(kept, string(filepath.Separator))

	if out == "" {
		return "."
	}
	return out
}

// parentDir cuts a normalized path at its last separator.
func parentDir(p string) string {
	vol := filepath.VolumeName(p)
	i := strings.LastIndexFunc(p, isSeparator)

	switch {
	case i < len(vol):
		if vol != "" {
			return vol
		}
		return "."
	case i == len(vol):
		return p[:i+1]
	default:
		return p[:i]
	}
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}
