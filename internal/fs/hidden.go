package fs

// reservedNames are system entries excluded from listings regardless of
// platform; "System Volume Information" shows up on mounted NTFS volumes.
var reservedNames = map[string]bool{
	"System Volume Information": true,
}

// IsHidden reports whether an entry name should be treated as hidden.
func IsHidden(name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	return reservedNames[name]
}
