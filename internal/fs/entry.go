package fs

// Entry represents a single directory child shown in the list.
//
// DisplayName and Path are separate derived fields: DisplayName may have
// configured media suffixes stripped for presentation, while Path is always
// the untouched absolute path used for playback and history keys.
type Entry struct {
	Path        string
	DisplayName string
	IsFile      bool
	IsWatched   bool
}
