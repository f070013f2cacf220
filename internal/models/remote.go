package models

// RemoteFile is a template file fetched from a remote repository's
// template directory.
type RemoteFile struct {
	Name    string
	Path    string
	Content string
}
