package model

// FetchRequest describes a single dictionary download.
type FetchRequest struct {
	URL        string // Resource URL, possibly containing a tag path segment
	OutputName string // Optional override filename, used verbatim when set
	OutputDir  string // Directory the resolved file is written into
}

// FetchResult represents the outcome of a completed download.
type FetchResult struct {
	Path    string // Resolved local path of the downloaded file
	Size    int64  // Bytes written
	Version string // Version token derived from the URL
}
