package viewer

import (
	"fmt"
	"mime"
	"strconv"
)

// Locator addresses the embedded renderer: a document path with page and zoom
// encoded in the fragment. Rotation is not part of it because the renderer
// has no rotation parameter.
type Locator struct {
	Path string
	Page int
	Zoom int
}

// String renders the locator as "<path>#page=<n>&zoom=<z>". The key names and
// separators are read by the host PDF viewer and must not change.
func (l Locator) String() string {
	return l.Path + "#page=" + strconv.Itoa(l.Page) + "&zoom=" + strconv.Itoa(l.Zoom)
}

// MarshalText lets a Locator appear as a plain string in JSON payloads.
func (l Locator) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// DownloadRequest asks the client to save the bound document's raw bytes under
// Filename. It ignores page, zoom and rotation.
type DownloadRequest struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// DefaultFilename is used when a document has no display title.
const DefaultFilename = "document.pdf"

// ContentDisposition returns the header value for serving the download.
func (d DownloadRequest) ContentDisposition() string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": d.Filename})
}

// Transform returns the CSS transform applied around the rendered surface.
func Transform(rotation int) string {
	return fmt.Sprintf("rotate(%ddeg)", rotation)
}
