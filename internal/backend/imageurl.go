package backend

import "strings"

// UploadBaseURL derives the static-upload host from the API base by stripping
// the trailing "/api" segment. "https://api.example.com/api" serves uploads
// from "https://api.example.com".
func (c *Client) UploadBaseURL() string {
	return strings.TrimSuffix(c.baseURL, "/api")
}

// ResolveImageURL normalizes a stored image path into an absolute URL.
// The backend stores images in three shapes:
//   - absolute URLs ("https://...") are used as-is
//   - root-relative paths ("/uploads/x.jpg") are prefixed with the upload host
//   - bare filenames ("x.jpg") get a slash and the upload host
//
// An empty path resolves to empty; callers substitute their own fallback image.
func (c *Client) ResolveImageURL(path string) string {
	return ResolveImageURL(c.UploadBaseURL(), path)
}

// ResolveImageURL is the pure form, usable without a Client.
func ResolveImageURL(uploadBase, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return uploadBase + path
	}
	return uploadBase + "/" + path
}
