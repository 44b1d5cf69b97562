package images

// ImageResponse is returned after a successful upload.
type ImageResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewImageResponse builds the response for a stored image name.
func NewImageResponse(name string) *ImageResponse {
	return &ImageResponse{
		Name: name,
		URL:  "/images/" + name,
	}
}
