package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// requireMediaType checks the Content-Type of r. A different media type is
// reported as not applicable, so another binder may take the request.
func requireMediaType(r *http.Request, want string) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected %s", ErrMissingContentType, want)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	if mediaType != want {
		return fmt.Errorf("%w: %w: got %s, expected %s", ErrBinderNotApplicable, ErrUnsupportedMediaType, mediaType, want)
	}
	return nil
}
