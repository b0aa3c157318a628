package rest

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

var ErrUploadTooLarge = errors.New("upload is too large")
var ErrNoUpload = errors.New("no file uploaded")

// OpenUpload limits the request body to maxBytes and opens the multipart file
// stored under field. The caller closes the returned file.
func OpenUpload(w http.ResponseWriter, r *http.Request, field string, maxBytes int64) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
			log.Debugf("Upload is too large: %v", err)
			return nil, nil, fmt.Errorf("%w: limit is %d bytes", ErrUploadTooLarge, maxBytes)
		}
		log.Debugf("Unable to parse multipart form: %v", err)
		return nil, nil, fmt.Errorf("%w: %v", ErrNoUpload, err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNoUpload, err)
	}
	log.Debugf("Uploaded file: %s", header.Filename)
	log.Debugf("File size: %d", header.Size)
	log.Tracef("MIME header: %+v", header.Header)

	return file, header, nil
}

// WriteUploadError maps OpenUpload errors to a 400 response.
func WriteUploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrUploadTooLarge) {
		WriteError(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Task log is too large",
			Details: err.Error(),
		})
		return
	}
	WriteError(w, http.StatusBadRequest, ErrorResponse{
		Error:   "Task log upload is missing",
		Details: "Send the CSV file as multipart/form-data in the \"file\" field",
	})
}
