package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/juho05/log"
	"github.com/juho05/wavedial/auth"
	"github.com/juho05/wavedial/handlers/responses"
	"github.com/juho05/wavedial/repos"
	"github.com/juho05/wavedial/upload"
)

const maxUploadMemory = 32 << 20

func respondInternalErr(w http.ResponseWriter, err error) {
	log.Error(err)
	responses.EncodeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// respondErr translates service errors into status codes without leaking
// query or store detail to the client.
func respondErr(w http.ResponseWriter, err error) {
	var uploadErr *upload.Error
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		responses.EncodeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, repos.ErrNotFound):
		responses.EncodeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repos.ErrExists):
		responses.EncodeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, repos.ErrInvalidParams):
		responses.EncodeError(w, http.StatusBadRequest, "invalid parameters")
	case errors.As(err, &uploadErr):
		log.Error(err)
		responses.EncodeError(w, http.StatusInternalServerError, "failed to store uploaded file")
	default:
		respondInternalErr(w, err)
	}
}

func toStationResponse(s *repos.Station) responses.Station {
	return responses.Station{
		ID:          s.ID,
		Name:        s.Name,
		Language:    s.Language,
		Description: s.Description,
		StreamURL:   s.StreamURL,
		Image:       s.Image,
	}
}

// acceptImage pulls the single optional "image" file out of a multipart form
// and stores it through the upload handler. ok reports whether the request
// carried a file at all.
func (h *Handler) acceptImage(r *http.Request) (path string, ok bool, err error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", false, nil
		}
		return "", false, &upload.Error{
			Op:  "read multipart file",
			Err: err,
		}
	}
	defer func(file multipart.File) {
		closeErr := file.Close()
		if closeErr != nil {
			log.Errorf("close uploaded file: %s", closeErr)
		}
	}(file)
	path, err = h.Uploads.Accept(file, "image", header.Filename)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}
