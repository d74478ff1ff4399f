package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/juho05/wavedial/handlers/responses"
	"github.com/juho05/wavedial/repos"
	"github.com/juho05/wavedial/stations"
	"github.com/juho05/wavedial/util"
)

func (h *Handler) handleListStations(w http.ResponseWriter, r *http.Request) {
	list, err := h.Stations.List(r.Context())
	if err != nil {
		respondErr(w, fmt.Errorf("list stations: %w", err))
		return
	}
	responses.EncodeOrLog(w, http.StatusOK, responses.Stations{
		Stations: util.Map(list, toStationResponse),
	})
}

func (h *Handler) handleGetStation(w http.ResponseWriter, r *http.Request) {
	station, err := h.Stations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, fmt.Errorf("get station: %w", err))
		return
	}
	responses.EncodeOrLog(w, http.StatusOK, toStationResponse(station))
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	list, err := h.Stations.Search(r.Context(), query)
	if err != nil {
		respondErr(w, fmt.Errorf("search stations: %w", err))
		return
	}
	responses.EncodeOrLog(w, http.StatusOK, responses.SearchResult{
		Query:    query,
		Stations: util.Map(list, toStationResponse),
	})
}

func (h *Handler) handleCreateStation(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		responses.EncodeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	// the upload must be on disk before any row is written
	imagePath, _, err := h.acceptImage(r)
	if err != nil {
		respondErr(w, fmt.Errorf("add station: %w", err))
		return
	}

	station, err := h.Stations.Create(r.Context(), stations.CreateParams{
		Name:        r.PostFormValue("name"),
		Language:    r.PostFormValue("language"),
		Description: r.PostFormValue("description"),
		StreamURL:   r.PostFormValue("streamUrl"),
		Image:       imagePath,
	})
	if err != nil {
		respondErr(w, fmt.Errorf("add station: %w", err))
		return
	}
	responses.EncodeOrLog(w, http.StatusCreated, responses.Created{
		ID: station.ID,
	})
}

func (h *Handler) handleUpdateStation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		responses.EncodeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	imagePath, hasImage, err := h.acceptImage(r)
	if err != nil {
		respondErr(w, fmt.Errorf("edit station: %w", err))
		return
	}
	// without a new upload the image column is left out of the update
	// entirely, so the stored reference survives the edit verbatim
	image := repos.NewOptionalEmpty[string]()
	if hasImage {
		image = repos.NewOptionalFull(imagePath)
	}

	err = h.Stations.Update(r.Context(), id, stations.UpdateParams{
		Name:        r.PostFormValue("name"),
		Language:    r.PostFormValue("language"),
		Description: r.PostFormValue("description"),
		StreamURL:   r.PostFormValue("streamUrl"),
		Image:       image,
	})
	if err != nil {
		respondErr(w, fmt.Errorf("edit station: %w", err))
		return
	}
	http.Redirect(w, r, "/stations/"+id, http.StatusSeeOther)
}

func (h *Handler) handleDeleteStation(w http.ResponseWriter, r *http.Request) {
	err := h.Stations.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, fmt.Errorf("delete station: %w", err))
		return
	}
	http.Redirect(w, r, "/stations", http.StatusSeeOther)
}
