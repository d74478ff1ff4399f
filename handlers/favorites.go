package handlers

import (
	"fmt"
	"net/http"

	"github.com/juho05/wavedial/handlers/responses"
	"github.com/juho05/wavedial/util"
)

func (h *Handler) handleListFavourites(w http.ResponseWriter, r *http.Request) {
	list, err := h.Favorites.ListFor(r.Context(), principal(r).UserID)
	if err != nil {
		respondErr(w, fmt.Errorf("list favourites: %w", err))
		return
	}
	responses.EncodeOrLog(w, http.StatusOK, responses.Stations{
		Stations: util.Map(list, toStationResponse),
	})
}

func (h *Handler) handleAddFavourite(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		responses.EncodeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	stationID := r.PostFormValue("stationId")
	if stationID == "" {
		responses.EncodeError(w, http.StatusBadRequest, "missing parameter 'stationId'")
		return
	}

	err = h.Favorites.Add(r.Context(), principal(r).UserID, stationID)
	if err != nil {
		respondErr(w, fmt.Errorf("add favourite: %w", err))
		return
	}
	http.Redirect(w, r, "/favourites", http.StatusSeeOther)
}
