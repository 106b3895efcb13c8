package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ventara/stayhub/internal/app"
	"github.com/ventara/stayhub/internal/domain"
)

// AdminService manages the collaborator records (users and places) the
// booking engine references.
type AdminService interface {
	CreateUser(ctx context.Context, in app.CreateUserInput) (domain.User, error)
	CreatePlace(ctx context.Context, in app.CreatePlaceInput) (domain.Place, error)
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// HandleAdminCreateUser returns the POST /admin/users handler.
func HandleAdminCreateUser(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		user, err := svc.CreateUser(r.Context(), app.CreateUserInput{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, userResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
	}
}

type createPlaceRequest struct {
	HostID       string `json:"host_id"`
	Name         string `json:"name"`
	NightlyPrice int64  `json:"nightly_price"`
	MaxGuests    int    `json:"max_guests"`
}

type placeResponse struct {
	ID           string    `json:"id"`
	HostID       string    `json:"host_id"`
	Name         string    `json:"name"`
	NightlyPrice int64     `json:"nightly_price"`
	MaxGuests    int       `json:"max_guests"`
	CreatedAt    time.Time `json:"created_at"`
}

func toPlaceResponse(p domain.Place) placeResponse {
	return placeResponse{
		ID:           p.ID,
		HostID:       p.HostID,
		Name:         p.Name,
		NightlyPrice: p.NightlyPrice,
		MaxGuests:    p.MaxGuests,
		CreatedAt:    p.CreatedAt,
	}
}

// HandleAdminCreatePlace returns the POST /admin/places handler.
func HandleAdminCreatePlace(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlaceRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		place, err := svc.CreatePlace(r.Context(), app.CreatePlaceInput{
			HostID:       req.HostID,
			Name:         req.Name,
			NightlyPrice: req.NightlyPrice,
			MaxGuests:    req.MaxGuests,
		})
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPlaceResponse(place))
	}
}

// HandleAdminListPlaces returns the GET /admin/places handler.
func HandleAdminListPlaces(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		places, err := svc.ListPlaces(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}

		out := make([]placeResponse, 0, len(places))
		for _, p := range places {
			out = append(out, toPlaceResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}
