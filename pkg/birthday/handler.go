package birthday

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/yeargrid/yeargrid/internal/rest"
)

// Handler exposes the birthday collection over HTTP. Field validation lives
// here, at the write boundary; the resolver itself tolerates anything.
type Handler struct {
	service *Service
}

// BirthdayDTO is the wire shape of a birthday.
type BirthdayDTO struct {
	Name  string `json:"name"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Type  string `json:"type"`
	Year  int    `json:"year,omitempty"`
}

type collectionDTO struct {
	Birthdays []BirthdayDTO `json:"birthdays"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListBirthdays(w http.ResponseWriter, r *http.Request) {
	birthdays, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCollection(w, http.StatusOK, birthdays)
}

func (h *Handler) CreateBirthday(w http.ResponseWriter, r *http.Request) {
	var dto BirthdayDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, errResp := dtoToBirthday(dto)
	if errResp != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(errResp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	birthdays, err := h.service.Add(r.Context(), b)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCollection(w, http.StatusCreated, birthdays)
}

func (h *Handler) DeleteBirthday(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	birthdays, err := h.service.Remove(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "birthday not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCollection(w, http.StatusOK, birthdays)
}

func (h *Handler) SeedBirthdays(w http.ResponseWriter, r *http.Request) {
	birthdays, seeded, err := h.service.Seed(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !seeded {
		log.Debug("Seed requested but the store already has birthdays")
	}
	writeCollection(w, http.StatusOK, birthdays)
}

func dtoToBirthday(dto BirthdayDTO) (Birthday, *rest.ErrorResponse) {
	if dto.Name == "" || dto.Month == 0 || dto.Day == 0 || dto.Type == "" {
		return Birthday{}, &rest.ErrorResponse{
			Error:   "Missing required fields",
			Details: "name, month, day and type are required",
		}
	}
	if dto.Month < 1 || dto.Month > 12 {
		return Birthday{}, &rest.ErrorResponse{
			Error:   "Invalid month",
			Details: "month must be between 1 and 12",
		}
	}
	if dto.Day < 1 || dto.Day > 31 {
		return Birthday{}, &rest.ErrorResponse{
			Error:   "Invalid day",
			Details: "day must be between 1 and 31",
		}
	}
	category, err := ParseCategory(dto.Type)
	if err != nil {
		return Birthday{}, &rest.ErrorResponse{
			Error:   "Invalid type",
			Details: "type must be one of self, family, friend",
		}
	}
	return Birthday{
		Name:     dto.Name,
		Month:    dto.Month,
		Day:      dto.Day,
		Category: category,
		Year:     dto.Year,
	}, nil
}

func birthdayToDTO(b Birthday) BirthdayDTO {
	return BirthdayDTO{
		Name:  b.Name,
		Month: b.Month,
		Day:   b.Day,
		Type:  string(b.Category),
		Year:  b.Year,
	}
}

func writeCollection(w http.ResponseWriter, status int, birthdays []Birthday) {
	dtos := make([]BirthdayDTO, 0, len(birthdays))
	for _, b := range birthdays {
		dtos = append(dtos, birthdayToDTO(b))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(collectionDTO{Birthdays: dtos}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
