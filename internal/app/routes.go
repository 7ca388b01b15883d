package app

import (
	"github.com/gorilla/mux"
	"github.com/yeargrid/yeargrid/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Birthdays
	r.HandleFunc("/api/birthday", deps.BirthdayHandler.ListBirthdays).Methods("GET")
	r.HandleFunc("/api/birthday", deps.BirthdayHandler.CreateBirthday).Methods("POST")
	r.HandleFunc("/api/birthday/seed", deps.BirthdayHandler.SeedBirthdays).Methods("POST")
	r.HandleFunc("/api/birthday/calendar.ics", deps.BirthdayHandler.CalendarFeed(deps.Clock)).Methods("GET")
	r.HandleFunc("/api/birthday/{name}", deps.BirthdayHandler.DeleteBirthday).Methods("DELETE")

	// Wallpaper
	r.HandleFunc("/wallpaper", deps.WallpaperHandler.GetWallpaper).Methods("GET")
}
