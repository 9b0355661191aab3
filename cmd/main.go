package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/handlers"
	"github.com/ukydev/car-maintenance/internal/schedule"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables")
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Info("Connected to MongoDB successfully")

	store := db.NewStore(client, db.DatabaseName())
	provider := schedule.NewHTTPProvider()

	vehicleHandler := handlers.NewVehicleHandler(store.Vehicles, store)
	taskHandler := handlers.NewTaskHandler(store.Tasks, store.Vehicles)
	historyHandler := handlers.NewHistoryHandler(store.Tasks)
	settingsHandler := handlers.NewSettingsHandler(store.Settings)
	backupHandler := handlers.NewBackupHandler(store.Vehicles, store.Tasks, store.Settings, store)
	recommendationHandler := handlers.NewRecommendationHandler(store.Vehicles, provider)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/vehicles", vehicleHandler.Create)
	mux.HandleFunc("GET /api/vehicles", vehicleHandler.List)
	mux.HandleFunc("GET /api/vehicles/{id}", vehicleHandler.Get)
	mux.HandleFunc("PUT /api/vehicles/{id}", vehicleHandler.Update)
	mux.HandleFunc("DELETE /api/vehicles/{id}", vehicleHandler.Delete)

	mux.HandleFunc("POST /api/tasks", taskHandler.Create)
	mux.HandleFunc("GET /api/tasks", taskHandler.List)
	mux.HandleFunc("GET /api/tasks/upcoming", taskHandler.Upcoming)
	mux.HandleFunc("POST /api/tasks/{id}/complete", taskHandler.Complete)
	mux.HandleFunc("DELETE /api/tasks/{id}", taskHandler.Delete)

	mux.HandleFunc("GET /api/history", historyHandler.List)

	mux.HandleFunc("GET /api/settings", settingsHandler.Get)
	mux.HandleFunc("PUT /api/settings", settingsHandler.Update)
	mux.HandleFunc("GET /api/user", settingsHandler.GetUser)
	mux.HandleFunc("PUT /api/user", settingsHandler.UpdateUser)

	mux.HandleFunc("GET /api/export", backupHandler.Export)
	mux.HandleFunc("POST /api/import", backupHandler.Import)

	mux.HandleFunc("GET /api/recommendations/{id}", recommendationHandler.Get)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("HTTP server listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
