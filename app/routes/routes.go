package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shborse/Task-Manager/app/controllers"
	"github.com/shborse/Task-Manager/app/middleware"
)

// RegisterRoutes sets up all routes for the application. A non-empty
// staticDir is served at / for the browser client.
func RegisterRoutes(router *mux.Router, tasks *controllers.TaskController, notifications *controllers.NotificationController, staticDir string) {
	router.Use(middleware.Logging)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tasks", tasks.GetTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", tasks.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/edit", tasks.EditTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/delete", tasks.DeleteTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/search", tasks.SearchTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks/filter", tasks.FilterTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks/export", tasks.ExportTasks).Methods(http.MethodGet)
	api.HandleFunc("/undo", tasks.Undo).Methods(http.MethodPost)
	api.HandleFunc("/redo", tasks.Redo).Methods(http.MethodPost)
	api.HandleFunc("/notifications", notifications.GetNotifications).Methods(http.MethodGet)
	api.HandleFunc("/users", tasks.GetUsers).Methods(http.MethodGet)
	api.HandleFunc("/manager/tasks", tasks.GetAllTasks).Methods(http.MethodGet)
	api.HandleFunc("/analytics", tasks.GetAnalytics).Methods(http.MethodGet)

	if staticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir))).Methods(http.MethodGet)
	}
}
