package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/urfave/cli"

	"github.com/shborse/Task-Manager/app/config"
	"github.com/shborse/Task-Manager/app/controllers"
	"github.com/shborse/Task-Manager/app/mirror"
	"github.com/shborse/Task-Manager/app/routes"
	"github.com/shborse/Task-Manager/app/services"
	"github.com/shborse/Task-Manager/app/store"
)

func main() {
	app := cli.NewApp()
	app.Name = "task-manager"
	app.Usage = "per-user task lists with undo/redo and notifications"
	app.Flags = config.Flags()
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg := config.FromContext(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	due, _ := cfg.DueDate()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional Neo4j mirror
	var m mirror.Mirror = mirror.Noop{}
	if cfg.Neo4j.Enabled() {
		driver, err := config.InitNeo4j(ctx, cfg.Neo4j)
		if err != nil {
			return err
		}
		m = mirror.NewNeo4jMirror(driver)
		log.Printf("mirroring task changes to %s", cfg.Neo4j.URI)
	}
	defer m.Close(context.Background())

	// Initialize the service layer
	users := store.NewRegistry(cfg.HistoryLimit)
	taskService := services.NewTaskService(users, m, services.Options{DefaultDue: due})
	notificationService := services.NewNotificationService(users, cfg.NotifyLimit, nil)

	// Initialize the controller layer
	taskController := controllers.NewTaskController(taskService)
	notificationController := controllers.NewNotificationController(notificationService)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, taskController, notificationController, cfg.StaticDir)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	fmt.Printf("Server is running on http://%s\n", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
