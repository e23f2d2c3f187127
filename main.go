package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"slate/database"
	"slate/handlers"
	"slate/middleware"
)

func main() {
	godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	store := connectStore()
	defer store.Close()

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	r.GET("/", handlers.Root)
	r.GET("/api/hello", handlers.Hello)
	r.GET("/test", handlers.TestDatabase(store))

	r.POST("/api/clients", handlers.CreateClient(store))
	r.GET("/api/clients", handlers.ListClients(store))
	r.POST("/api/employees", handlers.CreateEmployee(store))
	r.GET("/api/employees", handlers.ListEmployees(store))
	r.POST("/api/projects", handlers.CreateProject(store))
	r.GET("/api/projects", handlers.ListProjects(store))
	r.POST("/api/tasks", handlers.CreateTask(store))
	r.GET("/api/tasks", handlers.ListTasks(store))
	r.POST("/api/invoices", handlers.CreateInvoice(store))
	r.GET("/api/invoices", handlers.ListInvoices(store))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logrus.WithField("port", port).Info("Server starting")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Server failed")
	}
}

// connectStore builds the shared store from the environment. A missing or
// unreachable DATABASE_URL does not abort startup: the API runs against a
// disconnected store and the diagnostic endpoint reports the condition.
func connectStore() *database.Store {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logrus.Warn("DATABASE_URL not set, running without a database")
		return database.Disconnected()
	}

	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		databaseName = "slate"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := database.Connect(ctx, databaseURL, databaseName)
	if err != nil {
		logrus.WithError(err).Warn("Database connection failed, running without a database")
		return database.Disconnected()
	}
	return store
}
