package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"OptiCare360/cache"
	"OptiCare360/config"
	"OptiCare360/gateway"
	"OptiCare360/jobs"
	"OptiCare360/routes"
	"OptiCare360/services"
	"OptiCare360/session"
	"OptiCare360/store"
	"OptiCare360/syncer"
)

var (
	runServer = func(r *gin.Engine, addr string) error { return r.Run(addr) }
	isTest    = false
)

func main() {
	run()
}

func run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("Error loading configuration:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalln("Error connecting to the document store:", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("Error disconnecting from the document store:", err)
		}
	}()
	db := client.Database(cfg.MongoDatabase)

	provider := session.New(cfg.SessionToken, cfg.SessionSecret)
	provider.Bootstrap()

	recordStore := store.New()
	manager := syncer.New(db, cfg.AppInstanceID, recordStore, nil)
	manager.Start(ctx, provider.Ready())
	defer manager.Stop()

	gw := gateway.New(db, cfg.AppInstanceID, nil)

	dashboard := services.DashboardService{
		Store: recordStore,
		Cache: cache.New(cfg.RedisAddr),
	}
	dashboard.InvalidateOnChange(ctx)

	if !isTest {
		jobs.StartDailyScheduler(recordStore)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r, routes.Deps{
		Session:   provider,
		Patients:  services.PatientService{Store: recordStore, Gateway: gw},
		Exams:     services.ExamService{Store: recordStore, Gateway: gw},
		Products:  services.ProductService{Store: recordStore, Gateway: gw},
		Orders:    services.OrderService{Store: recordStore, Gateway: gw},
		Dashboard: dashboard,
	})

	if err := runServer(r, fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalln("Error from the web server:", err)
	}
}
