package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres/cartrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/userrepo"
	"restaurant/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreatePurgeAbandonedCartsCommandHandler(),
		time.Duration(configs.CartRetentionHours)*time.Hour,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		CartRetentionHours: goDotEnvIntVariable("CART_RETENTION_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.UserRoleDTO{},
		&menurepo.CategoryDTO{},
		&menurepo.MenuItemDTO{},
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(httpadapter.Handlers{
		AddCartItem:        app.CreateAddCartItemCommandHandler(),
		ClearCart:          app.CreateClearCartCommandHandler(),
		CreateOrder:        app.CreateCreateOrderCommandHandler(),
		ReplaceOrder:       app.CreateReplaceOrderCommandHandler(),
		PartialUpdateOrder: app.CreatePartialUpdateOrderCommandHandler(),
		DeleteOrder:        app.CreateDeleteOrderCommandHandler(),
		AddGroupMember:     app.CreateAddGroupMemberCommandHandler(),
		RemoveGroupMember:  app.CreateRemoveGroupMemberCommandHandler(),
		CreateCategory:     app.CreateCreateCategoryCommandHandler(),
		CreateMenuItem:     app.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:     app.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:     app.CreateDeleteMenuItemCommandHandler(),
		ListOrders:         app.CreateListOrdersQueryHandler(),
		GetOrder:           app.CreateGetOrderQueryHandler(),
		ListCartItems:      app.CreateListCartItemsQueryHandler(),
		ListMenuItems:      app.CreateListMenuItemsQueryHandler(),
		GetMenuItem:        app.CreateGetMenuItemQueryHandler(),
		ListCategories:     app.CreateListCategoriesQueryHandler(),
		ListGroupMembers:   app.CreateListGroupMembersQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
