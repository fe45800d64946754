package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"marketstore/config"
	"marketstore/database"
	"marketstore/handlers"
	"marketstore/repository"
	"marketstore/services"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	if err := database.Migrate(db, "postgres"); err != nil {
		panic(err)
	}
	log.Printf("db connected")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: "",
		DB:       0,
	})
	defer rdb.Close()
	ctx, cncl := context.WithTimeout(context.Background(), 5*time.Second)
	defer cncl()
	if status := rdb.Ping(ctx); status.Err() != nil {
		panic("redis is not working: " + status.Err().Error())
	}
	log.Printf("redis connected")

	uR, err := repository.NewUserRepository(db)
	if err != nil {
		panic(err)
	}
	tR, err := repository.NewTokenRepository(rdb, context.Background())
	if err != nil {
		panic(err)
	}
	pR, _ := repository.NewProductRepository(db)
	cR, _ := repository.NewCategoryRepository(db)
	bR, _ := repository.NewBrandRepository(db)
	sR, _ := repository.NewStoreRepository(db)
	payR, _ := repository.NewPaymentRepository(db)
	vR, _ := repository.NewVoucherRepository(db)
	dR, _ := repository.NewDeliveryRepository(db)
	oR, _ := repository.NewOrderRepository(db)

	us := services.NewUserService(uR, tR)
	if err := us.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		panic(err)
	}

	hp := handlers.HandlerParams{
		UsrService: us,
		PrdService: services.NewProductService(pR),
		CatService: services.NewCategoryService(cR),
		BrdService: services.NewBrandService(bR),
		StrService: services.NewStoreService(sR),
		PayService: services.NewPaymentService(payR),
		VchService: services.NewVoucherService(vR),
		DlvService: services.NewDeliveryService(dR),
		OrdService: services.NewOrderService(services.OrderServiceParams{
			OrderRepo:    oR,
			UserRepo:     uR,
			ProductRepo:  pR,
			VoucherRepo:  vR,
			PaymentRepo:  payR,
			DeliveryRepo: dR,
			StrictRefs:   cfg.OrderStrictRefs,
		}),
	}
	ha := handlers.NewHandler(hp)
	router := handlers.NewRouter(ha)

	log.Printf("starting server on :%s", cfg.ServerPort)
	http.ListenAndServe(":"+cfg.ServerPort, router)
}
