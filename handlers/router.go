package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(ha *Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(ha.ErrorHandleMiddleware, ha.LogRequestMiddleware)

	router.HandleFunc("/login", ha.Login).Methods("POST")
	router.HandleFunc("/register", ha.Register).Methods("POST")

	subAuth := router.NewRoute().Subrouter()
	subAuth.Use(ha.AuthMiddleware)
	subAdmin := router.NewRoute().Subrouter()
	subAdmin.Use(ha.AdminAuthMiddleware)

	subAuth.HandleFunc("/logout", ha.Logout).Methods("POST")

	subAuth.HandleFunc("/products", ha.GetProducts).Methods("GET")
	subAuth.HandleFunc("/products", ha.CreateProduct).Methods("POST")
	subAuth.HandleFunc("/products/{id:[0-9]+}", ha.GetProduct).Methods("GET")
	subAuth.HandleFunc("/products/{id:[0-9]+}", ha.UpdateProduct).Methods("PUT")
	subAuth.HandleFunc("/products/{id:[0-9]+}", ha.DeleteProduct).Methods("DELETE")

	subAuth.HandleFunc("/categories", ha.GetCategories).Methods("GET")
	subAuth.HandleFunc("/categories", ha.CreateCategory).Methods("POST")
	subAuth.HandleFunc("/categories/{id:[0-9]+}", ha.GetCategory).Methods("GET")
	subAuth.HandleFunc("/categories/{id:[0-9]+}", ha.UpdateCategory).Methods("PUT")
	subAuth.HandleFunc("/categories/{id:[0-9]+}", ha.DeleteCategory).Methods("DELETE")

	subAuth.HandleFunc("/brands", ha.GetBrands).Methods("GET")
	subAuth.HandleFunc("/brands", ha.CreateBrand).Methods("POST")
	subAuth.HandleFunc("/brands/{id:[0-9]+}", ha.GetBrand).Methods("GET")
	subAuth.HandleFunc("/brands/{id:[0-9]+}", ha.UpdateBrand).Methods("PUT")
	subAuth.HandleFunc("/brands/{id:[0-9]+}", ha.DeleteBrand).Methods("DELETE")

	subAuth.HandleFunc("/payments", ha.GetPayments).Methods("GET")
	subAuth.HandleFunc("/payments", ha.CreatePayment).Methods("POST")
	subAuth.HandleFunc("/payments/{id:[0-9]+}", ha.GetPayment).Methods("GET")
	subAuth.HandleFunc("/payments/{id:[0-9]+}", ha.UpdatePayment).Methods("PUT")
	subAuth.HandleFunc("/payments/{id:[0-9]+}", ha.DeletePayment).Methods("DELETE")

	subAuth.HandleFunc("/vouchers", ha.GetVouchers).Methods("GET")
	subAuth.HandleFunc("/vouchers", ha.CreateVoucher).Methods("POST")
	subAuth.HandleFunc("/vouchers/{id:[0-9]+}", ha.GetVoucher).Methods("GET")
	subAuth.HandleFunc("/vouchers/{id:[0-9]+}", ha.UpdateVoucher).Methods("PUT")
	subAuth.HandleFunc("/vouchers/{id:[0-9]+}", ha.DeleteVoucher).Methods("DELETE")

	subAuth.HandleFunc("/deliveries", ha.GetDeliveries).Methods("GET")
	subAuth.HandleFunc("/deliveries", ha.CreateDelivery).Methods("POST")
	subAuth.HandleFunc("/deliveries/{id:[0-9]+}", ha.GetDelivery).Methods("GET")
	subAuth.HandleFunc("/deliveries/{id:[0-9]+}", ha.UpdateDelivery).Methods("PUT")
	subAuth.HandleFunc("/deliveries/{id:[0-9]+}", ha.DeleteDelivery).Methods("DELETE")

	subAuth.HandleFunc("/orders", ha.GetOrders).Methods("GET")
	subAuth.HandleFunc("/orders", ha.CreateOrder).Methods("POST")
	subAuth.HandleFunc("/orders/{id:[0-9]+}", ha.GetOrder).Methods("GET")
	subAuth.HandleFunc("/orders/{id:[0-9]+}", ha.UpdateOrder).Methods("PUT")
	subAuth.HandleFunc("/orders/{id:[0-9]+}", ha.DeleteOrder).Methods("DELETE")

	// store reads need a login, store writes need the admin role
	subAuth.HandleFunc("/stores", ha.GetStores).Methods("GET")
	subAuth.HandleFunc("/stores/{id:[0-9]+}", ha.GetStore).Methods("GET")
	subAdmin.HandleFunc("/stores", ha.CreateStore).Methods("POST")
	subAdmin.HandleFunc("/stores/{id:[0-9]+}", ha.UpdateStore).Methods("PUT")
	subAdmin.HandleFunc("/stores/{id:[0-9]+}", ha.DeleteStore).Methods("DELETE")

	router.NotFoundHandler = http.HandlerFunc(ha.Fallback)
	router.MethodNotAllowedHandler = http.HandlerFunc(ha.Fallback)
	return router
}
