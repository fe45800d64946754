package handlers

import (
	"net/http"
	"strconv"

	"marketstore/repository"
	"marketstore/services"

	"github.com/gorilla/mux"
)

type Handler struct {
	us  services.UserService
	ps  services.ProductService
	cs  services.CategoryService
	bs  services.BrandService
	ss  services.StoreService
	pys services.PaymentService
	vs  services.VoucherService
	ds  services.DeliveryService
	ors services.OrderService
}

type HandlerParams struct {
	UsrService services.UserService
	PrdService services.ProductService
	CatService services.CategoryService
	BrdService services.BrandService
	StrService services.StoreService
	PayService services.PaymentService
	VchService services.VoucherService
	DlvService services.DeliveryService
	OrdService services.OrderService
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		us:  params.UsrService,
		ps:  params.PrdService,
		cs:  params.CatService,
		bs:  params.BrdService,
		ss:  params.StrService,
		pys: params.PayService,
		vs:  params.VchService,
		ds:  params.DlvService,
		ors: params.OrdService,
	}
}

func pathId(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars["id"])
}

func listParams(r *http.Request) repository.ListParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	return repository.ListParams{
		Keyword: q.Get("keyword"),
		Page:    page,
	}
}
