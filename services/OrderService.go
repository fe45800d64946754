package services

import (
	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
)

// OrderService optionally verifies that the ids an order names exist.
// The checks are off by default: the API has historically accepted orders
// that reference nonexistent rows, and callers depend on that.
type OrderService struct {
	or         repository.OrderRepository
	ur         repository.UserRepository
	pr         repository.ProductRepository
	vr         repository.VoucherRepository
	payr       repository.PaymentRepository
	dr         repository.DeliveryRepository
	strictRefs bool
}

type OrderServiceParams struct {
	OrderRepo    repository.OrderRepository
	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	VoucherRepo  repository.VoucherRepository
	PaymentRepo  repository.PaymentRepository
	DeliveryRepo repository.DeliveryRepository
	StrictRefs   bool
}

func NewOrderService(params OrderServiceParams) OrderService {
	return OrderService{
		or:         params.OrderRepo,
		ur:         params.UserRepo,
		pr:         params.ProductRepo,
		vr:         params.VoucherRepo,
		payr:       params.PaymentRepo,
		dr:         params.DeliveryRepo,
		strictRefs: params.StrictRefs,
	}
}

func (os *OrderService) ListOrders(p repository.ListParams) (page entities.Page, err error) {
	orders, total, e := os.or.ListOrders(p)
	if e != nil {
		err = e
		return
	}
	page = entities.NewPage(orders, total, p.PageNumber(), repository.PageSize)
	return
}

func (os *OrderService) GetOrder(id int) (oModel models.Order_db, err error) {
	var ex bool
	oModel, ex, err = os.or.GetOrderById(id)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (os *OrderService) CreateOrder(req models.OrderRequest) (oModel models.Order_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	if err = os.checkRefs(req); err != nil {
		return
	}
	oModel, err = os.or.CreateOrder(req)
	return
}

func (os *OrderService) UpdateOrder(id int, req models.OrderRequest) (oModel models.Order_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	if err = os.checkRefs(req); err != nil {
		return
	}
	var ex bool
	oModel, ex, err = os.or.UpdateOrderById(id, req)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (os *OrderService) DeleteOrder(id int) (err error) {
	deleted, e := os.or.DeleteOrderById(id)
	if e != nil {
		err = e
		return
	}
	if !deleted {
		err = models.ErrNotFound
	}
	return
}

func (os *OrderService) checkRefs(req models.OrderRequest) (err error) {
	if !os.strictRefs {
		return
	}
	errs := models.ValidationErrors{}

	_, ex, e := os.ur.GetUserById(*req.UserId)
	if e != nil {
		return e
	}
	if !ex {
		errs["user_id"] = "The selected user_id is invalid."
	}

	_, ex, e = os.pr.GetProductById(*req.ProductId)
	if e != nil {
		return e
	}
	if !ex {
		errs["product_id"] = "The selected product_id is invalid."
	}

	if req.VoucherId != nil {
		_, ex, e = os.vr.GetVoucherById(*req.VoucherId)
		if e != nil {
			return e
		}
		if !ex {
			errs["voucher_id"] = "The selected voucher_id is invalid."
		}
	}
	if req.PaymentId != nil {
		_, ex, e = os.payr.GetPaymentById(*req.PaymentId)
		if e != nil {
			return e
		}
		if !ex {
			errs["payment_id"] = "The selected payment_id is invalid."
		}
	}
	if req.DeliveryId != nil {
		_, ex, e = os.dr.GetDeliveryById(*req.DeliveryId)
		if e != nil {
			return e
		}
		if !ex {
			errs["delivery_id"] = "The selected delivery_id is invalid."
		}
	}

	if len(errs) > 0 {
		err = errs
	}
	return
}
