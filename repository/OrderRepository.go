package repository

import (
	"database/sql"
	"errors"
	"log"

	"marketstore/models"
)

type OrderRepository interface {
	ListOrders(p ListParams) (orders []models.Order_db, total int, err error)
	GetOrderById(id int) (oModel models.Order_db, exists bool, err error)
	CreateOrder(req models.OrderRequest) (oModel models.Order_db, err error)
	UpdateOrderById(id int, req models.OrderRequest) (oModel models.Order_db, exists bool, err error)
	DeleteOrderById(id int) (deleted bool, err error)
}

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepository(conn *sql.DB) (OrderRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &OrderRepo{
		db: conn,
	}, nil
}

var orderList = listQuery{
	table:   "orders",
	columns: "id, order_date, description, user_id, product_id, voucher_id, payment_id, delivery_id, destination_address",
	search:  []string{"description", "destination_address"},
	orderBy: "id DESC",
}

func (o *OrderRepo) ListOrders(p ListParams) (orders []models.Order_db, total int, err error) {
	total, err = orderList.count(o.db, p)
	if err != nil {
		log.Printf("ListOrders[1]: %v", err)
		err = models.ErrServerError
		return
	}
	rows, e := orderList.rows(o.db, p)
	if e != nil {
		log.Printf("ListOrders[2]: %v", e)
		err = models.ErrServerError
		return
	}
	defer rows.Close()

	orders = []models.Order_db{}
	for rows.Next() {
		order, scanErr := scanOrder(rows.Scan)
		if scanErr != nil {
			log.Printf("ListOrders[3]: %v", scanErr)
			err = models.ErrServerError
			return
		}
		orders = append(orders, order)
	}
	return
}

func (o *OrderRepo) GetOrderById(id int) (oModel models.Order_db, exists bool, err error) {
	row := o.db.QueryRow("SELECT id, order_date, description, user_id, product_id, voucher_id, payment_id, delivery_id, destination_address FROM orders WHERE id = $1", id)
	oModel, err = scanOrder(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetOrderById: %v", err)
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (o *OrderRepo) CreateOrder(req models.OrderRequest) (oModel models.Order_db, err error) {
	err = o.db.QueryRow("INSERT INTO orders (order_date, description, user_id, product_id, voucher_id, payment_id, delivery_id, destination_address) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id",
		req.OrderDate, req.Description, *req.UserId, *req.ProductId,
		req.VoucherId, req.PaymentId, req.DeliveryId, req.DestinationAddress).Scan(&oModel.Id)
	if err != nil {
		log.Printf("CreateOrder: %v", err)
		err = models.ErrServerError
		return
	}
	oModel.OrderDate = req.OrderDate
	oModel.Description = req.Description
	oModel.UserId = *req.UserId
	oModel.ProductId = *req.ProductId
	oModel.VoucherId = req.VoucherId
	oModel.PaymentId = req.PaymentId
	oModel.DeliveryId = req.DeliveryId
	oModel.DestinationAddress = req.DestinationAddress
	return
}

func (o *OrderRepo) UpdateOrderById(id int, req models.OrderRequest) (oModel models.Order_db, exists bool, err error) {
	res, e := o.db.Exec("UPDATE orders SET order_date = $1, description = $2, user_id = $3, product_id = $4, voucher_id = $5, payment_id = $6, delivery_id = $7, destination_address = $8 WHERE id = $9",
		req.OrderDate, req.Description, *req.UserId, *req.ProductId,
		req.VoucherId, req.PaymentId, req.DeliveryId, req.DestinationAddress, id)
	if e != nil {
		log.Printf("UpdateOrderById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return
	}
	return o.GetOrderById(id)
}

func (o *OrderRepo) DeleteOrderById(id int) (deleted bool, err error) {
	res, e := o.db.Exec("DELETE FROM orders WHERE id = $1", id)
	if e != nil {
		log.Printf("DeleteOrderById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	deleted = affected > 0
	return
}

func scanOrder(scan func(dest ...any) error) (order models.Order_db, err error) {
	var voucherId, paymentId, deliveryId sql.NullInt64
	err = scan(&order.Id, &order.OrderDate, &order.Description, &order.UserId, &order.ProductId,
		&voucherId, &paymentId, &deliveryId, &order.DestinationAddress)
	if err != nil {
		return
	}
	order.VoucherId = nullableInt(voucherId)
	order.PaymentId = nullableInt(paymentId)
	order.DeliveryId = nullableInt(deliveryId)
	return
}

func nullableInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	val := int(n.Int64)
	return &val
}
