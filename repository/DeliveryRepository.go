package repository

import (
	"database/sql"
	"errors"
	"log"

	"marketstore/models"
)

type DeliveryRepository interface {
	ListDeliveries(p ListParams) (deliveries []models.Delivery_db, total int, err error)
	GetDeliveryById(id int) (dModel models.Delivery_db, exists bool, err error)
	CreateDelivery(req models.DeliveryRequest) (dModel models.Delivery_db, err error)
	UpdateDeliveryById(id int, req models.DeliveryRequest) (dModel models.Delivery_db, exists bool, err error)
	DeleteDeliveryById(id int) (deleted bool, err error)
}

type DeliveryRepo struct {
	db *sql.DB
}

func NewDeliveryRepository(conn *sql.DB) (DeliveryRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &DeliveryRepo{
		db: conn,
	}, nil
}

var deliveryList = listQuery{
	table:   "deliveries",
	columns: "id, order_type, extra_protection, shipping_price",
	search:  []string{"order_type", "shipping_price"},
	orderBy: "id DESC",
}

func (d *DeliveryRepo) ListDeliveries(p ListParams) (deliveries []models.Delivery_db, total int, err error) {
	total, err = deliveryList.count(d.db, p)
	if err != nil {
		log.Printf("ListDeliveries[1]: %v", err)
		err = models.ErrServerError
		return
	}
	rows, e := deliveryList.rows(d.db, p)
	if e != nil {
		log.Printf("ListDeliveries[2]: %v", e)
		err = models.ErrServerError
		return
	}
	defer rows.Close()

	deliveries = []models.Delivery_db{}
	for rows.Next() {
		var delivery models.Delivery_db
		err = rows.Scan(&delivery.Id, &delivery.OrderType, &delivery.ExtraProtection, &delivery.ShippingPrice)
		if err != nil {
			log.Printf("ListDeliveries[3]: %v", err)
			err = models.ErrServerError
			return
		}
		deliveries = append(deliveries, delivery)
	}
	return
}

func (d *DeliveryRepo) GetDeliveryById(id int) (dModel models.Delivery_db, exists bool, err error) {
	row := d.db.QueryRow("SELECT id, order_type, extra_protection, shipping_price FROM deliveries WHERE id = $1", id)
	err = row.Scan(&dModel.Id, &dModel.OrderType, &dModel.ExtraProtection, &dModel.ShippingPrice)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetDeliveryById: %v", err)
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (d *DeliveryRepo) CreateDelivery(req models.DeliveryRequest) (dModel models.Delivery_db, err error) {
	err = d.db.QueryRow("INSERT INTO deliveries (order_type, extra_protection, shipping_price) VALUES ($1, $2, $3) RETURNING id",
		req.OrderType, *req.ExtraProtection, *req.ShippingPrice).Scan(&dModel.Id)
	if err != nil {
		log.Printf("CreateDelivery: %v", err)
		err = models.ErrServerError
		return
	}
	dModel.OrderType = req.OrderType
	dModel.ExtraProtection = *req.ExtraProtection
	dModel.ShippingPrice = *req.ShippingPrice
	return
}

func (d *DeliveryRepo) UpdateDeliveryById(id int, req models.DeliveryRequest) (dModel models.Delivery_db, exists bool, err error) {
	res, e := d.db.Exec("UPDATE deliveries SET order_type = $1, extra_protection = $2, shipping_price = $3 WHERE id = $4",
		req.OrderType, *req.ExtraProtection, *req.ShippingPrice, id)
	if e != nil {
		log.Printf("UpdateDeliveryById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return
	}
	return d.GetDeliveryById(id)
}

func (d *DeliveryRepo) DeleteDeliveryById(id int) (deleted bool, err error) {
	res, e := d.db.Exec("DELETE FROM deliveries WHERE id = $1", id)
	if e != nil {
		log.Printf("DeleteDeliveryById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	deleted = affected > 0
	return
}
