package repository

import (
	"database/sql"
	"errors"
	"log"

	"marketstore/models"
)

type PaymentRepository interface {
	ListPayments(p ListParams) (payments []models.Payment_db, total int, err error)
	GetPaymentById(id int) (pModel models.Payment_db, exists bool, err error)
	CreatePayment(req models.PaymentRequest) (pModel models.Payment_db, err error)
	UpdatePaymentById(id int, req models.PaymentRequest) (pModel models.Payment_db, exists bool, err error)
	DeletePaymentById(id int) (deleted bool, err error)
}

type PaymentRepo struct {
	db *sql.DB
}

func NewPaymentRepository(conn *sql.DB) (PaymentRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &PaymentRepo{
		db: conn,
	}, nil
}

var paymentList = listQuery{
	table:   "payments",
	columns: "id, method, number_id",
	search:  []string{"method"},
	orderBy: "method ASC, id ASC",
}

func (p *PaymentRepo) ListPayments(params ListParams) (payments []models.Payment_db, total int, err error) {
	total, err = paymentList.count(p.db, params)
	if err != nil {
		log.Printf("ListPayments[1]: %v", err)
		err = models.ErrServerError
		return
	}
	rows, e := paymentList.rows(p.db, params)
	if e != nil {
		log.Printf("ListPayments[2]: %v", e)
		err = models.ErrServerError
		return
	}
	defer rows.Close()

	payments = []models.Payment_db{}
	for rows.Next() {
		var payment models.Payment_db
		err = rows.Scan(&payment.Id, &payment.Method, &payment.NumberId)
		if err != nil {
			log.Printf("ListPayments[3]: %v", err)
			err = models.ErrServerError
			return
		}
		payments = append(payments, payment)
	}
	return
}

func (p *PaymentRepo) GetPaymentById(id int) (pModel models.Payment_db, exists bool, err error) {
	row := p.db.QueryRow("SELECT id, method, number_id FROM payments WHERE id = $1", id)
	err = row.Scan(&pModel.Id, &pModel.Method, &pModel.NumberId)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetPaymentById: %v", err)
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (p *PaymentRepo) CreatePayment(req models.PaymentRequest) (pModel models.Payment_db, err error) {
	err = p.db.QueryRow("INSERT INTO payments (method, number_id) VALUES ($1, $2) RETURNING id",
		req.Method, req.NumberId).Scan(&pModel.Id)
	if err != nil {
		log.Printf("CreatePayment: %v", err)
		err = models.ErrServerError
		return
	}
	pModel.Method = req.Method
	pModel.NumberId = req.NumberId
	return
}

func (p *PaymentRepo) UpdatePaymentById(id int, req models.PaymentRequest) (pModel models.Payment_db, exists bool, err error) {
	res, e := p.db.Exec("UPDATE payments SET method = $1, number_id = $2 WHERE id = $3",
		req.Method, req.NumberId, id)
	if e != nil {
		log.Printf("UpdatePaymentById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return
	}
	return p.GetPaymentById(id)
}

func (p *PaymentRepo) DeletePaymentById(id int) (deleted bool, err error) {
	res, e := p.db.Exec("DELETE FROM payments WHERE id = $1", id)
	if e != nil {
		log.Printf("DeletePaymentById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	deleted = affected > 0
	return
}
