package services

import (
	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
)

type PaymentService struct {
	pr repository.PaymentRepository
}

func NewPaymentService(pRepo repository.PaymentRepository) PaymentService {
	return PaymentService{
		pr: pRepo,
	}
}

func (ps *PaymentService) ListPayments(p repository.ListParams) (page entities.Page, err error) {
	payments, total, e := ps.pr.ListPayments(p)
	if e != nil {
		err = e
		return
	}
	page = entities.NewPage(payments, total, p.PageNumber(), repository.PageSize)
	return
}

func (ps *PaymentService) GetPayment(id int) (pModel models.Payment_db, err error) {
	var ex bool
	pModel, ex, err = ps.pr.GetPaymentById(id)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (ps *PaymentService) CreatePayment(req models.PaymentRequest) (pModel models.Payment_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	pModel, err = ps.pr.CreatePayment(req)
	return
}

func (ps *PaymentService) UpdatePayment(id int, req models.PaymentRequest) (pModel models.Payment_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	var ex bool
	pModel, ex, err = ps.pr.UpdatePaymentById(id, req)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (ps *PaymentService) DeletePayment(id int) (err error) {
	deleted, e := ps.pr.DeletePaymentById(id)
	if e != nil {
		err = e
		return
	}
	if !deleted {
		err = models.ErrNotFound
	}
	return
}
