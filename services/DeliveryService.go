package services

import (
	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
)

type DeliveryService struct {
	dr repository.DeliveryRepository
}

func NewDeliveryService(dRepo repository.DeliveryRepository) DeliveryService {
	return DeliveryService{
		dr: dRepo,
	}
}

func (ds *DeliveryService) ListDeliveries(p repository.ListParams) (page entities.Page, err error) {
	deliveries, total, e := ds.dr.ListDeliveries(p)
	if e != nil {
		err = e
		return
	}
	page = entities.NewPage(deliveries, total, p.PageNumber(), repository.PageSize)
	return
}

func (ds *DeliveryService) GetDelivery(id int) (dModel models.Delivery_db, err error) {
	var ex bool
	dModel, ex, err = ds.dr.GetDeliveryById(id)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (ds *DeliveryService) CreateDelivery(req models.DeliveryRequest) (dModel models.Delivery_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	dModel, err = ds.dr.CreateDelivery(req)
	return
}

func (ds *DeliveryService) UpdateDelivery(id int, req models.DeliveryRequest) (dModel models.Delivery_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	var ex bool
	dModel, ex, err = ds.dr.UpdateDeliveryById(id, req)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (ds *DeliveryService) DeleteDelivery(id int) (err error) {
	deleted, e := ds.dr.DeleteDeliveryById(id)
	if e != nil {
		err = e
		return
	}
	if !deleted {
		err = models.ErrNotFound
	}
	return
}
