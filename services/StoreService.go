package services

import (
	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
)

type StoreService struct {
	sr repository.StoreRepository
}

func NewStoreService(sRepo repository.StoreRepository) StoreService {
	return StoreService{
		sr: sRepo,
	}
}

func (ss *StoreService) ListStores(p repository.ListParams) (page entities.Page, err error) {
	stores, total, e := ss.sr.ListStores(p)
	if e != nil {
		err = e
		return
	}
	page = entities.NewPage(stores, total, p.PageNumber(), repository.PageSize)
	return
}

func (ss *StoreService) GetStore(id int) (sModel models.Store_db, err error) {
	var ex bool
	sModel, ex, err = ss.sr.GetStoreById(id)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (ss *StoreService) CreateStore(req models.StoreRequest) (sModel models.Store_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	sModel, err = ss.sr.CreateStore(req)
	return
}

func (ss *StoreService) UpdateStore(id int, req models.StoreRequest) (sModel models.Store_db, err error) {
	if verrs := req.ValidateReplace(); verrs != nil {
		err = verrs
		return
	}
	var ex bool
	sModel, ex, err = ss.sr.UpdateStoreById(id, req)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (ss *StoreService) DeleteStore(id int) (sModel models.Store_db, err error) {
	var ex bool
	sModel, ex, err = ss.sr.GetStoreById(id)
	if err != nil {
		return
	}
	if !ex {
		err = models.ErrNotFound
		return
	}
	_, err = ss.sr.DeleteStoreById(id)
	return
}
