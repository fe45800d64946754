package services

import (
	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
)

type CategoryService struct {
	cr repository.CategoryRepository
}

func NewCategoryService(cRepo repository.CategoryRepository) CategoryService {
	return CategoryService{
		cr: cRepo,
	}
}

func (cs *CategoryService) ListCategories(p repository.ListParams) (page entities.Page, err error) {
	cats, total, e := cs.cr.ListCategories(p)
	if e != nil {
		err = e
		return
	}
	page = entities.NewPage(cats, total, p.PageNumber(), repository.PageSize)
	return
}

func (cs *CategoryService) GetCategory(id int) (cModel models.Category_db, err error) {
	var ex bool
	cModel, ex, err = cs.cr.GetCategoryById(id)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (cs *CategoryService) CreateCategory(req models.CategoryRequest) (cModel models.Category_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	cModel, err = cs.cr.CreateCategory(req)
	return
}

func (cs *CategoryService) UpdateCategory(id int, req models.CategoryRequest) (cModel models.Category_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	var ex bool
	cModel, ex, err = cs.cr.UpdateCategoryById(id, req)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (cs *CategoryService) DeleteCategory(id int) (err error) {
	deleted, e := cs.cr.DeleteCategoryById(id)
	if e != nil {
		err = e
		return
	}
	if !deleted {
		err = models.ErrNotFound
	}
	return
}
