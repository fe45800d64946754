package services

import (
	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
)

type ProductService struct {
	pr repository.ProductRepository
}

func NewProductService(pRepo repository.ProductRepository) ProductService {
	return ProductService{
		pr: pRepo,
	}
}

func (ps *ProductService) ListProducts(p repository.ListParams, category, brand string) (page entities.Page, err error) {
	prods, total, e := ps.pr.ListProducts(p, category, brand)
	if e != nil {
		err = e
		return
	}
	page = entities.NewPage(prods, total, p.PageNumber(), repository.PageSize)
	return
}

func (ps *ProductService) GetProduct(id int) (pModel models.Product_db, err error) {
	var ex bool
	pModel, ex, err = ps.pr.GetProductById(id)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (ps *ProductService) CreateProduct(req models.ProductRequest) (pModel models.Product_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	pModel, err = ps.pr.CreateProduct(req)
	return
}

func (ps *ProductService) UpdateProduct(id int, req models.ProductRequest) (pModel models.Product_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	var ex bool
	pModel, ex, err = ps.pr.UpdateProductById(id, req)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (ps *ProductService) DeleteProduct(id int) (err error) {
	deleted, e := ps.pr.DeleteProductById(id)
	if e != nil {
		err = e
		return
	}
	if !deleted {
		err = models.ErrNotFound
	}
	return
}
