package services

import (
	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
)

type BrandService struct {
	br repository.BrandRepository
}

func NewBrandService(bRepo repository.BrandRepository) BrandService {
	return BrandService{
		br: bRepo,
	}
}

func (bs *BrandService) ListBrands(p repository.ListParams) (page entities.Page, err error) {
	brands, total, e := bs.br.ListBrands(p)
	if e != nil {
		err = e
		return
	}
	page = entities.NewPage(brands, total, p.PageNumber(), repository.PageSize)
	return
}

func (bs *BrandService) GetBrand(id int) (bModel models.Brand_db, err error) {
	var ex bool
	bModel, ex, err = bs.br.GetBrandById(id)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (bs *BrandService) CreateBrand(req models.BrandRequest) (bModel models.Brand_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	err = bs.checkUniqueEmail(req.Email, 0)
	if err != nil {
		return
	}
	bModel, err = bs.br.CreateBrand(req)
	return
}

func (bs *BrandService) UpdateBrand(id int, req models.BrandRequest) (bModel models.Brand_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	err = bs.checkUniqueEmail(req.Email, id)
	if err != nil {
		return
	}
	var ex bool
	bModel, ex, err = bs.br.UpdateBrandById(id, req)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (bs *BrandService) DeleteBrand(id int) (err error) {
	deleted, e := bs.br.DeleteBrandById(id)
	if e != nil {
		err = e
		return
	}
	if !deleted {
		err = models.ErrNotFound
	}
	return
}

// checkUniqueEmail rejects an email already held by a different brand.
func (bs *BrandService) checkUniqueEmail(email string, selfId int) (err error) {
	other, ex, e := bs.br.GetBrandByEmail(email)
	if e != nil {
		err = e
		return
	}
	if ex && other.Id != selfId {
		err = models.ValidationErrors{"brand_email": "The brand_email has already been taken."}
	}
	return
}
