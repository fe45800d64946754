package services

import (
	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
)

type VoucherService struct {
	vr repository.VoucherRepository
}

func NewVoucherService(vRepo repository.VoucherRepository) VoucherService {
	return VoucherService{
		vr: vRepo,
	}
}

func (vs *VoucherService) ListVouchers(p repository.ListParams) (page entities.Page, err error) {
	vouchers, total, e := vs.vr.ListVouchers(p)
	if e != nil {
		err = e
		return
	}
	page = entities.NewPage(vouchers, total, p.PageNumber(), repository.PageSize)
	return
}

func (vs *VoucherService) GetVoucher(id int) (vModel models.Voucher_db, err error) {
	var ex bool
	vModel, ex, err = vs.vr.GetVoucherById(id)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (vs *VoucherService) CreateVoucher(req models.VoucherRequest) (vModel models.Voucher_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	vModel, err = vs.vr.CreateVoucher(req)
	return
}

func (vs *VoucherService) UpdateVoucher(id int, req models.VoucherRequest) (vModel models.Voucher_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	var ex bool
	vModel, ex, err = vs.vr.UpdateVoucherById(id, req)
	if err == nil && !ex {
		err = models.ErrNotFound
	}
	return
}

func (vs *VoucherService) DeleteVoucher(id int) (err error) {
	deleted, e := vs.vr.DeleteVoucherById(id)
	if e != nil {
		err = e
		return
	}
	if !deleted {
		err = models.ErrNotFound
	}
	return
}
