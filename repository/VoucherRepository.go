package repository

import (
	"database/sql"
	"errors"
	"log"

	"marketstore/models"
)

type VoucherRepository interface {
	ListVouchers(p ListParams) (vouchers []models.Voucher_db, total int, err error)
	GetVoucherById(id int) (vModel models.Voucher_db, exists bool, err error)
	CreateVoucher(req models.VoucherRequest) (vModel models.Voucher_db, err error)
	UpdateVoucherById(id int, req models.VoucherRequest) (vModel models.Voucher_db, exists bool, err error)
	DeleteVoucherById(id int) (deleted bool, err error)
}

type VoucherRepo struct {
	db *sql.DB
}

func NewVoucherRepository(conn *sql.DB) (VoucherRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &VoucherRepo{
		db: conn,
	}, nil
}

var voucherList = listQuery{
	table:   "vouchers",
	columns: "id, discount_price, expired_date, description",
	search:  []string{"discount_price", "expired_date", "description"},
	orderBy: "id DESC",
}

func (v *VoucherRepo) ListVouchers(p ListParams) (vouchers []models.Voucher_db, total int, err error) {
	total, err = voucherList.count(v.db, p)
	if err != nil {
		log.Printf("ListVouchers[1]: %v", err)
		err = models.ErrServerError
		return
	}
	rows, e := voucherList.rows(v.db, p)
	if e != nil {
		log.Printf("ListVouchers[2]: %v", e)
		err = models.ErrServerError
		return
	}
	defer rows.Close()

	vouchers = []models.Voucher_db{}
	for rows.Next() {
		var voucher models.Voucher_db
		err = rows.Scan(&voucher.Id, &voucher.DiscountPrice, &voucher.ExpiredDate, &voucher.Description)
		if err != nil {
			log.Printf("ListVouchers[3]: %v", err)
			err = models.ErrServerError
			return
		}
		vouchers = append(vouchers, voucher)
	}
	return
}

func (v *VoucherRepo) GetVoucherById(id int) (vModel models.Voucher_db, exists bool, err error) {
	row := v.db.QueryRow("SELECT id, discount_price, expired_date, description FROM vouchers WHERE id = $1", id)
	err = row.Scan(&vModel.Id, &vModel.DiscountPrice, &vModel.ExpiredDate, &vModel.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetVoucherById: %v", err)
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (v *VoucherRepo) CreateVoucher(req models.VoucherRequest) (vModel models.Voucher_db, err error) {
	err = v.db.QueryRow("INSERT INTO vouchers (discount_price, expired_date, description) VALUES ($1, $2, $3) RETURNING id",
		*req.DiscountPrice, req.ExpiredDate, req.Description).Scan(&vModel.Id)
	if err != nil {
		log.Printf("CreateVoucher: %v", err)
		err = models.ErrServerError
		return
	}
	vModel.DiscountPrice = *req.DiscountPrice
	vModel.ExpiredDate = req.ExpiredDate
	vModel.Description = req.Description
	return
}

func (v *VoucherRepo) UpdateVoucherById(id int, req models.VoucherRequest) (vModel models.Voucher_db, exists bool, err error) {
	res, e := v.db.Exec("UPDATE vouchers SET discount_price = $1, expired_date = $2, description = $3 WHERE id = $4",
		*req.DiscountPrice, req.ExpiredDate, req.Description, id)
	if e != nil {
		log.Printf("UpdateVoucherById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return
	}
	return v.GetVoucherById(id)
}

func (v *VoucherRepo) DeleteVoucherById(id int) (deleted bool, err error) {
	res, e := v.db.Exec("DELETE FROM vouchers WHERE id = $1", id)
	if e != nil {
		log.Printf("DeleteVoucherById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	deleted = affected > 0
	return
}
