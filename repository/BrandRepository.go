package repository

import (
	"database/sql"
	"errors"
	"log"

	"marketstore/models"
)

type BrandRepository interface {
	ListBrands(p ListParams) (brands []models.Brand_db, total int, err error)
	GetBrandById(id int) (bModel models.Brand_db, exists bool, err error)
	GetBrandByEmail(email string) (bModel models.Brand_db, exists bool, err error)
	CreateBrand(req models.BrandRequest) (bModel models.Brand_db, err error)
	UpdateBrandById(id int, req models.BrandRequest) (bModel models.Brand_db, exists bool, err error)
	DeleteBrandById(id int) (deleted bool, err error)
}

type BrandRepo struct {
	db *sql.DB
}

func NewBrandRepository(conn *sql.DB) (BrandRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &BrandRepo{
		db: conn,
	}, nil
}

var brandList = listQuery{
	table:   "brands",
	columns: "id, brand_name, brand_address, brand_email",
	search:  []string{"brand_name"},
	orderBy: "brand_name ASC, id ASC",
}

func (b *BrandRepo) ListBrands(p ListParams) (brands []models.Brand_db, total int, err error) {
	total, err = brandList.count(b.db, p)
	if err != nil {
		log.Printf("ListBrands[1]: %v", err)
		err = models.ErrServerError
		return
	}
	rows, e := brandList.rows(b.db, p)
	if e != nil {
		log.Printf("ListBrands[2]: %v", e)
		err = models.ErrServerError
		return
	}
	defer rows.Close()

	brands = []models.Brand_db{}
	for rows.Next() {
		var brand models.Brand_db
		err = rows.Scan(&brand.Id, &brand.Name, &brand.Address, &brand.Email)
		if err != nil {
			log.Printf("ListBrands[3]: %v", err)
			err = models.ErrServerError
			return
		}
		brands = append(brands, brand)
	}
	return
}

func (b *BrandRepo) GetBrandById(id int) (bModel models.Brand_db, exists bool, err error) {
	row := b.db.QueryRow("SELECT id, brand_name, brand_address, brand_email FROM brands WHERE id = $1", id)
	err = row.Scan(&bModel.Id, &bModel.Name, &bModel.Address, &bModel.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetBrandById: %v", err)
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (b *BrandRepo) GetBrandByEmail(email string) (bModel models.Brand_db, exists bool, err error) {
	row := b.db.QueryRow("SELECT id, brand_name, brand_address, brand_email FROM brands WHERE brand_email = $1", email)
	err = row.Scan(&bModel.Id, &bModel.Name, &bModel.Address, &bModel.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetBrandByEmail: %v", err)
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (b *BrandRepo) CreateBrand(req models.BrandRequest) (bModel models.Brand_db, err error) {
	err = b.db.QueryRow("INSERT INTO brands (brand_name, brand_address, brand_email) VALUES ($1, $2, $3) RETURNING id",
		req.Name, req.Address, req.Email).Scan(&bModel.Id)
	if err != nil {
		log.Printf("CreateBrand: %v", err)
		err = models.ErrServerError
		return
	}
	bModel.Name = req.Name
	bModel.Address = req.Address
	bModel.Email = req.Email
	return
}

func (b *BrandRepo) UpdateBrandById(id int, req models.BrandRequest) (bModel models.Brand_db, exists bool, err error) {
	res, e := b.db.Exec("UPDATE brands SET brand_name = $1, brand_address = $2, brand_email = $3 WHERE id = $4",
		req.Name, req.Address, req.Email, id)
	if e != nil {
		log.Printf("UpdateBrandById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return
	}
	return b.GetBrandById(id)
}

func (b *BrandRepo) DeleteBrandById(id int) (deleted bool, err error) {
	res, e := b.db.Exec("DELETE FROM brands WHERE id = $1", id)
	if e != nil {
		log.Printf("DeleteBrandById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	deleted = affected > 0
	return
}
