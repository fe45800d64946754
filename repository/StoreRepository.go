package repository

import (
	"database/sql"
	"errors"
	"log"

	"marketstore/models"
)

type StoreRepository interface {
	ListStores(p ListParams) (stores []models.Store_db, total int, err error)
	GetStoreById(id int) (sModel models.Store_db, exists bool, err error)
	CreateStore(req models.StoreRequest) (sModel models.Store_db, err error)
	UpdateStoreById(id int, req models.StoreRequest) (sModel models.Store_db, exists bool, err error)
	DeleteStoreById(id int) (deleted bool, err error)
}

type StoreRepo struct {
	db *sql.DB
}

func NewStoreRepository(conn *sql.DB) (StoreRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &StoreRepo{
		db: conn,
	}, nil
}

var storeList = listQuery{
	table:   "stores",
	columns: "id, name, phone_number, address",
	search:  []string{"name", "phone_number", "address"},
	orderBy: "id DESC",
}

func (s *StoreRepo) ListStores(p ListParams) (stores []models.Store_db, total int, err error) {
	total, err = storeList.count(s.db, p)
	if err != nil {
		log.Printf("ListStores[1]: %v", err)
		err = models.ErrServerError
		return
	}
	rows, e := storeList.rows(s.db, p)
	if e != nil {
		log.Printf("ListStores[2]: %v", e)
		err = models.ErrServerError
		return
	}
	defer rows.Close()

	stores = []models.Store_db{}
	for rows.Next() {
		var store models.Store_db
		err = rows.Scan(&store.Id, &store.Name, &store.PhoneNumber, &store.Address)
		if err != nil {
			log.Printf("ListStores[3]: %v", err)
			err = models.ErrServerError
			return
		}
		stores = append(stores, store)
	}
	return
}

func (s *StoreRepo) GetStoreById(id int) (sModel models.Store_db, exists bool, err error) {
	row := s.db.QueryRow("SELECT id, name, phone_number, address FROM stores WHERE id = $1", id)
	err = row.Scan(&sModel.Id, &sModel.Name, &sModel.PhoneNumber, &sModel.Address)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetStoreById: %v", err)
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (s *StoreRepo) CreateStore(req models.StoreRequest) (sModel models.Store_db, err error) {
	err = s.db.QueryRow("INSERT INTO stores (name, phone_number, address) VALUES ($1, $2, $3) RETURNING id",
		req.Name, req.PhoneNumber, req.Address).Scan(&sModel.Id)
	if err != nil {
		log.Printf("CreateStore: %v", err)
		err = models.ErrServerError
		return
	}
	sModel.Name = req.Name
	sModel.PhoneNumber = req.PhoneNumber
	sModel.Address = req.Address
	return
}

func (s *StoreRepo) UpdateStoreById(id int, req models.StoreRequest) (sModel models.Store_db, exists bool, err error) {
	res, e := s.db.Exec("UPDATE stores SET name = $1, phone_number = $2, address = $3 WHERE id = $4",
		req.Name, req.PhoneNumber, req.Address, id)
	if e != nil {
		log.Printf("UpdateStoreById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return
	}
	return s.GetStoreById(id)
}

func (s *StoreRepo) DeleteStoreById(id int) (deleted bool, err error) {
	res, e := s.db.Exec("DELETE FROM stores WHERE id = $1", id)
	if e != nil {
		log.Printf("DeleteStoreById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	deleted = affected > 0
	return
}
