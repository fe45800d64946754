package repository

import (
	"database/sql"
	"errors"
	"log"

	"marketstore/models"
)

type CategoryRepository interface {
	ListCategories(p ListParams) (cats []models.Category_db, total int, err error)
	GetCategoryById(id int) (cModel models.Category_db, exists bool, err error)
	CreateCategory(req models.CategoryRequest) (cModel models.Category_db, err error)
	UpdateCategoryById(id int, req models.CategoryRequest) (cModel models.Category_db, exists bool, err error)
	DeleteCategoryById(id int) (deleted bool, err error)
}

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepository(conn *sql.DB) (CategoryRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &CategoryRepo{
		db: conn,
	}, nil
}

var categoryList = listQuery{
	table:   "categories",
	columns: "id, category_name, description",
	search:  []string{"category_name"},
	orderBy: "category_name ASC, id ASC",
}

func (c *CategoryRepo) ListCategories(p ListParams) (cats []models.Category_db, total int, err error) {
	total, err = categoryList.count(c.db, p)
	if err != nil {
		log.Printf("ListCategories[1]: %v", err)
		err = models.ErrServerError
		return
	}
	rows, e := categoryList.rows(c.db, p)
	if e != nil {
		log.Printf("ListCategories[2]: %v", e)
		err = models.ErrServerError
		return
	}
	defer rows.Close()

	cats = []models.Category_db{}
	for rows.Next() {
		var cat models.Category_db
		err = rows.Scan(&cat.Id, &cat.Name, &cat.Description)
		if err != nil {
			log.Printf("ListCategories[3]: %v", err)
			err = models.ErrServerError
			return
		}
		cats = append(cats, cat)
	}
	return
}

func (c *CategoryRepo) GetCategoryById(id int) (cModel models.Category_db, exists bool, err error) {
	row := c.db.QueryRow("SELECT id, category_name, description FROM categories WHERE id = $1", id)
	err = row.Scan(&cModel.Id, &cModel.Name, &cModel.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetCategoryById: %v", err)
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (c *CategoryRepo) CreateCategory(req models.CategoryRequest) (cModel models.Category_db, err error) {
	err = c.db.QueryRow("INSERT INTO categories (category_name, description) VALUES ($1, $2) RETURNING id",
		req.Name, req.Description).Scan(&cModel.Id)
	if err != nil {
		log.Printf("CreateCategory: %v", err)
		err = models.ErrServerError
		return
	}
	cModel.Name = req.Name
	cModel.Description = req.Description
	return
}

func (c *CategoryRepo) UpdateCategoryById(id int, req models.CategoryRequest) (cModel models.Category_db, exists bool, err error) {
	res, e := c.db.Exec("UPDATE categories SET category_name = $1, description = $2 WHERE id = $3",
		req.Name, req.Description, id)
	if e != nil {
		log.Printf("UpdateCategoryById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return
	}
	return c.GetCategoryById(id)
}

func (c *CategoryRepo) DeleteCategoryById(id int) (deleted bool, err error) {
	res, e := c.db.Exec("DELETE FROM categories WHERE id = $1", id)
	if e != nil {
		log.Printf("DeleteCategoryById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	deleted = affected > 0
	return
}
